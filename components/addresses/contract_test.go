package addresses

import (
	"context"
	"testing"
)

func TestContract_ParsesAndValidates(t *testing.T) {
	spec, err := Contract(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if spec.Info == nil || spec.Info.Title == "" {
		t.Fatalf("expected a titled contract, got %#v", spec.Info)
	}
}

func TestContractRoute_MatchesHandlerDefaults(t *testing.T) {
	path, op, err := ContractRoute(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	opts := DefaultOptions()
	if path != opts.RoutePath {
		t.Fatalf("contract path %q does not match handler route %q", path, opts.RoutePath)
	}
	if op.OperationID != "searchSuggestions" {
		t.Fatalf("unexpected operation id: %q", op.OperationID)
	}

	params := map[string]bool{}
	for _, ref := range op.Parameters {
		if ref == nil || ref.Value == nil || ref.Value.In != "query" {
			continue
		}
		params[ref.Value.Name] = true
	}
	if !params[opts.QueryParam] {
		t.Fatalf("contract is missing the %q parameter: %#v", opts.QueryParam, params)
	}
	if !params[opts.LimitParam] {
		t.Fatalf("contract is missing the %q parameter: %#v", opts.LimitParam, params)
	}
}

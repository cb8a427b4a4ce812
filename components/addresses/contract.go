package addresses

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var contractYAML []byte

// Contract parses and validates the embedded OpenAPI document describing
// the lookup endpoint.
func Contract(ctx context.Context) (*openapi3.T, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}

	spec, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, fmt.Errorf("addresses: load contract: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("addresses: validate contract: %w", err)
	}
	return spec, nil
}

// ContractRoute returns the lookup path and its GET operation from the
// embedded contract.
func ContractRoute(ctx context.Context) (string, *openapi3.Operation, error) {
	spec, err := Contract(ctx)
	if err != nil {
		return "", nil, err
	}
	if spec.Paths == nil {
		return "", nil, fmt.Errorf("addresses: contract has no paths")
	}
	for path, item := range spec.Paths.Map() {
		if item == nil || item.Get == nil {
			continue
		}
		return path, item.Get, nil
	}
	return "", nil, fmt.Errorf("addresses: contract has no GET operation")
}

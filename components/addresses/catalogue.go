package addresses

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

//go:embed data/addresses.json
var dataFS embed.FS

const defaultCataloguePath = "data/addresses.json"

var (
	defaultOnce      sync.Once
	defaultCatalogue []Suggestion
	defaultErr       error
)

// Suggestion is one catalogue entry as served on the wire. Combined is the
// single-line display string the form core adopts when a suggestion is
// selected.
type Suggestion struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
	Combined string `json:"combined"`
}

// NewSuggestion derives the combined display string from the parts.
func NewSuggestion(street, city, postcode, country string) Suggestion {
	return Suggestion{
		Street:   street,
		City:     city,
		Postcode: postcode,
		Country:  country,
		Combined: combine(street, city, postcode, country),
	}
}

func combine(street, city, postcode, country string) string {
	return fmt.Sprintf("%s, %s, %s %s", street, city, postcode, country)
}

// DefaultCatalogue returns the embedded address data. Catalogue order is
// load order; searches preserve it.
func DefaultCatalogue() ([]Suggestion, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultCataloguePath)
		if err != nil {
			defaultErr = fmt.Errorf("addresses: open embedded catalogue: %w", err)
			return
		}
		defer func() { _ = f.Close() }()

		catalogue, err := LoadCatalogue(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalogue = catalogue
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Suggestion{}, defaultCatalogue...), nil
}

// LoadCatalogue decodes a JSON array of suggestions. Entries missing a
// street are skipped; missing combined strings are derived from the parts.
func LoadCatalogue(r io.Reader) ([]Suggestion, error) {
	if r == nil {
		return nil, fmt.Errorf("addresses: missing reader")
	}

	var entries []Suggestion
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("addresses: decode catalogue: %w", err)
	}

	out := make([]Suggestion, 0, len(entries))
	for _, entry := range entries {
		if entry.Street == "" {
			continue
		}
		if entry.Combined == "" {
			entry.Combined = combine(entry.Street, entry.City, entry.Postcode, entry.Country)
		}
		out = append(out, entry)
	}
	return out, nil
}

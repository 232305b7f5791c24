package cart

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed cart record")

// RecordEntry is one persisted line: the product slug and its quantity.
type RecordEntry struct {
	Slug     string `json:"s"`
	Quantity int    `json:"q"`
}

// Record is the persisted form of a cart, in line order.
type Record []RecordEntry

// RecordOf projects a cart to its persisted form.
func RecordOf(c Cart) Record {
	record := make(Record, 0, c.Len())
	for _, l := range c.lines {
		record = append(record, RecordEntry{Slug: l.Product.Slug, Quantity: l.Quantity})
	}
	return record
}

func MarshalRecord(r Record) ([]byte, error) {
	if r == nil {
		r = Record{}
	}
	return json.Marshal(r)
}

// UnmarshalRecord decodes a persisted record. Anything other than a JSON array of
// {"s": string, "q": integer} objects yields ErrMalformedRecord.
func UnmarshalRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return r, nil
}

// Resolve rebuilds a cart from a record. Entries whose slug the catalog does not know
// or whose quantity is below 1 are dropped; repeated slugs are merged by summing quantities.
// Quantities are clamped to MaxQuantity, both per entry and after merging.
func Resolve(r Record, catalog Catalog) Cart {
	lines := make([]LineItem, 0, len(r))
	positions := make(map[string]int, len(r))
	for _, entry := range r {
		if entry.Quantity < 1 {
			continue
		}
		quantity := clampQuantity(entry.Quantity)
		if i, seen := positions[entry.Slug]; seen {
			lines[i].Quantity = clampQuantity(lines[i].Quantity + quantity)
			continue
		}
		product, ok := catalog.Lookup(entry.Slug)
		if !ok {
			continue
		}
		positions[entry.Slug] = len(lines)
		lines = append(lines, LineItem{Product: product, Quantity: quantity})
	}
	return Cart{lines: lines}
}

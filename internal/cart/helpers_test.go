package cart

import (
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var (
	bookA = ProductSnapshot{Slug: "kcse-mathematics-form-4-octopus-revision", Title: "Mathematics Form 4", Subject: "Mathematics", Form: "4", Price: 850}
	bookB = ProductSnapshot{Slug: "kcse-chemistry-form-3-visual-notes", Title: "Chemistry Form 3", Subject: "Chemistry", Form: "3", Price: 920}
	bookC = ProductSnapshot{Slug: "kcse-cre-form-4-chapter-review", Title: "C.R.E. Form 4", Subject: "C.R.E.", Form: "4", Price: 720}
)

// mapCatalog is a Catalog backed by a map.
type mapCatalog map[string]ProductSnapshot

func newCatalog(products ...ProductSnapshot) mapCatalog {
	c := make(mapCatalog, len(products))
	for _, p := range products {
		c[p.Slug] = p
	}
	return c
}

func (c mapCatalog) Lookup(slug string) (ProductSnapshot, bool) {
	p, ok := c[slug]
	return p, ok
}

// quantities flattens a cart to slug/quantity pairs in line order.
func quantities(c Cart) []RecordEntry {
	return RecordOf(c)
}

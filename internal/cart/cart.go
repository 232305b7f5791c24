// Package cart holds the shopping cart state model and the store that keeps it
// synchronized with its persisted record and with observers.
package cart

// ProductSnapshot is the part of a catalog book that a cart line carries.
type ProductSnapshot struct {
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Subject        string `json:"subject"`
	Form           string `json:"form"`
	Price          int64  `json:"price"`
	Description    string `json:"description"`
	CoverImagePath string `json:"coverImagePath"`
}

// Catalog resolves slugs to products when a persisted record is loaded.
type Catalog interface {
	Lookup(slug string) (ProductSnapshot, bool)
}

// MaxQuantity caps the quantity of a single line. Larger requests are clamped, which also keeps
// TotalPrice far from int64 overflow for any catalog price.
const MaxQuantity = 999

// clampQuantity bounds q to MaxQuantity. Callers handle q < 1 themselves.
func clampQuantity(q int) int {
	return min(q, MaxQuantity)
}

type LineItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price times quantity.
func (l LineItem) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Cart is an immutable, ordered list of line items with at most one line per slug.
// The zero value is an empty cart.
type Cart struct {
	lines []LineItem
}

// Lines returns a copy of the line items in insertion order.
func (c Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Find returns the line for slug.
func (c Cart) Find(slug string) (LineItem, bool) {
	if i := c.index(slug); i >= 0 {
		return c.lines[i], true
	}
	return LineItem{}, false
}

// TotalPrice is the sum of price times quantity over all lines.
func (c Cart) TotalPrice() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// TotalItemCount is the sum of quantities over all lines.
func (c Cart) TotalItemCount() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

func (c Cart) index(slug string) int {
	for i, l := range c.lines {
		if l.Product.Slug == slug {
			return i
		}
	}
	return -1
}

// withAdded increments the line for p, up to MaxQuantity, or appends a new line with quantity 1.
func (c Cart) withAdded(p ProductSnapshot) Cart {
	next := c.Lines()
	if i := c.index(p.Slug); i >= 0 {
		next[i].Quantity = clampQuantity(next[i].Quantity + 1)
		return Cart{lines: next}
	}
	return Cart{lines: append(next, LineItem{Product: p, Quantity: 1})}
}

func (c Cart) without(slug string) Cart {
	next := make([]LineItem, 0, len(c.lines))
	for _, l := range c.lines {
		if l.Product.Slug != slug {
			next = append(next, l)
		}
	}
	return Cart{lines: next}
}

// withQuantity sets the quantity of an existing line, clamped to MaxQuantity.
// It reports false when there is no line for slug.
func (c Cart) withQuantity(slug string, quantity int) (Cart, bool) {
	i := c.index(slug)
	if i < 0 {
		return c, false
	}
	next := c.Lines()
	next[i].Quantity = clampQuantity(quantity)
	return Cart{lines: next}, true
}

// Package admin serves the read-only back office views over mock inventory and orders.
package admin

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/topnotch/storefront/internal/cart"
	"github.com/topnotch/storefront/internal/catalog"
)

var ErrInvalidStatus = errors.New("invalid order status")

const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusFailed    = "FAILED"
	StatusCancelled = "CANCELLED"
	StatusRefunded  = "REFUNDED"

	placeholderCover = "/placeholder-book.svg"
	recentLimit      = 5
)

var statuses = []string{StatusPending, StatusPaid, StatusFailed, StatusCancelled, StatusRefunded}

type Book struct {
	catalog.Book
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Stock     int    `json:"stock"`
	IsActive  bool   `json:"isActive"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Item struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type Order struct {
	ID              string   `json:"id"`
	Status          string   `json:"status"`
	Amount          int64    `json:"amount"`
	Date            string   `json:"date"`
	Customer        Customer `json:"customer"`
	Items           []Item   `json:"items"`
	PaymentMethod   string   `json:"paymentMethod,omitempty"`
	ShippingAddress string   `json:"shippingAddress,omitempty"`
}

type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount,omitempty"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type Dashboard struct {
	TotalBooks       int            `json:"totalBooks"`
	ActiveBooks      int            `json:"activeBooks"`
	TotalOrders      int            `json:"totalOrders"`
	OrdersByStatus   map[string]int `json:"ordersByStatus"`
	Revenue          int64          `json:"revenue"`
	FormattedRevenue string         `json:"formattedRevenue"`
	TotalPosts       int            `json:"totalPosts"`
	PublishedPosts   int            `json:"publishedPosts"`
	RecentActivity   []Activity     `json:"recentActivity"`
}

// Service defines the admin read operations.
type Service interface {
	Books() []Book
	// Orders filters by status when it is non-empty; an unknown status returns ErrInvalidStatus.
	Orders(status string) ([]Order, error)
	Posts() []catalog.BlogPost
	Dashboard() Dashboard
}

type Store struct {
	books  []Book
	orders []Order
	posts  []catalog.BlogPost
}

var _ Service = (*Store)(nil)

// New joins catalog books with their inventory records. Books without a record are listed inactive.
func New(books []catalog.Book, orders []Order, posts []catalog.BlogPost) *Store {
	s := &Store{
		books:  make([]Book, 0, len(books)),
		orders: slices.Clone(orders),
		posts:  slices.Clone(posts),
	}
	for _, b := range books {
		inv, ok := inventoryBySlug[b.Slug]
		b.CoverImagePath = placeholderCover
		s.books = append(s.books, Book{
			Book:      b,
			CreatedAt: inv.createdAt,
			UpdatedAt: inv.createdAt,
			Stock:     inv.stock,
			IsActive:  ok,
		})
	}
	return s
}

// Default builds the store over the default catalog and the mock order book.
func Default() *Store {
	return New(catalog.Default().Books(), mockOrders, catalog.BlogPosts())
}

func (s *Store) Books() []Book {
	return slices.Clone(s.books)
}

func (s *Store) Orders(status string) ([]Order, error) {
	if status == "" {
		return slices.Clone(s.orders), nil
	}
	status = strings.ToUpper(status)
	if !slices.Contains(statuses, status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	out := []Order{}
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) Posts() []catalog.BlogPost {
	return slices.Clone(s.posts)
}

// Dashboard derives the overview from the current data. Revenue counts paid orders only.
func (s *Store) Dashboard() Dashboard {
	d := Dashboard{
		TotalBooks:     len(s.books),
		TotalOrders:    len(s.orders),
		OrdersByStatus: make(map[string]int, len(statuses)),
		TotalPosts:     len(s.posts),
		RecentActivity: []Activity{},
	}
	for _, b := range s.books {
		if b.IsActive {
			d.ActiveBooks++
		}
	}
	for _, o := range s.orders {
		d.OrdersByStatus[o.Status]++
		if o.Status == StatusPaid {
			d.Revenue += o.Amount
		}
	}
	d.FormattedRevenue = cart.FormatPrice(d.Revenue)
	for _, p := range s.posts {
		if p.Status == catalog.PostPublished {
			d.PublishedPosts++
		}
	}

	recent := slices.Clone(s.orders)
	slices.SortStableFunc(recent, func(a, b Order) int { return strings.Compare(b.Date, a.Date) })
	for _, o := range recent[:min(recentLimit, len(recent))] {
		d.RecentActivity = append(d.RecentActivity, activityFor(o))
	}
	return d
}

func activityFor(o Order) Activity {
	a := Activity{Type: "order", Amount: cart.FormatPrice(o.Amount), Time: o.Date}
	switch o.Status {
	case StatusPaid:
		a.Type = "payment"
		a.Description = fmt.Sprintf("Payment received for order #%s", o.ID)
		a.Status = "completed"
	case StatusFailed:
		a.Type = "payment"
		a.Description = fmt.Sprintf("Payment failed for order #%s", o.ID)
		a.Status = "failed"
	default:
		a.Description = fmt.Sprintf("New order #%s from %s", o.ID, o.Customer.Name)
		a.Status = strings.ToLower(o.Status)
	}
	return a
}

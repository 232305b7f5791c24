package cart

import (
	"errors"
	"log/slog"
)

// Observer is called with the current cart after every state change.
type Observer func(Cart)

type subscription struct {
	id       int
	observer Observer
}

// Store owns the current cart of one client session. Every mutation replaces the cart,
// writes the record to storage and then calls observers in registration order.
//
// A Store is not safe for concurrent use.
type Store struct {
	catalog   Catalog
	storage   Storage
	logger    *slog.Logger
	cart      Cart
	observers []subscription
	nextID    int
}

func NewStore(catalog Catalog, storage Storage, logger *slog.Logger) *Store {
	return &Store{
		catalog: catalog,
		storage: storage,
		logger:  logger.With("component", "cart"),
	}
}

// Initialize replaces the cart with the one described by the persisted record and
// notifies observers. A missing, unreadable or malformed record gives an empty cart.
func (s *Store) Initialize() {
	s.cart = s.load()
	s.notify()
}

func (s *Store) load() Cart {
	data, err := s.storage.Load()
	if errors.Is(err, ErrNoRecord) {
		return Cart{}
	} else if err != nil {
		s.logger.Warn("Failed to read cart record", "error", err)
		return Cart{}
	}
	record, err := UnmarshalRecord(data)
	if err != nil {
		s.logger.Warn("Discarding malformed cart record", "error", err)
		return Cart{}
	}
	c := Resolve(record, s.catalog)
	if dropped := len(record) - c.Len(); dropped > 0 {
		s.logger.Debug("Dropped unresolvable cart entries", "dropped", dropped)
	}
	return c
}

// Snapshot returns the current cart.
func (s *Store) Snapshot() Cart {
	return s.cart
}

// ServerSnapshot is the cart rendered when no client state is available: always empty.
func (s *Store) ServerSnapshot() Cart {
	return Cart{}
}

// Subscribe registers o and returns a function that removes it. Calling that function more than once is harmless.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, observer: o})
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Add increments the line for p, or appends a new line with quantity 1.
// A product without a slug is ignored.
func (s *Store) Add(p ProductSnapshot) {
	if p.Slug == "" {
		return
	}
	s.commit(s.cart.withAdded(p))
}

// Remove deletes the line for slug. Storage and observers are updated even when there was no such line.
func (s *Store) Remove(slug string) {
	s.commit(s.cart.without(slug))
}

// SetQuantity sets the quantity of an existing line, clamped to MaxQuantity; a quantity of zero or less removes it.
// An unknown slug with a positive quantity changes nothing.
func (s *Store) SetQuantity(slug string, quantity int) {
	if quantity <= 0 {
		s.Remove(slug)
		return
	}
	next, ok := s.cart.withQuantity(slug, quantity)
	if !ok {
		return
	}
	s.commit(next)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.commit(Cart{})
}

func (s *Store) TotalPrice() int64 {
	return s.cart.TotalPrice()
}

func (s *Store) TotalItemCount() int {
	return s.cart.TotalItemCount()
}

func (s *Store) commit(next Cart) {
	s.cart = next
	s.persist()
	s.notify()
}

// persist writes the record. Failures are logged and otherwise ignored.
func (s *Store) persist() {
	data, err := MarshalRecord(RecordOf(s.cart))
	if err != nil {
		s.logger.Debug("Failed to encode cart record", "error", err)
		return
	}
	if err := s.storage.Save(data); err != nil {
		s.logger.Debug("Failed to persist cart record", "error", err)
	}
}

func (s *Store) notify() {
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	current := s.cart
	for _, sub := range subs {
		s.call(sub, current)
	}
}

func (s *Store) call(sub subscription, c Cart) {
	defer func() {
		if rvr := recover(); rvr != nil {
			s.logger.Error("Cart observer panicked", "observer", sub.id, "panic", rvr)
		}
	}()
	sub.observer(c)
}

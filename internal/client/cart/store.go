// internal/client/cart/store.go
package cart

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Item is one cart line. CartItemID is generated at add time and is distinct
// from ProductID: the same product added twice yields two independent lines.
// Price is in minor currency units.
type Item struct {
	CartItemID string `json:"cartItemId"`
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
	Image      string `json:"image"`
}

// Product is the catalog shape added to the cart
type Product struct {
	ID    string
	Name  string
	Price int64
	Image string
}

// Store is the client-resident cart. Every mutation persists the whole
// snapshot and notifies subscribers, so a second open view can re-read state
// and stay in sync. Reads never fail: a missing or corrupt snapshot is an
// empty cart.
type Store struct {
	mu      sync.Mutex
	storage Storage
	subs    map[int]func()
	nextSub int
}

// NewStore creates a cart store over the given storage
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		subs:    make(map[int]func()),
	}
}

// Items returns the cart contents in insertion order
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends a new line for the product with quantity 1 and a fresh
// cartItemId. Adding the same product twice creates two separate lines.
func (s *Store) Add(p Product) {
	s.mu.Lock()
	items := s.load()
	items = append(items, Item{
		CartItemID: uuid.NewString(),
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Quantity:   1,
		Image:      p.Image,
	})
	s.save(items)
	s.mu.Unlock()

	s.notify()
}

// Remove deletes the line with the given cartItemId. Unknown ids are a no-op.
func (s *Store) Remove(cartItemID string) {
	s.mu.Lock()
	items := s.load()
	updated := items[:0]
	for _, item := range items {
		if item.CartItemID != cartItemID {
			updated = append(updated, item)
		}
	}
	s.save(updated)
	s.mu.Unlock()

	s.notify()
}

// UpdateQuantity sets the quantity for a line, clamped to a floor of 1 so an
// invalid quantity never drops the line from the cart. Unknown ids are a
// no-op.
func (s *Store) UpdateQuantity(cartItemID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	items := s.load()
	for i := range items {
		if items[i].CartItemID == cartItemID {
			items[i].Quantity = quantity
			break
		}
	}
	s.save(items)
	s.mu.Unlock()

	s.notify()
}

// Total returns the cart subtotal in minor currency units
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.load() {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Clear empties the cart. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	s.save([]Item{})
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers a listener fired after every mutation. Listeners run
// asynchronously and should re-read the full cart state. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// load must be called with the lock held
func (s *Store) load() []Item {
	data, err := s.storage.Read()
	if err != nil || len(data) == 0 {
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt snapshot is treated as an empty cart, never as an error.
		return []Item{}
	}
	return items
}

// save must be called with the lock held
func (s *Store) save(items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = s.storage.Write(data)
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		go fn()
	}
}

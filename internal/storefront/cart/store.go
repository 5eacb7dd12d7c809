package cart

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

var ErrEmptyCart = errors.New("cart is empty")

// Store persists the cart to a single local JSON file on every mutation
// and rehydrates it on open, so the cart survives restarts.
type Store struct {
	path string
	cart *Cart
}

func Open(path string) (*Store, error) {
	s := &Store{path: path, cart: New()}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	s.cart.items = items
	return s, nil
}

func (s *Store) save() error {
	data, err := json.Marshal(s.cart.items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *Store) Add(p Product) error {
	s.cart.Add(p)
	return s.save()
}

func (s *Store) SetQuantity(productID, quantity int64) error {
	s.cart.SetQuantity(productID, quantity)
	return s.save()
}

func (s *Store) Remove(productID int64) error {
	s.cart.Remove(productID)
	return s.save()
}

func (s *Store) Items() []Item {
	return s.cart.Items()
}

func (s *Store) Total() float64 {
	return s.cart.Total()
}

func (s *Store) Count() int64 {
	return s.cart.Count()
}

// Checkout writes the PDF receipt for the current cart to w, then clears
// the cart and persists the empty state.
func (s *Store) Checkout(w io.Writer) error {
	if s.cart.Len() == 0 {
		return ErrEmptyCart
	}
	if err := WriteReceipt(w, s.cart.Items(), s.cart.Total()); err != nil {
		return err
	}
	s.cart.Clear()
	return s.save()
}

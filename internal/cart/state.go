package cart

import (
	"github.com/google/uuid"
)

// LineProduct is the catalog snapshot carried by a cart line. Price is in
// whole dirhams, captured at the time the product was added.
type LineProduct struct {
	ID    uuid.UUID `json:"id"`
	Slug  string    `json:"slug"`
	Name  string    `json:"name"`
	Price int       `json:"price"`
	Image string    `json:"image"`
}

// Line pairs a product snapshot with a quantity. Quantity is always >= 1
// while the line exists.
type Line struct {
	Product  LineProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// LineTotal is the price contribution of this line.
func (l Line) LineTotal() int {
	return l.Product.Price * l.Quantity
}

// State is the session cart. Lines keep insertion order and hold at most one
// entry per product ID. DrawerOpen is transient view state and is never
// persisted; Count and Total are recomputed from the lines on every read.
type State struct {
	Lines      []Line `json:"lines"`
	DrawerOpen bool   `json:"-"`
}

// Add merges the product into the cart: an existing line for the same product
// gains one unit, otherwise a new line with quantity 1 is appended.
func (s *State) Add(product LineProduct) {
	for i := range s.Lines {
		if s.Lines[i].Product.ID == product.ID {
			s.Lines[i].Quantity++
			return
		}
	}
	s.Lines = append(s.Lines, Line{Product: product, Quantity: 1})
}

// Remove drops the line for the product. Absent products are a no-op.
func (s *State) Remove(productID uuid.UUID) {
	for i := range s.Lines {
		if s.Lines[i].Product.ID == productID {
			s.Lines = append(s.Lines[:i:i], s.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity pins the line's quantity. A quantity of zero or less removes
// the line.
func (s *State) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	for i := range s.Lines {
		if s.Lines[i].Product.ID == productID {
			s.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (s *State) Clear() {
	s.Lines = nil
}

// Count is the sum of all line quantities.
func (s *State) Count() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

// Total is the sum of all line totals in whole dirhams.
func (s *State) Total() int {
	total := 0
	for _, line := range s.Lines {
		total += line.LineTotal()
	}
	return total
}

// OpenDrawer marks the drawer visible.
func (s *State) OpenDrawer() {
	s.DrawerOpen = true
}

// CloseDrawer marks the drawer hidden.
func (s *State) CloseDrawer() {
	s.DrawerOpen = false
}

// IsEmpty reports whether the cart has no lines.
func (s *State) IsEmpty() bool {
	return len(s.Lines) == 0
}

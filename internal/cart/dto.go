package cart

import (
	"github.com/google/uuid"
)

// CartDTO is the cart payload returned to clients. Count and Total are
// derived from the lines at render time.
type CartDTO struct {
	Lines      []LineDTO `json:"lines"`
	Count      int       `json:"count"`
	Total      int       `json:"total"`
	DrawerOpen bool      `json:"drawer_open"`
}

// LineDTO is one cart line with its derived line total.
type LineDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity"`
	LineTotal int       `json:"line_total"`
}

func toCartDTO(state State) *CartDTO {
	lines := make([]LineDTO, 0, len(state.Lines))
	for _, line := range state.Lines {
		lines = append(lines, LineDTO{
			ProductID: line.Product.ID,
			Slug:      line.Product.Slug,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Image:     line.Product.Image,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		})
	}
	return &CartDTO{
		Lines:      lines,
		Count:      state.Count(),
		Total:      state.Total(),
		DrawerOpen: state.DrawerOpen,
	}
}

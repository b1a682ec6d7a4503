package types

// Ingredient is one entry of a product or program ingredient list, with the
// storefront's marketing benefit line.
type Ingredient struct {
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Benefit string `json:"benefit"`
}

// Ingredients is stored as a JSONB array on products and programs.
type Ingredients []Ingredient

// Nutrition carries the per-serving nutrition facts panel. Calories is a
// count; the macros stay free-form display strings ("5g").
type Nutrition struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Fiber    string `json:"fiber"`
	Carbs    string `json:"carbs,omitempty"`
	Fats     string `json:"fats,omitempty"`
}

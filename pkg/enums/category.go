package enums

import "fmt"

// Category is the top-level catalog grouping shown in the storefront.
type Category string

const (
	CategorySnacks      Category = "Healthy Snacks"
	CategoryBeverages   Category = "Juice & Smoothies"
	CategoryCompliments Category = "Healthy Compliments"
	CategoryProgram     Category = "Nutrition Programs"
)

var validCategories = []Category{
	CategorySnacks,
	CategoryBeverages,
	CategoryCompliments,
	CategoryProgram,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

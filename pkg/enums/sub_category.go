package enums

import "fmt"

// SubCategory refines a Category into the storefront's filter chips.
type SubCategory string

const (
	SubCategoryMuffin      SubCategory = "Muffin"
	SubCategoryCake        SubCategory = "Cake"
	SubCategoryCookies     SubCategory = "Cookies"
	SubCategoryEnergyBalls SubCategory = "Energetic balls"
	SubCategoryGranolaBar  SubCategory = "Granola Bar"
	SubCategoryGranola     SubCategory = "Granola"
	SubCategoryJuice       SubCategory = "Juice"
	SubCategorySmoothie    SubCategory = "Smoothie"
	SubCategoryHoney       SubCategory = "Pure Honey"
	SubCategorySuperfood   SubCategory = "Superfood"
	SubCategorySpread      SubCategory = "Healthy Spread"
	SubCategorySupplement  SubCategory = "Natural Supplement"

	// Program sub-categories keep their storefront French labels.
	SubCategoryWeightLoss    SubCategory = "Perte de poids"
	SubCategoryMuscleGain    SubCategory = "Prise de masse"
	SubCategoryHealthyLiving SubCategory = "Alimentation saine"
)

var validSubCategories = []SubCategory{
	SubCategoryMuffin,
	SubCategoryCake,
	SubCategoryCookies,
	SubCategoryEnergyBalls,
	SubCategoryGranolaBar,
	SubCategoryGranola,
	SubCategoryJuice,
	SubCategorySmoothie,
	SubCategoryHoney,
	SubCategorySuperfood,
	SubCategorySpread,
	SubCategorySupplement,
	SubCategoryWeightLoss,
	SubCategoryMuscleGain,
	SubCategoryHealthyLiving,
}

var validProgramSubCategories = []SubCategory{
	SubCategoryWeightLoss,
	SubCategoryMuscleGain,
	SubCategoryHealthyLiving,
}

// String implements fmt.Stringer.
func (s SubCategory) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SubCategory.
func (s SubCategory) IsValid() bool {
	for _, candidate := range validSubCategories {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsProgram reports whether the value belongs to the program catalog.
func (s SubCategory) IsProgram() bool {
	for _, candidate := range validProgramSubCategories {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSubCategory converts raw input into a SubCategory.
func ParseSubCategory(value string) (SubCategory, error) {
	for _, candidate := range validSubCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sub-category %q", value)
}

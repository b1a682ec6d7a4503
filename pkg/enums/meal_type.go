package enums

import "fmt"

// MealType names one slot in a program day's schedule. Values keep the
// storefront French labels used in stored schedules.
type MealType string

const (
	MealTypeBreakfast MealType = "Petit-déjeuner"
	MealTypeLunch     MealType = "Déjeuner"
	MealTypeSnack     MealType = "Collation"
	MealTypeDinner    MealType = "Dîner"
)

var validMealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeSnack,
	MealTypeDinner,
}

// DefaultMealType is what a freshly added meal starts as.
const DefaultMealType = MealTypeBreakfast

// MealTypes returns the fixed enumeration in display order.
func MealTypes() []MealType {
	out := make([]MealType, len(validMealTypes))
	copy(out, validMealTypes)
	return out
}

// String implements fmt.Stringer.
func (m MealType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MealType.
func (m MealType) IsValid() bool {
	for _, candidate := range validMealTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMealType converts raw input into a MealType.
func ParseMealType(value string) (MealType, error) {
	for _, candidate := range validMealTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid meal type %q", value)
}

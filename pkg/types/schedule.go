package types

import (
	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/enums"
)

// MealItem is one entry within a meal. ProductID is an optional snapshot
// reference into the catalog: the label is copied from the product at
// selection time and stays independently editable afterwards.
type MealItem struct {
	Label     string     `json:"label"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
}

// Meal is one slot in a day's plan. A day may repeat a meal type.
type Meal struct {
	Type  enums.MealType `json:"repas"`
	Items []MealItem     `json:"items"`
}

// DaySchedule holds one numbered day of a program. Day numbers are 1-indexed
// and unique within a schedule.
type DaySchedule struct {
	Day   int    `json:"day"`
	Meals []Meal `json:"meals"`
}

// Schedule is the full day list of a program, stored as JSONB. A consistent
// schedule for a program of duration n contains exactly days 1..n in order.
type Schedule []DaySchedule

package program

import (
	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// The editor functions below rewrite a program schedule structurally: each
// returns a new schedule in which only the touched day/meal/item chain has
// been reallocated, while sibling entries keep their original backing arrays.
// Out-of-range days or indices are no-ops returning the input
// unchanged. None of the operations mutate their input.

// Resize regenerates the schedule to exactly days entries numbered 1..days.
// Shrinking drops the trailing days and their meals; growing appends empty
// days; days within the new range keep their meals untouched. days < 1 is a
// no-op.
func Resize(s types.Schedule, days int) types.Schedule {
	if days < 1 {
		return s
	}
	out := make(types.Schedule, days)
	for i := 0; i < days; i++ {
		if i < len(s) {
			out[i] = s[i]
		}
		out[i].Day = i + 1
	}
	return out
}

// AddMeal appends a meal with the default type and one empty item to the day.
func AddMeal(s types.Schedule, day int) types.Schedule {
	idx := day - 1
	if idx < 0 || idx >= len(s) {
		return s
	}
	meals := make([]types.Meal, len(s[idx].Meals)+1)
	copy(meals, s[idx].Meals)
	meals[len(meals)-1] = types.Meal{
		Type:  enums.DefaultMealType,
		Items: []types.MealItem{{}},
	}
	return replaceDay(s, idx, meals)
}

// RemoveMeal deletes the meal at mealIndex from the day.
func RemoveMeal(s types.Schedule, day, mealIndex int) types.Schedule {
	idx := day - 1
	if idx < 0 || idx >= len(s) {
		return s
	}
	if mealIndex < 0 || mealIndex >= len(s[idx].Meals) {
		return s
	}
	meals := make([]types.Meal, 0, len(s[idx].Meals)-1)
	meals = append(meals, s[idx].Meals[:mealIndex]...)
	meals = append(meals, s[idx].Meals[mealIndex+1:]...)
	return replaceDay(s, idx, meals)
}

// SetMealType replaces the meal's type. Invalid types are a no-op.
func SetMealType(s types.Schedule, day, mealIndex int, mealType enums.MealType) types.Schedule {
	if !mealType.IsValid() {
		return s
	}
	return rewriteMeal(s, day, mealIndex, func(meal types.Meal) types.Meal {
		meal.Type = mealType
		return meal
	})
}

// AddItem appends an empty item to the meal.
func AddItem(s types.Schedule, day, mealIndex int) types.Schedule {
	return rewriteMeal(s, day, mealIndex, func(meal types.Meal) types.Meal {
		items := make([]types.MealItem, len(meal.Items)+1)
		copy(items, meal.Items)
		meal.Items = items
		return meal
	})
}

// RemoveItem deletes the item at itemIndex from the meal.
func RemoveItem(s types.Schedule, day, mealIndex, itemIndex int) types.Schedule {
	if !itemInRange(s, day, mealIndex, itemIndex) {
		return s
	}
	return rewriteMeal(s, day, mealIndex, func(meal types.Meal) types.Meal {
		items := make([]types.MealItem, 0, len(meal.Items)-1)
		items = append(items, meal.Items[:itemIndex]...)
		items = append(items, meal.Items[itemIndex+1:]...)
		meal.Items = items
		return meal
	})
}

// SetItemLabel overwrites the item's label and optional catalog reference.
// The label is a snapshot taken at selection time; later catalog edits do not
// flow back into stored items.
func SetItemLabel(s types.Schedule, day, mealIndex, itemIndex int, label string, productID *uuid.UUID) types.Schedule {
	if !itemInRange(s, day, mealIndex, itemIndex) {
		return s
	}
	return rewriteMeal(s, day, mealIndex, func(meal types.Meal) types.Meal {
		items := make([]types.MealItem, len(meal.Items))
		copy(items, meal.Items)
		items[itemIndex] = types.MealItem{Label: label, ProductID: productID}
		meal.Items = items
		return meal
	})
}

func itemInRange(s types.Schedule, day, mealIndex, itemIndex int) bool {
	idx := day - 1
	if idx < 0 || idx >= len(s) {
		return false
	}
	if mealIndex < 0 || mealIndex >= len(s[idx].Meals) {
		return false
	}
	return itemIndex >= 0 && itemIndex < len(s[idx].Meals[mealIndex].Items)
}

// replaceDay copies the top-level slice and swaps in the day's new meal list.
func replaceDay(s types.Schedule, idx int, meals []types.Meal) types.Schedule {
	out := make(types.Schedule, len(s))
	copy(out, s)
	out[idx].Meals = meals
	return out
}

// rewriteMeal copies the day/meal chain and applies fn to the targeted meal.
// fn returning the meal unchanged still produces a fresh top-level slice; the
// sibling days and meals keep their backing.
func rewriteMeal(s types.Schedule, day, mealIndex int, fn func(types.Meal) types.Meal) types.Schedule {
	idx := day - 1
	if idx < 0 || idx >= len(s) {
		return s
	}
	if mealIndex < 0 || mealIndex >= len(s[idx].Meals) {
		return s
	}
	meals := make([]types.Meal, len(s[idx].Meals))
	copy(meals, s[idx].Meals)
	meals[mealIndex] = fn(meals[mealIndex])
	return replaceDay(s, idx, meals)
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// Product is one catalog listing. Price is in whole dirhams.
type Product struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug            string            `gorm:"column:slug;not null;uniqueIndex"`
	Name            string            `gorm:"column:name;not null"`
	Category        enums.Category    `gorm:"column:category;not null"`
	SubCategory     enums.SubCategory `gorm:"column:sub_category;not null"`
	Price           int               `gorm:"column:price;not null"`
	Description     string            `gorm:"column:description;not null"`
	FullDescription string            `gorm:"column:full_description;not null;default:''"`
	Image           string            `gorm:"column:image;not null"`
	Calories        int               `gorm:"column:cal;not null;default:0"`
	Protein         string            `gorm:"column:protein;not null;default:'0g'"`
	Fiber           string            `gorm:"column:fiber;not null;default:'0g'"`
	Carbs           string            `gorm:"column:carbs;not null;default:'0g'"`
	Fats            string            `gorm:"column:fats;not null;default:'0g'"`
	Ingredients     types.Ingredients `gorm:"column:ingredients;type:jsonb;serializer:json"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// Nutrition assembles the stored columns into the wire-facing panel.
func (p Product) Nutrition() types.Nutrition {
	return types.Nutrition{
		Calories: p.Calories,
		Protein:  p.Protein,
		Fiber:    p.Fiber,
		Carbs:    p.Carbs,
		Fats:     p.Fats,
	}
}

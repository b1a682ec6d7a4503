package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// Program is a multi-day meal program. Price is the per-day rate in whole
// dirhams; Schedule is the nested day/meal/item plan persisted as JSONB.
type Program struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug            string            `gorm:"column:slug;not null;uniqueIndex"`
	Name            string            `gorm:"column:name;not null"`
	SubCategory     enums.SubCategory `gorm:"column:sub_category;not null"`
	Price           int               `gorm:"column:price;not null"`
	Description     string            `gorm:"column:description;not null"`
	FullDescription string            `gorm:"column:full_description;not null;default:''"`
	Image           string            `gorm:"column:image;not null"`
	Duration        int               `gorm:"column:duration;not null;default:7"`
	Schedule        types.Schedule    `gorm:"column:schedule;type:jsonb;serializer:json"`
	Ingredients     types.Ingredients `gorm:"column:ingredients;type:jsonb;serializer:json"`
	Calories        int               `gorm:"column:cal;not null;default:0"`
	Protein         string            `gorm:"column:protein;not null;default:''"`
	Fiber           string            `gorm:"column:fiber;not null;default:''"`
	Carbs           string            `gorm:"column:carbs;not null;default:''"`
	Fats            string            `gorm:"column:fats;not null;default:''"`
	Features        pq.StringArray    `gorm:"column:features;type:text[]"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// Nutrition assembles the stored columns into the wire-facing panel.
func (p Program) Nutrition() types.Nutrition {
	return types.Nutrition{
		Calories: p.Calories,
		Protein:  p.Protein,
		Fiber:    p.Fiber,
		Carbs:    p.Carbs,
		Fats:     p.Fats,
	}
}

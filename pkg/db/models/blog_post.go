package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is one article of the storefront blog.
type BlogPost struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Excerpt     string    `gorm:"column:excerpt;not null;default:''"`
	Content     string    `gorm:"column:content;not null"`
	Author      string    `gorm:"column:author;not null;default:''"`
	Image       string    `gorm:"column:image;not null;default:''"`
	PublishedAt time.Time `gorm:"column:published_at;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

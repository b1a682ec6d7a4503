package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/enums"
)

// ContactMessage is one submission of the public contact form.
type ContactMessage struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string              `gorm:"column:name;not null"`
	Email     string              `gorm:"column:email;not null"`
	Phone     *string             `gorm:"column:phone"`
	Reason    enums.ContactReason `gorm:"column:reason;not null"`
	Message   string              `gorm:"column:message;not null"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a demo-seeded operator account. The core never enforces
// authorization — roles only decide route access and stamp
// openedBy/closedBy on cash sessions.
// Role: "owner" | "cashier"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package models

import "time"

// Client is a person receiving services from the pantry.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string     `gorm:"size:100;not null;index" json:"name"`
	Phone     string     `gorm:"size:20" json:"phone"`
	Email     string     `gorm:"size:100" json:"email"`
	Address   string     `gorm:"size:255" json:"address"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

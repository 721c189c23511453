package models

import (
	"time"

	"github.com/lib/pq"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Time            time.Time      `gorm:"not null;index" json:"time"`
	UsdaQualifier   bool           `gorm:"not null;default:false" json:"usda_qualifier"`
	NumAdults       int            `gorm:"not null;default:0" json:"num_adults"`
	NumChildren     int            `gorm:"not null;default:0" json:"num_children"`
	AppointmentType pq.StringArray `gorm:"type:text[]" json:"appointment_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

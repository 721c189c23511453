package dto

import (
	"time"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID              uint      `json:"id"`
	ClientID        uint      `json:"client_id"`
	Time            time.Time `json:"time"`
	UsdaQualifier   bool      `json:"usda_qualifier"`
	NumAdults       int       `json:"num_adults"`
	NumChildren     int       `json:"num_children"`
	AppointmentType []string  `json:"appointment_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func Appointment(ap *models.Appointment) AppointmentDTO {
	types := []string(ap.AppointmentType)
	if types == nil {
		types = []string{}
	}
	return AppointmentDTO{
		ID:              ap.ID,
		ClientID:        ap.ClientID,
		Time:            ap.Time,
		UsdaQualifier:   ap.UsdaQualifier,
		NumAdults:       ap.NumAdults,
		NumChildren:     ap.NumChildren,
		AppointmentType: types,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}

func Appointments(apps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for i := range apps {
		out = append(out, Appointment(&apps[i]))
	}
	return out
}

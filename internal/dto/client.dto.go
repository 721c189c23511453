package dto

import (
	"time"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type ClientDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	BirthDate *string   `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func Client(c *models.Client) ClientDTO {
	out := ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.BirthDate != nil {
		d := c.BirthDate.Format("2006-01-02")
		out.BirthDate = &d
	}
	return out
}

func Clients(clients []models.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(clients))
	for i := range clients {
		out = append(out, Client(&clients[i]))
	}
	return out
}

package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type Repository interface {
	ClientExists(
		ctx context.Context,
		clientID uint,
	) (bool, error)

	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// FindByID returns the appointment with its Client loaded.
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	List(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ListBetween returns appointments with start <= time < end.
	ListBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Delete removes the appointment and its notes.
	Delete(
		ctx context.Context,
		id uint,
	) error
}

package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type GetAppointment struct {
	repo  domain.Repository
	notes NoteLister
}

func NewGetAppointment(
	repo domain.Repository,
	notes NoteLister,
) *GetAppointment {
	return &GetAppointment{
		repo:  repo,
		notes: notes,
	}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (*Detail, error) {
	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ns, err := uc.notes.ListForOwners(ctx, note.KindAppointment, []uint{ap.ID})
	if err != nil {
		return nil, err
	}
	if ns == nil {
		ns = []models.Note{}
	}

	return &Detail{Appointment: ap, Notes: ns}, nil
}

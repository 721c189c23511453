package appointment

import (
	"context"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteAppointment(
	repo domain.Repository,
	rec audit.Recorder,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: rec,
	}
}

// Execute removes the appointment and its notes.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	audit.Track(ctx, uc.audit, "appointment", "deleted", id, nil)
	return nil
}

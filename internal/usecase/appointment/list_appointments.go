package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
)

type ListAppointments struct {
	repo  domain.Repository
	notes NoteLister
}

func NewListAppointments(
	repo domain.Repository,
	notes NoteLister,
) *ListAppointments {
	return &ListAppointments{
		repo:  repo,
		notes: notes,
	}
}

func (uc *ListAppointments) Execute(ctx context.Context) (*Listing, error) {
	apps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildListing(ctx, uc.notes, apps)
}

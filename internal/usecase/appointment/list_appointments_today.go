package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/pantry-scheduler/internal/timezone"
)

// ListAppointmentsToday lists the appointments of the current calendar day
// in loc, midnight to midnight.
type ListAppointmentsToday struct {
	repo  domain.Repository
	notes NoteLister
	loc   *time.Location
	now   func() time.Time
}

func NewListAppointmentsToday(
	repo domain.Repository,
	notes NoteLister,
	loc *time.Location,
	now func() time.Time,
) *ListAppointmentsToday {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &ListAppointmentsToday{
		repo:  repo,
		notes: notes,
		loc:   loc,
		now:   now,
	}
}

func (uc *ListAppointmentsToday) Execute(ctx context.Context) (*Listing, error) {
	start, end := timezone.DayRange(uc.now().In(uc.loc))

	apps, err := uc.repo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return buildListing(ctx, uc.notes, apps)
}

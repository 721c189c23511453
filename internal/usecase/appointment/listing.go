package appointment

import (
	"context"

	"github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

// NoteLister loads the notes hanging off a set of owners.
type NoteLister interface {
	ListForOwners(ctx context.Context, kind note.Kind, ids []uint) ([]models.Note, error)
}

// Listing is a page of appointments with their distinct clients and notes.
// Every slice is non-nil.
type Listing struct {
	Appointments []models.Appointment
	Clients      []models.Client
	Notes        []models.Note
}

// Detail is one appointment with its notes. Appointment.Client is loaded.
type Detail struct {
	Appointment *models.Appointment
	Notes       []models.Note
}

func buildListing(
	ctx context.Context,
	notes NoteLister,
	apps []models.Appointment,
) (*Listing, error) {

	out := &Listing{
		Appointments: apps,
		Clients:      []models.Client{},
		Notes:        []models.Note{},
	}
	if out.Appointments == nil {
		out.Appointments = []models.Appointment{}
	}

	ids := make([]uint, 0, len(apps))
	seen := make(map[uint]struct{}, len(apps))
	for _, ap := range apps {
		ids = append(ids, ap.ID)
		if _, ok := seen[ap.ClientID]; ok {
			continue
		}
		seen[ap.ClientID] = struct{}{}
		out.Clients = append(out.Clients, ap.Client)
	}

	if len(ids) == 0 {
		return out, nil
	}

	ns, err := notes.ListForOwners(ctx, note.KindAppointment, ids)
	if err != nil {
		return nil, err
	}
	if ns != nil {
		out.Notes = ns
	}
	return out, nil
}

package memory

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type Appointments struct{ s *Store }

func (s *Store) Appointments() *Appointments { return &Appointments{s: s} }

func (r *Appointments) ClientExists(_ context.Context, clientID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.clients[clientID]
	return ok, nil
}

func (r *Appointments) Create(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ap.ID = r.s.nextID()
	ap.CreatedAt, ap.UpdatedAt = r.s.now(), r.s.now()
	row := *ap
	row.Client = models.Client{}
	r.s.appointments[ap.ID] = row
	return nil
}

func (r *Appointments) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ap = r.s.withClient(ap)
	return &ap, nil
}

func (r *Appointments) filter(keep func(models.Appointment) bool, preload bool) []models.Appointment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.s.appointments {
		if !keep(ap) {
			continue
		}
		if preload {
			ap = r.s.withClient(ap)
		}
		out = append(out, ap)
	}
	sortAppointments(out)
	return out
}

func (r *Appointments) List(context.Context) ([]models.Appointment, error) {
	return r.filter(func(models.Appointment) bool { return true }, true), nil
}

func (r *Appointments) ListBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	return r.filter(func(ap models.Appointment) bool {
		return !ap.Time.Before(start) && ap.Time.Before(end)
	}, true), nil
}

func (r *Appointments) ListForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	return r.filter(func(ap models.Appointment) bool { return ap.ClientID == clientID }, false), nil
}

func (r *Appointments) Update(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.appointments[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	ap.UpdatedAt = r.s.now()
	row := *ap
	row.Client = models.Client{}
	r.s.appointments[ap.ID] = row
	return nil
}

func (r *Appointments) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	r.s.deleteNotes(models.MemoableAppointment, id)
	delete(r.s.appointments, id)
	return nil
}

var _ domain.Repository = (*Appointments)(nil)

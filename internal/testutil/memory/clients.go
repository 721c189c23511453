package memory

import (
	"context"
	"sort"
	"strings"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type Clients struct{ s *Store }

func (s *Store) Clients() *Clients { return &Clients{s: s} }

func (r *Clients) sorted(keep func(models.Client) bool) []models.Client {
	out := []models.Client{}
	for _, c := range r.s.clients {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *Clients) List(context.Context) ([]models.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(models.Client) bool { return true }), nil
}

func (r *Clients) FindByID(_ context.Context, id uint) (*models.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *Clients) AutocompleteName(_ context.Context, prefix string, limit int) ([]models.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prefix = strings.ToLower(prefix)
	out := r.sorted(func(c models.Client) bool {
		return strings.HasPrefix(strings.ToLower(c.Name), prefix)
	})
	if limit = domain.ClampLimit(limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Clients) Create(_ context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.nextID()
	c.CreatedAt, c.UpdatedAt = r.s.now(), r.s.now()
	r.s.clients[c.ID] = *c
	return nil
}

func (r *Clients) Update(_ context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	c.UpdatedAt = r.s.now()
	r.s.clients[c.ID] = *c
	return nil
}

func (r *Clients) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrNotFound
	}
	for aid, ap := range r.s.appointments {
		if ap.ClientID == id {
			r.s.deleteNotes(models.MemoableAppointment, aid)
			delete(r.s.appointments, aid)
		}
	}
	r.s.deleteNotes(models.MemoableClient, id)
	delete(r.s.clients, id)
	return nil
}

var _ domain.Repository = (*Clients)(nil)

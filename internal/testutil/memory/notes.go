package memory

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type Notes struct{ s *Store }

func (s *Store) Notes() *Notes { return &Notes{s: s} }

func (r *Notes) OwnerExists(_ context.Context, owner domain.Owner) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ok bool
	switch owner.(type) {
	case domain.ClientOwner:
		_, ok = r.s.clients[owner.OwnerID()]
	case domain.AppointmentOwner:
		_, ok = r.s.appointments[owner.OwnerID()]
	}
	return ok, nil
}

func (r *Notes) Create(_ context.Context, n *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n.ID = r.s.nextID()
	n.CreatedAt, n.UpdatedAt = r.s.now(), r.s.now()
	r.s.notes[n.ID] = *n
	return nil
}

func (r *Notes) FindForOwner(_ context.Context, owner domain.Owner, id uint) (*models.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[id]
	if !ok || n.MemoableType != string(owner.Kind()) || n.MemoableID != owner.OwnerID() {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (r *Notes) Update(_ context.Context, n *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notes[n.ID]; !ok {
		return domain.ErrNotFound
	}
	n.UpdatedAt = r.s.now()
	r.s.notes[n.ID] = *n
	return nil
}

func (r *Notes) Delete(_ context.Context, n *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notes[n.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.notes, n.ID)
	return nil
}

func (r *Notes) ListForOwners(_ context.Context, kind domain.Kind, ids []uint) ([]models.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := []models.Note{}
	for _, n := range r.s.notes {
		if n.MemoableType != string(kind) {
			continue
		}
		if _, ok := want[n.MemoableID]; ok {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ domain.Repository = (*Notes)(nil)

package memory

import (
	"context"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type Users struct{ s *Store }

func (s *Store) Users() *Users { return &Users{s: s} }

func (r *Users) find(match func(models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Users) FindByID(_ context.Context, id uint) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	email = domain.NormalizeEmail(email)
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *Users) FindByResetDigest(_ context.Context, digest string) (*models.User, error) {
	if digest == "" {
		return nil, domain.ErrNotFound
	}
	return r.find(func(u models.User) bool { return u.ResetPasswordDigest == digest })
}

func (r *Users) emailTaken(email string, except uint) bool {
	for _, u := range r.s.users {
		if u.Email == email && u.ID != except {
			return true
		}
	}
	return false
}

func (r *Users) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.emailTaken(u.Email, 0) {
		return domain.ErrEmailTaken
	}
	u.ID = r.s.nextID()
	u.CreatedAt, u.UpdatedAt = r.s.now(), r.s.now()
	r.s.users[u.ID] = *u
	return nil
}

func (r *Users) Update(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrEmailTaken
	}
	u.UpdatedAt = r.s.now()
	r.s.users[u.ID] = *u
	return nil
}

var _ domain.Repository = (*Users)(nil)

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) first(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *UserGormRepository) FindByResetDigest(ctx context.Context, digest string) (*models.User, error) {
	if digest == "" {
		return nil, domain.ErrNotFound
	}
	return r.first(ctx, "reset_password_digest = ?", digest)
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	res := r.db.WithContext(ctx).Model(u).Select("*").Updates(u)
	switch {
	case httperr.IsUniqueViolation(res.Error):
		return domain.ErrEmailTaken
	case res.Error != nil:
		return res.Error
	case res.RowsAffected == 0:
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.Repository = (*UserGormRepository)(nil)

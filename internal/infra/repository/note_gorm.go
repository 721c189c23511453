package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type NoteGormRepository struct {
	db *gorm.DB
}

func NewNoteGormRepository(db *gorm.DB) *NoteGormRepository {
	return &NoteGormRepository{db: db}
}

func (r *NoteGormRepository) OwnerExists(ctx context.Context, owner domain.Owner) (bool, error) {
	var model any
	switch owner.(type) {
	case domain.ClientOwner:
		model = &models.Client{}
	case domain.AppointmentOwner:
		model = &models.Appointment{}
	default:
		return false, fmt.Errorf("unsupported note owner %T", owner)
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", owner.OwnerID()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *NoteGormRepository) Create(ctx context.Context, n *models.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoteGormRepository) FindForOwner(
	ctx context.Context,
	owner domain.Owner,
	id uint,
) (*models.Note, error) {

	var n models.Note
	err := r.db.WithContext(ctx).
		Where("id = ? AND memoable_type = ? AND memoable_id = ?", id, string(owner.Kind()), owner.OwnerID()).
		First(&n).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find note %d: %w", id, err)
	}
	return &n, nil
}

func (r *NoteGormRepository) Update(ctx context.Context, n *models.Note) error {
	res := r.db.WithContext(ctx).Model(n).Select("*").Updates(n)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NoteGormRepository) Delete(ctx context.Context, n *models.Note) error {
	res := r.db.WithContext(ctx).Delete(&models.Note{}, n.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NoteGormRepository) ListForOwners(
	ctx context.Context,
	kind domain.Kind,
	ids []uint,
) ([]models.Note, error) {

	notes := []models.Note{}
	if len(ids) == 0 {
		return notes, nil
	}

	if err := r.db.WithContext(ctx).
		Where("memoable_type = ? AND memoable_id IN ?", string(kind), ids).
		Order("created_at ASC, id ASC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

var _ domain.Repository = (*NoteGormRepository)(nil)

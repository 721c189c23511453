package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes s safe to use as a literal LIKE prefix.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("name ASC, id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client %d: %w", id, err)
	}
	return &c, nil
}

func (r *ClientGormRepository) AutocompleteName(
	ctx context.Context,
	prefix string,
	limit int,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where(`name ILIKE ? ESCAPE '\'`, EscapeLike(prefix)+"%").
		Order("name ASC, id ASC").
		Limit(domain.ClampLimit(limit)).
		Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	res := r.db.WithContext(ctx).Model(c).Select("*").Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes notes on the client's appointments, the appointments,
// the client's own notes and the client, in that order.
func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointmentIDs := tx.Model(&models.Appointment{}).
			Select("id").
			Where("client_id = ?", id)

		if err := tx.
			Where("memoable_type = ? AND memoable_id IN (?)", models.MemoableAppointment, appointmentIDs).
			Delete(&models.Note{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("client_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("memoable_type = ? AND memoable_id = ?", models.MemoableClient, id).
			Delete(&models.Note{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Client{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

var _ domain.Repository = (*ClientGormRepository)(nil)

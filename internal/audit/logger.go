package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
	"github.com/BruksfildServices01/pantry-scheduler/internal/monitoring"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder stores audit events. Implementations never fail the caller.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type Store interface {
	Recorder
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func New(db *gorm.DB, log logrus.FieldLogger) *Logger {
	return &Logger{db: db, log: log}
}

func (l *Logger) Record(ctx context.Context, ev Event) {
	row := ToRow(ev)
	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		monitoring.AuditWriteFailures.Inc()
		l.log.WithError(err).WithFields(logrus.Fields{
			"action": ev.Action,
			"entity": ev.Entity,
		}).Error("audit write failed")
	}
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ToRow converts an event into its persisted form.
func ToRow(ev Event) models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}
}

// Nop discards events.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

var _ Store = (*Logger)(nil)

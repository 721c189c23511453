package appointment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	log   logrus.FieldLogger
}

func NewCreateAppointment(
	repo domain.Repository,
	rec audit.Recorder,
	log logrus.FieldLogger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: rec,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates and stores a new appointment. The returned appointment
// has its Client loaded.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	attrs domain.Attributes,
) (*models.Appointment, error) {

	ap := domain.Build(attrs)

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	exists := false
	if ap.ClientID != 0 {
		var err error
		if exists, err = uc.repo.ClientExists(ctx, ap.ClientID); err != nil {
			return nil, err
		}
	}

	if err := httperr.Invalid(domain.Validate(ap, exists)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	saved, err := uc.repo.FindByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"appointment_id": saved.ID,
		"client_id":      saved.ClientID,
	}).Info("appointment created")

	audit.Track(ctx, uc.audit, "appointment", "created", saved.ID, nil)

	return saved, nil
}

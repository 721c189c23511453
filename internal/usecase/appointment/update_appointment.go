package appointment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	log   logrus.FieldLogger
}

func NewUpdateAppointment(
	repo domain.Repository,
	rec audit.Recorder,
	log logrus.FieldLogger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: rec,
		log:   log,
	}
}

// Execute merges attrs into appointment id. A client change is not applied;
// it comes back in rejected while the remaining fields are still saved.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	attrs domain.Attributes,
) (ap *models.Appointment, rejected httperr.Errors, err error) {

	ap, err = uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rejected = domain.Merge(ap, attrs)

	// The stored client is known to exist.
	if err := httperr.Invalid(domain.Validate(ap, true)); err != nil {
		return nil, nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, nil, err
	}

	if rejected.Any() {
		uc.log.WithFields(logrus.Fields{
			"appointment_id": ap.ID,
			"client_id":      ap.ClientID,
		}).Warn("appointment client change ignored")
	}

	var meta any
	if rejected.Any() {
		meta = map[string]any{"rejected": rejected}
	}
	audit.Track(ctx, uc.audit, "appointment", "updated", ap.ID, meta)

	return ap, rejected, nil
}

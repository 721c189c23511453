package client

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	appointmentDomain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

// Detail is a client with its appointments and every note on the client
// or on one of those appointments.
type Detail struct {
	Client       *models.Client
	Appointments []models.Appointment
	Notes        []models.Note
}

type NoteLister interface {
	ListForOwners(ctx context.Context, kind note.Kind, ids []uint) ([]models.Note, error)
}

// ======================================================
// SHOW
// ======================================================

type GetClient struct {
	repo         domain.Repository
	appointments appointmentDomain.Repository
	notes        NoteLister
}

func NewGetClient(
	repo domain.Repository,
	appointments appointmentDomain.Repository,
	notes NoteLister,
) *GetClient {
	return &GetClient{repo: repo, appointments: appointments, notes: notes}
}

func (uc *GetClient) Execute(ctx context.Context, id uint) (*Detail, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apps, err := uc.appointments.ListForClient(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Appointment{}
	}

	notes, err := uc.notes.ListForOwners(ctx, note.KindClient, []uint{c.ID})
	if err != nil {
		return nil, err
	}
	out := append([]models.Note{}, notes...)

	if len(apps) > 0 {
		ids := make([]uint, 0, len(apps))
		for _, ap := range apps {
			ids = append(ids, ap.ID)
		}
		appNotes, err := uc.notes.ListForOwners(ctx, note.KindAppointment, ids)
		if err != nil {
			return nil, err
		}
		out = append(out, appNotes...)
	}

	return &Detail{Client: c, Appointments: apps, Notes: out}, nil
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	audit audit.Recorder
	log   logrus.FieldLogger
}

func NewCreateClient(repo domain.Repository, rec audit.Recorder, log logrus.FieldLogger) *CreateClient {
	return &CreateClient{repo: repo, audit: rec, log: log}
}

func (uc *CreateClient) Execute(ctx context.Context, attrs domain.Attributes) (*models.Client, error) {
	c := &models.Client{}

	errs := domain.Apply(c, attrs)
	for field, msgs := range domain.Validate(c) {
		errs[field] = append(errs[field], msgs...)
	}
	if err := httperr.Invalid(errs); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.log.WithField("client_id", c.ID).Info("client created")
	audit.Track(ctx, uc.audit, "client", "created", c.ID, nil)

	return c, nil
}

type UpdateClient struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateClient(repo domain.Repository, rec audit.Recorder) *UpdateClient {
	return &UpdateClient{repo: repo, audit: rec}
}

func (uc *UpdateClient) Execute(ctx context.Context, id uint, attrs domain.Attributes) (*models.Client, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := domain.Apply(c, attrs)
	for field, msgs := range domain.Validate(c) {
		errs[field] = append(errs[field], msgs...)
	}
	if err := httperr.Invalid(errs); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	audit.Track(ctx, uc.audit, "client", "updated", c.ID, nil)
	return c, nil
}

type DeleteClient struct {
	repo  domain.Repository
	audit audit.Recorder
	log   logrus.FieldLogger
}

func NewDeleteClient(repo domain.Repository, rec audit.Recorder, log logrus.FieldLogger) *DeleteClient {
	return &DeleteClient{repo: repo, audit: rec, log: log}
}

// Execute removes the client, its appointments and all their notes.
func (uc *DeleteClient) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.log.WithField("client_id", id).Info("client deleted")
	audit.Track(ctx, uc.audit, "client", "deleted", id, nil)
	return nil
}

package appointment

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/logger"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
	"github.com/BruksfildServices01/pantry-scheduler/internal/testutil/memory"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	store  *memory.Store
	client models.Client
	log    logrus.FieldLogger
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:  store,
		client: store.AddClient(models.Client{Name: "Ana"}),
		log:    logger.Discard(),
	}
}

func TestTodayUsesCalendarDay(t *testing.T) {
	f := newFixture()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	now := time.Date(2024, 3, 14, 23, 30, 0, 0, loc)
	for _, at := range []time.Time{
		now.AddDate(0, 0, -1),
		time.Date(2024, 3, 14, 0, 15, 0, 0, loc),
		now.AddDate(0, 0, 1),
		time.Date(2024, 3, 15, 0, 0, 0, 0, loc),
	} {
		f.store.AddAppointment(models.Appointment{ClientID: f.client.ID, Time: at})
	}

	uc := NewListAppointmentsToday(f.store.Appointments(), f.store.Notes(), loc, func() time.Time { return now })
	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, out.Appointments, 1)
	assert.Equal(t, 14, out.Appointments[0].Time.Day())
	require.Len(t, out.Clients, 1)
	assert.Equal(t, "Ana", out.Clients[0].Name)
}

func TestListBundlesDistinctClientsAndNotes(t *testing.T) {
	f := newFixture()
	other := f.store.AddClient(models.Client{Name: "Bo"})

	a1 := f.store.AddAppointment(models.Appointment{ClientID: f.client.ID, Time: time.Now()})
	f.store.AddAppointment(models.Appointment{ClientID: f.client.ID, Time: time.Now().Add(time.Hour)})
	f.store.AddAppointment(models.Appointment{ClientID: other.ID, Time: time.Now().Add(2 * time.Hour)})
	f.store.AddNote(models.Note{Body: "late", MemoableType: models.MemoableAppointment, MemoableID: a1.ID})
	f.store.AddNote(models.Note{Body: "client note", MemoableType: models.MemoableClient, MemoableID: f.client.ID})

	out, err := NewListAppointments(f.store.Appointments(), f.store.Notes()).Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, out.Appointments, 3)
	assert.Len(t, out.Clients, 2)
	require.Len(t, out.Notes, 1)
	assert.Equal(t, "late", out.Notes[0].Body)
}

func TestListEmptyHasNonNilSlices(t *testing.T) {
	f := newFixture()

	out, err := NewListAppointments(f.store.Appointments(), f.store.Notes()).Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out.Appointments)
	assert.NotNil(t, out.Clients)
	assert.NotNil(t, out.Notes)
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture()
	logs := f.store.AuditLogs()
	uc := NewCreateAppointment(f.store.Appointments(), logs, f.log)

	ap, err := uc.Execute(context.Background(), domain.Attributes{
		ClientID:        &f.client.ID,
		Time:            ptr(time.Date(2017, 5, 5, 0, 0, 0, 0, time.UTC)),
		UsdaQualifier:   ptr(false),
		NumAdults:       ptr(15),
		NumChildren:     ptr(12),
		AppointmentType: []string{"food"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, f.store.AppointmentCount())
	assert.Equal(t, "Ana", ap.Client.Name)
	assert.Equal(t, []string{"appointment_created"}, logs.Actions())
}

func TestCreateAppointmentRejectsMissingClient(t *testing.T) {
	f := newFixture()
	uc := NewCreateAppointment(f.store.Appointments(), f.store.AuditLogs(), f.log)

	_, err := uc.Execute(context.Background(), domain.Attributes{
		Time:      ptr(time.Now()),
		NumAdults: ptr(1),
	})

	fields, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, fields, "client_id")
	assert.Zero(t, f.store.AppointmentCount())

	_, err = uc.Execute(context.Background(), domain.Attributes{
		ClientID: ptr(uint(999)),
		Time:     ptr(time.Now()),
	})
	fields, ok = httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"must exist"}, fields["client"])
	assert.Zero(t, f.store.AppointmentCount())
}

func TestUpdateAppointmentKeepsClient(t *testing.T) {
	f := newFixture()
	other := f.store.AddClient(models.Client{Name: "Bo"})
	ap := f.store.AddAppointment(models.Appointment{ClientID: f.client.ID, Time: time.Now(), NumAdults: 1})

	uc := NewUpdateAppointment(f.store.Appointments(), f.store.AuditLogs(), f.log)
	got, rejected, err := uc.Execute(context.Background(), ap.ID, domain.Attributes{
		ClientID:    &other.ID,
		NumAdults:   ptr(20),
		NumChildren: ptr(18),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"cannot be changed"}, rejected["client_id"])
	assert.Equal(t, f.client.ID, got.ClientID)

	stored, ok := f.store.AppointmentByID(ap.ID)
	require.True(t, ok)
	assert.Equal(t, f.client.ID, stored.ClientID)
	assert.Equal(t, 20, stored.NumAdults)
	assert.Equal(t, 18, stored.NumChildren)
}

func TestUpdateAppointmentValidationPersistsNothing(t *testing.T) {
	f := newFixture()
	ap := f.store.AddAppointment(models.Appointment{ClientID: f.client.ID, Time: time.Now(), NumAdults: 1})

	uc := NewUpdateAppointment(f.store.Appointments(), f.store.AuditLogs(), f.log)
	_, _, err := uc.Execute(context.Background(), ap.ID, domain.Attributes{NumAdults: ptr(-3)})

	_, ok := httperr.AsValidation(err)
	require.True(t, ok)
	stored, _ := f.store.AppointmentByID(ap.ID)
	assert.Equal(t, 1, stored.NumAdults)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	f := newFixture()
	uc := NewUpdateAppointment(f.store.Appointments(), f.store.AuditLogs(), f.log)

	_, _, err := uc.Execute(context.Background(), 404, domain.Attributes{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture()
	ap := f.store.AddAppointment(models.Appointment{ClientID: f.client.ID, Time: time.Now()})
	f.store.AddNote(models.Note{Body: "x", MemoableType: models.MemoableAppointment, MemoableID: ap.ID})

	uc := NewDeleteAppointment(f.store.Appointments(), f.store.AuditLogs())

	require.NoError(t, uc.Execute(context.Background(), ap.ID))
	assert.Zero(t, f.store.AppointmentCount())
	assert.Zero(t, f.store.NoteCount())

	assert.ErrorIs(t, uc.Execute(context.Background(), ap.ID), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Execute(context.Background(), 0), domain.ErrNotFound)
}

func TestGetAppointment(t *testing.T) {
	f := newFixture()
	ap := f.store.AddAppointment(models.Appointment{ClientID: f.client.ID, Time: time.Now()})

	out, err := NewGetAppointment(f.store.Appointments(), f.store.Notes()).Execute(context.Background(), ap.ID)

	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Appointment.Client.Name)
	assert.NotNil(t, out.Notes)
}

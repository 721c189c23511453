package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	"github.com/BruksfildServices01/pantry-scheduler/internal/testutil"
)

func TestRecordInsertsRow(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	log, hook := test.NewNullLogger()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	id := uint(9)
	New(db, log).Record(context.Background(), Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &id,
	})

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, hook.AllEntries())
}

func TestRecordSwallowsFailures(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	log, hook := test.NewNullLogger()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	New(db, log).Record(context.Background(), Event{Action: "client_deleted", Entity: "client"})

	require.NoError(t, mock.ExpectationsWereMet())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "client_deleted", entry.Data["action"])
}

func TestListCountsThenPages(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action = \$1`).
		WithArgs("note_created").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE action = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "entity"}).
			AddRow(3, "note_created", "note").
			AddRow(2, "note_created", "note"))

	logs, total, err := New(db, logrus.New()).List(context.Background(), Filter{
		Action: "note_created",
		Limit:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, logs, 2)
	assert.Equal(t, uint(3), logs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToRowEncodesMetadata(t *testing.T) {
	row := ToRow(Event{Action: "a", Metadata: map[string]any{"rejected": []string{"client_id"}}})
	assert.JSONEq(t, `{"rejected":["client_id"]}`, row.Metadata)

	assert.Empty(t, ToRow(Event{Action: "a"}).Metadata)
}

type captured struct{ events []Event }

func (c *captured) Record(_ context.Context, ev Event) { c.events = append(c.events, ev) }

func TestTrackUsesPrincipal(t *testing.T) {
	rec := &captured{}
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 4})

	Track(ctx, rec, "note", "deleted", 12, nil)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "note_deleted", ev.Action)
	assert.Equal(t, "note", ev.Entity)
	require.NotNil(t, ev.UserID)
	assert.Equal(t, uint(4), *ev.UserID)
	assert.Equal(t, uint(12), *ev.EntityID)
}

func TestTrackAnonymous(t *testing.T) {
	rec := &captured{}

	Track(context.Background(), rec, "client", "created", 1, nil)

	require.Len(t, rec.events, 1)
	assert.Nil(t, rec.events[0].UserID)
}

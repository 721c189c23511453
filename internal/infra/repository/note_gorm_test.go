package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
	"github.com/BruksfildServices01/pantry-scheduler/internal/testutil"
)

func TestNoteOwnerExistsPicksTable(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewNoteGormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE id = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE id = \$1`).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.OwnerExists(context.Background(), domain.ClientOwner{ID: 2})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.OwnerExists(context.Background(), domain.AppointmentOwner{ID: 8})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteFindForOwnerScopesByOwner(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE id = \$1 AND memoable_type = \$2 AND memoable_id = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewNoteGormRepository(db).FindForOwner(context.Background(), domain.ClientOwner{ID: 1}, 4)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteListForOwnersSkipsEmptyIDs(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	notes, err := NewNoteGormRepository(db).ListForOwners(context.Background(), domain.KindAppointment, nil)

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteListForOwners(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE memoable_type = \$1 AND memoable_id IN \(\$2,\$3\)`).
		WithArgs("Appointment", 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "memoable_type", "memoable_id"}).
			AddRow(1, "late", "Appointment", 2))

	notes, err := NewNoteGormRepository(db).ListForOwners(context.Background(), domain.KindAppointment, []uint{1, 2})

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "late", notes[0].Body)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteUpdateMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notes" SET .+ WHERE .*"id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n := &models.Note{ID: 8, Body: "x", MemoableType: models.MemoableClient, MemoableID: 1}
	err := NewNoteGormRepository(db).Update(context.Background(), n)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

func TestAppointmentTypeNeverNull(t *testing.T) {
	b, err := json.Marshal(Appointment(&models.Appointment{ID: 1}))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, []any{}, out["appointment_type"])
}

func TestClientBirthDateFormat(t *testing.T) {
	d := time.Date(1980, 2, 29, 0, 0, 0, 0, time.UTC)

	out := Client(&models.Client{Name: "Ana", BirthDate: &d})
	require.NotNil(t, out.BirthDate)
	assert.Equal(t, "1980-02-29", *out.BirthDate)

	assert.Nil(t, Client(&models.Client{}).BirthDate)
}

func TestCollectionsAreNonNil(t *testing.T) {
	assert.NotNil(t, Appointments(nil))
	assert.NotNil(t, Clients(nil))
	assert.NotNil(t, Notes(nil))
}

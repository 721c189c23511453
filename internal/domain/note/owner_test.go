package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

func TestPermissionsPerOwner(t *testing.T) {
	client := ClientOwner{ID: 1}
	assert.True(t, client.Permits(ActionCreate))
	assert.True(t, client.Permits(ActionUpdate))
	assert.False(t, client.Permits(ActionDestroy))

	appt := AppointmentOwner{ID: 1}
	assert.True(t, appt.Permits(ActionCreate))
	assert.True(t, appt.Permits(ActionUpdate))
	assert.True(t, appt.Permits(ActionDestroy))
}

func TestKindActions(t *testing.T) {
	assert.Equal(t, []Action{ActionCreate, ActionUpdate}, KindClient.Actions())
	assert.Equal(t, []Action{ActionCreate, ActionUpdate, ActionDestroy}, KindAppointment.Actions())
	assert.Nil(t, Kind("User").Actions())
}

func TestOwnerRoundTrip(t *testing.T) {
	n := &models.Note{}
	Attach(n, AppointmentOwner{ID: 12})

	assert.Equal(t, "Appointment", n.MemoableType)
	assert.Equal(t, uint(12), n.MemoableID)

	owner, err := OwnerOf(n)
	require.NoError(t, err)
	assert.Equal(t, AppointmentOwner{ID: 12}, owner)

	_, err = OwnerOf(&models.Note{MemoableType: "Invoice"})
	assert.Error(t, err)
}

func TestOwnerNotFoundCodes(t *testing.T) {
	assert.True(t, httperr.IsBusiness(ClientOwner{}.NotFound(), "client_not_found"))
	assert.True(t, httperr.IsBusiness(AppointmentOwner{}.NotFound(), "appointment_not_found"))
}

func TestValidateBody(t *testing.T) {
	n := &models.Note{}
	body := "  "
	Apply(n, Attributes{Body: &body})
	assert.Equal(t, []string{"can't be blank"}, Validate(n)["body"])

	body = " called about delivery "
	Apply(n, Attributes{Body: &body})
	assert.Equal(t, "called about delivery", n.Body)
	assert.False(t, Validate(n).Any())
}

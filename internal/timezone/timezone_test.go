package timezone

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToLocal(t *testing.T) {
	assert.Equal(t, time.Local, Location(""))
	assert.Equal(t, time.Local, Location("Local"))
	assert.Equal(t, time.Local, Location("Mars/Olympus_Mons"))
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestDayRange(t *testing.T) {
	at := time.Date(2024, 3, 14, 17, 45, 0, 0, time.UTC)

	start, end := DayRange(at)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestDayRangeAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 is the spring-forward day in New York.
	start, end := DayRange(time.Date(2024, 3, 10, 12, 0, 0, 0, loc))

	assert.Equal(t, 23*time.Hour, end.Sub(start))
	assert.Equal(t, 11, end.Day())
}

package mailer

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMailerWritesEntry(t *testing.T) {
	log, hook := test.NewNullLogger()

	err := NewLogMailer(log).SendPasswordReset(context.Background(), "ana@example.org", "tok")
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "ana@example.org", entry.Data["to"])
	assert.Equal(t, "tok", entry.Data["reset_token"])
}

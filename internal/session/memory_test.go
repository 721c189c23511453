package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRevocationExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Minute))

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = s.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, _ = s.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
}

func TestMemoryStoreIgnoresExpiredTokens(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Revoke(context.Background(), "jti", 0))

	revoked, _ := s.IsRevoked(context.Background(), "jti")
	assert.False(t, revoked)
	assert.Empty(t, s.revoked)
}

var _ Store = (*MemoryStore)(nil)
var _ Store = (*RedisStore)(nil)

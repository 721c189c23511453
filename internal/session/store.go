// Package session tracks revoked access tokens until they expire.
package session

import (
	"context"
	"time"
)

type Store interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Close() error
}

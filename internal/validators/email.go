package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// Resolver is the subset of *net.Resolver used for the domain check.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainAccepts reports whether the domain after the last "@" has an
// MX record or, failing that, any address record.
func EmailDomainAccepts(ctx context.Context, r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.TrimSuffix(email[at+1:], ".")

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// IsEmailDomainValid runs EmailDomainAccepts against the system resolver.
func IsEmailDomainValid(email string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()
	return EmailDomainAccepts(ctx, net.DefaultResolver, email)
}

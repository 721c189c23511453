package user

import (
	"context"

	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
)

type SignIn struct {
	repo   domain.Repository
	issuer *auth.TokenIssuer
}

func NewSignIn(repo domain.Repository, issuer *auth.TokenIssuer) *SignIn {
	return &SignIn{repo: repo, issuer: issuer}
}

// Execute checks the credentials. Unknown emails and wrong passwords fail
// the same way.
func (uc *SignIn) Execute(ctx context.Context, email, password string) (*Session, error) {
	u, err := uc.repo.FindByEmail(ctx, email)
	if httperr.IsBusiness(err, "user_not_found") {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, p, err := uc.issuer.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, Principal: p}, nil
}

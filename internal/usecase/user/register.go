package user

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

// DomainChecker reports whether an email's domain can receive mail.
// A nil checker accepts every domain.
type DomainChecker func(email string) bool

// Session is a signed-in user and their access token.
type Session struct {
	User      *models.User
	Token     string
	Principal auth.Principal
}

type RegisterInput struct {
	Name                 string `json:"name" form:"user[name]"`
	Email                string `json:"email" form:"user[email]"`
	Password             string `json:"password" form:"user[password]"`
	PasswordConfirmation string `json:"password_confirmation" form:"user[password_confirmation]"`
}

type Register struct {
	repo        domain.Repository
	issuer      *auth.TokenIssuer
	checkDomain DomainChecker
	audit       audit.Recorder
	log         logrus.FieldLogger
}

func NewRegister(
	repo domain.Repository,
	issuer *auth.TokenIssuer,
	checkDomain DomainChecker,
	rec audit.Recorder,
	log logrus.FieldLogger,
) *Register {
	return &Register{
		repo:        repo,
		issuer:      issuer,
		checkDomain: checkDomain,
		audit:       rec,
		log:         log,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	email := domain.NormalizeEmail(in.Email)

	errs := httperr.Errors{}
	domain.ValidateEmail(errs, email)
	if _, bad := errs["email"]; !bad && uc.checkDomain != nil && !uc.checkDomain(email) {
		errs.Add("email", "domain does not accept mail")
	}
	domain.ValidatePassword(errs, in.Password, in.PasswordConfirmation)
	if err := httperr.Invalid(errs); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{Name: in.Name, Email: email, PasswordHash: hash}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, p, err := uc.issuer.Issue(u)
	if err != nil {
		return nil, err
	}

	uc.log.WithField("user_id", u.ID).Info("user registered")
	audit.Track(auth.WithPrincipal(ctx, p), uc.audit, "user", "created", u.ID, nil)

	return &Session{User: u, Token: token, Principal: p}, nil
}

package user

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/mailer"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

// ======================================================
// REQUEST RESET
// ======================================================

type RequestPasswordReset struct {
	repo   domain.Repository
	mailer mailer.Mailer
	now    func() time.Time
	log    logrus.FieldLogger
}

func NewRequestPasswordReset(
	repo domain.Repository,
	m mailer.Mailer,
	now func() time.Time,
	log logrus.FieldLogger,
) *RequestPasswordReset {
	if now == nil {
		now = time.Now
	}
	return &RequestPasswordReset{repo: repo, mailer: m, now: now, log: log}
}

// Execute issues a reset token when the account exists. Unknown emails are
// not an error so callers cannot probe for accounts.
func (uc *RequestPasswordReset) Execute(ctx context.Context, email string) error {
	u, err := uc.repo.FindByEmail(ctx, email)
	if httperr.IsBusiness(err, "user_not_found") {
		uc.log.Debug("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	token, digest := auth.NewResetToken()
	sentAt := uc.now()
	u.ResetPasswordDigest = digest
	u.ResetPasswordSentAt = &sentAt

	if err := uc.repo.Update(ctx, u); err != nil {
		return err
	}

	return uc.mailer.SendPasswordReset(ctx, u.Email, token)
}

// ======================================================
// RESET
// ======================================================

type ResetPasswordInput struct {
	ResetPasswordToken   string `json:"reset_password_token" form:"user[reset_password_token]"`
	Password             string `json:"password" form:"user[password]"`
	PasswordConfirmation string `json:"password_confirmation" form:"user[password_confirmation]"`
}

type ResetPassword struct {
	repo domain.Repository
	now  func() time.Time
}

func NewResetPassword(repo domain.Repository, now func() time.Time) *ResetPassword {
	if now == nil {
		now = time.Now
	}
	return &ResetPassword{repo: repo, now: now}
}

func (uc *ResetPassword) Execute(ctx context.Context, in ResetPasswordInput) (*models.User, error) {
	if in.ResetPasswordToken == "" {
		return nil, httperr.Field("reset_password_token", "can't be blank")
	}

	u, err := uc.repo.FindByResetDigest(ctx, auth.DigestResetToken(in.ResetPasswordToken))
	if httperr.IsBusiness(err, "user_not_found") {
		return nil, httperr.Field("reset_password_token", "is invalid")
	}
	if err != nil {
		return nil, err
	}

	if domain.ResetTokenExpired(u.ResetPasswordSentAt, uc.now()) {
		return nil, httperr.Field("reset_password_token", "has expired, please request a new one")
	}

	errs := httperr.Errors{}
	domain.ValidatePassword(errs, in.Password, in.PasswordConfirmation)
	if err := httperr.Invalid(errs); err != nil {
		return nil, err
	}

	if u.PasswordHash, err = auth.HashPassword(in.Password); err != nil {
		return nil, err
	}
	u.ResetPasswordDigest = ""
	u.ResetPasswordSentAt = nil

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

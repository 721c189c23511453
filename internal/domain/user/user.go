package user

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

// ResetPasswordWithin bounds the age of a password reset token.
const ResetPasswordWithin = 6 * time.Hour

var (
	ErrNotFound           = httperr.ErrBusiness("user_not_found")
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
	ErrEmailTaken         = httperr.Field("email", "has already been taken")
)

type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetDigest(ctx context.Context, digest string) (*models.User, error)
	// Create returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
}

var validate = validator.New()

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(errs httperr.Errors, email string) {
	if email == "" {
		errs.Add("email", "can't be blank")
		return
	}
	if validate.Var(email, "email") != nil {
		errs.Add("email", "is invalid")
	}
}

// ValidatePassword checks length and confirmation.
func ValidatePassword(errs httperr.Errors, password, confirmation string) {
	if len(password) < auth.MinPasswordLength {
		errs.Add("password", "is too short (minimum is 6 characters)")
	}
	if password != confirmation {
		errs.Add("password_confirmation", "doesn't match Password")
	}
}

// ResetTokenExpired reports whether a token sent at sentAt is unusable at now.
func ResetTokenExpired(sentAt *time.Time, now time.Time) bool {
	return sentAt == nil || now.Sub(*sentAt) > ResetPasswordWithin
}

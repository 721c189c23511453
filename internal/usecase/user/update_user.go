package user

import (
	"context"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

var (
	ErrUnauthorized = httperr.ErrBusiness("unauthorized")
	ErrForbidden    = httperr.ErrBusiness("forbidden")
)

type UpdateInput struct {
	Name                 *string `json:"name" form:"user[name]"`
	Email                *string `json:"email" form:"user[email]"`
	Password             *string `json:"password" form:"user[password]"`
	PasswordConfirmation *string `json:"password_confirmation" form:"user[password_confirmation]"`
	CurrentPassword      string  `json:"current_password" form:"user[current_password]"`
}

type UpdateUser struct {
	repo        domain.Repository
	checkDomain DomainChecker
	audit       audit.Recorder
}

func NewUpdateUser(repo domain.Repository, checkDomain DomainChecker, rec audit.Recorder) *UpdateUser {
	return &UpdateUser{repo: repo, checkDomain: checkDomain, audit: rec}
}

// Execute updates the principal's own account.
func (uc *UpdateUser) Execute(ctx context.Context, id uint, in UpdateInput) (*models.User, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	if p.UserID != id {
		return nil, ErrForbidden
	}

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := httperr.Errors{}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		domain.ValidateEmail(errs, email)
		if _, bad := errs["email"]; !bad && email != u.Email && uc.checkDomain != nil && !uc.checkDomain(email) {
			errs.Add("email", "domain does not accept mail")
		}
		u.Email = email
	}
	if in.Password != nil {
		confirmation := *in.Password
		if in.PasswordConfirmation != nil {
			confirmation = *in.PasswordConfirmation
		}
		switch {
		case in.CurrentPassword == "":
			errs.Add("current_password", "can't be blank")
		case !auth.CheckPassword(u.PasswordHash, in.CurrentPassword):
			errs.Add("current_password", "is invalid")
		}
		domain.ValidatePassword(errs, *in.Password, confirmation)
	}
	if err := httperr.Invalid(errs); err != nil {
		return nil, err
	}

	if in.Password != nil {
		if u.PasswordHash, err = auth.HashPassword(*in.Password); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	audit.Track(ctx, uc.audit, "user", "updated", u.ID, nil)
	return u, nil
}

package client

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("client_not_found")

const (
	DefaultAutocompleteLimit = 10
	MaxAutocompleteLimit     = 50
)

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	// AutocompleteName matches names starting with prefix, case-insensitively.
	AutocompleteName(ctx context.Context, prefix string, limit int) ([]models.Client, error)
	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error
	// Delete removes the client with its appointments and every related note.
	Delete(ctx context.Context, id uint) error
}

// Attributes is the writable attribute set. BirthDate is YYYY-MM-DD;
// an empty string clears it.
type Attributes struct {
	Name      *string `json:"name" form:"client[name]"`
	Phone     *string `json:"phone" form:"client[phone]"`
	Email     *string `json:"email" form:"client[email]"`
	Address   *string `json:"address" form:"client[address]"`
	BirthDate *string `json:"birth_date" form:"client[birth_date]"`
}

// Apply copies attrs onto c and returns parse errors.
func Apply(c *models.Client, attrs Attributes) httperr.Errors {
	errs := httperr.Errors{}

	if attrs.Name != nil {
		c.Name = strings.TrimSpace(*attrs.Name)
	}
	if attrs.Phone != nil {
		c.Phone = strings.TrimSpace(*attrs.Phone)
	}
	if attrs.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*attrs.Email))
	}
	if attrs.Address != nil {
		c.Address = strings.TrimSpace(*attrs.Address)
	}
	if attrs.BirthDate != nil {
		raw := strings.TrimSpace(*attrs.BirthDate)
		if raw == "" {
			c.BirthDate = nil
		} else if d, err := time.Parse("2006-01-02", raw); err == nil {
			c.BirthDate = &d
		} else {
			errs.Add("birth_date", "is not a valid date")
		}
	}

	return errs
}

func Validate(c *models.Client) httperr.Errors {
	errs := httperr.Errors{}
	if c.Name == "" {
		errs.Add("name", "can't be blank")
	}
	if len(c.Name) > 100 {
		errs.Add("name", "is too long (maximum is 100 characters)")
	}
	return errs
}

// ClampLimit bounds an autocomplete limit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultAutocompleteLimit
	}
	if limit > MaxAutocompleteLimit {
		return MaxAutocompleteLimit
	}
	return limit
}

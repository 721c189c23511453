package note

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

var (
	ErrNotFound           = httperr.ErrBusiness("note_not_found")
	ErrActionNotPermitted = httperr.ErrBusiness("action_not_permitted")
)

type Attributes struct {
	Body *string `json:"body" form:"note[body]"`
}

type Repository interface {
	OwnerExists(ctx context.Context, owner Owner) (bool, error)
	Create(ctx context.Context, n *models.Note) error
	// FindForOwner returns note id only when it belongs to owner.
	FindForOwner(ctx context.Context, owner Owner, id uint) (*models.Note, error)
	Update(ctx context.Context, n *models.Note) error
	Delete(ctx context.Context, n *models.Note) error
	ListForOwners(ctx context.Context, kind Kind, ids []uint) ([]models.Note, error)
}

func Apply(n *models.Note, attrs Attributes) {
	if attrs.Body != nil {
		n.Body = strings.TrimSpace(*attrs.Body)
	}
}

func Validate(n *models.Note) httperr.Errors {
	errs := httperr.Errors{}
	if strings.TrimSpace(n.Body) == "" {
		errs.Add("body", "can't be blank")
	}
	return errs
}

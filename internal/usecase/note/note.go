package note

import (
	"context"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

func metaFor(owner domain.Owner) map[string]any {
	return map[string]any{
		"memoable_type": string(owner.Kind()),
		"memoable_id":   owner.OwnerID(),
	}
}

func permit(owner domain.Owner, a domain.Action) error {
	if !owner.Permits(a) {
		return domain.ErrActionNotPermitted
	}
	return nil
}

// ======================================================
// CREATE
// ======================================================

type CreateNote struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateNote(repo domain.Repository, rec audit.Recorder) *CreateNote {
	return &CreateNote{repo: repo, audit: rec}
}

func (uc *CreateNote) Execute(
	ctx context.Context,
	owner domain.Owner,
	attrs domain.Attributes,
) (*models.Note, error) {

	if err := permit(owner, domain.ActionCreate); err != nil {
		return nil, err
	}

	ok, err := uc.repo.OwnerExists(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, owner.NotFound()
	}

	n := &models.Note{UserID: auth.ActorID(ctx)}
	domain.Attach(n, owner)
	domain.Apply(n, attrs)

	if err := httperr.Invalid(domain.Validate(n)); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	audit.Track(ctx, uc.audit, "note", "created", n.ID, metaFor(owner))
	return n, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateNote struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateNote(repo domain.Repository, rec audit.Recorder) *UpdateNote {
	return &UpdateNote{repo: repo, audit: rec}
}

func (uc *UpdateNote) Execute(
	ctx context.Context,
	owner domain.Owner,
	id uint,
	attrs domain.Attributes,
) (*models.Note, error) {

	if err := permit(owner, domain.ActionUpdate); err != nil {
		return nil, err
	}

	n, err := uc.repo.FindForOwner(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	domain.Apply(n, attrs)
	if err := httperr.Invalid(domain.Validate(n)); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}

	audit.Track(ctx, uc.audit, "note", "updated", n.ID, metaFor(owner))
	return n, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteNote struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteNote(repo domain.Repository, rec audit.Recorder) *DeleteNote {
	return &DeleteNote{repo: repo, audit: rec}
}

func (uc *DeleteNote) Execute(ctx context.Context, owner domain.Owner, id uint) error {
	if err := permit(owner, domain.ActionDestroy); err != nil {
		return err
	}

	n, err := uc.repo.FindForOwner(ctx, owner, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, n); err != nil {
		return err
	}

	audit.Track(ctx, uc.audit, "note", "deleted", n.ID, metaFor(owner))
	return nil
}

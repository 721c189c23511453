package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/dto"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httpresp"
	ucNote "github.com/BruksfildServices01/pantry-scheduler/internal/usecase/note"
)

// NoteHandler serves notes nested under one owner kind. The owner id is
// the ":id" parameter and the note id is ":note_id".
type NoteHandler struct {
	kind domain.Kind

	create *ucNote.CreateNote
	update *ucNote.UpdateNote
	delete *ucNote.DeleteNote
}

func NewNoteHandler(kind domain.Kind, repo domain.Repository, rec audit.Recorder) *NoteHandler {
	return &NoteHandler{
		kind:   kind,
		create: ucNote.NewCreateNote(repo, rec),
		update: ucNote.NewUpdateNote(repo, rec),
		delete: ucNote.NewDeleteNote(repo, rec),
	}
}

func (h *NoteHandler) Kind() domain.Kind { return h.kind }

type noteRequest struct {
	Note *domain.Attributes `json:"note"`
	domain.Attributes
}

func (h *NoteHandler) owner(c *gin.Context) (domain.Owner, bool) {
	id, ok := paramID(c, "id")
	owner, err := h.kind.Owner(id)
	if err != nil {
		httperr.Respond(c, err)
		return nil, false
	}
	if !ok {
		httperr.Respond(c, owner.NotFound())
		return nil, false
	}
	return owner, true
}

func (h *NoteHandler) bind(c *gin.Context) (domain.Attributes, bool) {
	var req noteRequest
	if !bindBody(c, &req, &req.Attributes) {
		return domain.Attributes{}, false
	}
	if req.Note != nil {
		return *req.Note, true
	}
	return req.Attributes, true
}

func (h *NoteHandler) Create(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	attrs, ok := h.bind(c)
	if !ok {
		return
	}

	n, err := h.create.Execute(c.Request.Context(), owner, attrs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, gin.H{"note": dto.Note(n)})
}

func (h *NoteHandler) Update(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	noteID, ok := paramID(c, "note_id")
	if !ok {
		httperr.Respond(c, domain.ErrNotFound)
		return
	}
	attrs, ok := h.bind(c)
	if !ok {
		return
	}

	n, err := h.update.Execute(c.Request.Context(), owner, noteID, attrs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"note": dto.Note(n)})
}

func (h *NoteHandler) Destroy(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	noteID, ok := paramID(c, "note_id")
	if !ok {
		httperr.Respond(c, domain.ErrNotFound)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), owner, noteID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// Handlers maps each permitted action to its gin handler.
func (h *NoteHandler) Handlers() map[domain.Action]gin.HandlerFunc {
	all := map[domain.Action]gin.HandlerFunc{
		domain.ActionCreate:  h.Create,
		domain.ActionUpdate:  h.Update,
		domain.ActionDestroy: h.Destroy,
	}
	out := make(map[domain.Action]gin.HandlerFunc, len(all))
	for _, a := range h.kind.Actions() {
		out[a] = all[a]
	}
	return out
}

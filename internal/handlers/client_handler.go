package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	appointmentDomain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/dto"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httpresp"
	ucClient "github.com/BruksfildServices01/pantry-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	repo domain.Repository

	get    *ucClient.GetClient
	create *ucClient.CreateClient
	update *ucClient.UpdateClient
	delete *ucClient.DeleteClient
}

func NewClientHandler(
	repo domain.Repository,
	appointments appointmentDomain.Repository,
	notes note.Repository,
	rec audit.Recorder,
	log logrus.FieldLogger,
) *ClientHandler {
	return &ClientHandler{
		repo:   repo,
		get:    ucClient.NewGetClient(repo, appointments, notes),
		create: ucClient.NewCreateClient(repo, rec, log),
		update: ucClient.NewUpdateClient(repo, rec),
		delete: ucClient.NewDeleteClient(repo, rec, log),
	}
}

type clientRequest struct {
	Client *domain.Attributes `json:"client"`
	domain.Attributes
}

func (r clientRequest) attributes() domain.Attributes {
	if r.Client != nil {
		return *r.Client
	}
	return r.Attributes
}

func (h *ClientHandler) bind(c *gin.Context) (domain.Attributes, bool) {
	var req clientRequest
	if !bindBody(c, &req, &req.Attributes) {
		return domain.Attributes{}, false
	}
	return req.attributes(), true
}

func (h *ClientHandler) id(c *gin.Context) (uint, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.Respond(c, domain.ErrNotFound)
	}
	return id, ok
}

// ======================================================
// LIST / AUTOCOMPLETE
// ======================================================

func (h *ClientHandler) Index(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"clients": dto.Clients(clients)})
}

func (h *ClientHandler) AutocompleteName(c *gin.Context) {
	prefix := strings.TrimSpace(strings.TrimSuffix(c.Param("name"), ".json"))
	limit := domain.ClampLimit(queryInt(c, "limit", domain.DefaultAutocompleteLimit))

	clients, err := h.repo.AutocompleteName(c.Request.Context(), prefix, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"clients": dto.Clients(clients)})
}

// ======================================================
// SHOW
// ======================================================

func (h *ClientHandler) Show(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"client":       dto.Client(out.Client),
		"appointments": dto.Appointments(out.Appointments),
		"notes":        dto.Notes(out.Notes),
	})
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	attrs, ok := h.bind(c)
	if !ok {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), attrs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, gin.H{"client": dto.Client(client)})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	attrs, ok := h.bind(c)
	if !ok {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), id, attrs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"client": dto.Client(client)})
}

func (h *ClientHandler) Destroy(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

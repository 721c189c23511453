package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	"github.com/BruksfildServices01/pantry-scheduler/internal/dto"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/pantry-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list   *ucAppointment.ListAppointments
	today  *ucAppointment.ListAppointmentsToday
	get    *ucAppointment.GetAppointment
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	delete *ucAppointment.DeleteAppointment

	loc *time.Location
}

func NewAppointmentHandler(
	repo domain.Repository,
	notes note.Repository,
	rec audit.Recorder,
	loc *time.Location,
	now func() time.Time,
	log logrus.FieldLogger,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:   ucAppointment.NewListAppointments(repo, notes),
		today:  ucAppointment.NewListAppointmentsToday(repo, notes, loc, now),
		get:    ucAppointment.NewGetAppointment(repo, notes),
		create: ucAppointment.NewCreateAppointment(repo, rec, log),
		update: ucAppointment.NewUpdateAppointment(repo, rec, log),
		delete: ucAppointment.NewDeleteAppointment(repo, rec),
		loc:    loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type appointmentAttrs struct {
	ClientID        *uint    `json:"client_id" form:"appointment[client_id]"`
	Time            *string  `json:"time" form:"appointment[time]"`
	UsdaQualifier   *bool    `json:"usda_qualifier" form:"appointment[usda_qualifier]"`
	NumAdults       *int     `json:"num_adults" form:"appointment[num_adults]"`
	NumChildren     *int     `json:"num_children" form:"appointment[num_children]"`
	AppointmentType []string `json:"appointment_type" form:"appointment[appointment_type][]"`
}

// appointmentRequest accepts {"appointment": {...}} as well as bare
// attributes. Form posts use appointment[field] keys.
type appointmentRequest struct {
	Appointment *appointmentAttrs `json:"appointment"`
	appointmentAttrs
}

func (r appointmentRequest) attributes(loc *time.Location) (domain.Attributes, error) {
	in := r.appointmentAttrs
	if r.Appointment != nil {
		in = *r.Appointment
	}

	out := domain.Attributes{
		ClientID:        in.ClientID,
		UsdaQualifier:   in.UsdaQualifier,
		NumAdults:       in.NumAdults,
		NumChildren:     in.NumChildren,
		AppointmentType: in.AppointmentType,
	}

	if in.Time != nil && *in.Time != "" {
		t, ok := parseTimeIn(*in.Time, loc)
		if !ok {
			return out, httperr.Field("time", "is invalid")
		}
		out.Time = &t
	}
	return out, nil
}

func (h *AppointmentHandler) bind(c *gin.Context) (domain.Attributes, bool) {
	var req appointmentRequest
	if !bindBody(c, &req, &req.appointmentAttrs) {
		return domain.Attributes{}, false
	}
	// gin stores a blank number as 0; a blank client is a missing one.
	if blankFormValue(c, "appointment[client_id]") {
		req.appointmentAttrs.ClientID = nil
	}
	attrs, err := req.attributes(h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return domain.Attributes{}, false
	}
	return attrs, true
}

func (h *AppointmentHandler) id(c *gin.Context) (uint, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.Respond(c, domain.ErrNotFound)
	}
	return id, ok
}

func listingJSON(l *ucAppointment.Listing) gin.H {
	return gin.H{
		"appointments": dto.Appointments(l.Appointments),
		"clients":      dto.Clients(l.Clients),
		"notes":        dto.Notes(l.Notes),
	}
}

func memberJSON(ap *models.Appointment) gin.H {
	return gin.H{
		"appointment": dto.Appointment(ap),
		"client":      dto.Client(&ap.Client),
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) Index(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, listingJSON(out))
}

func (h *AppointmentHandler) Today(c *gin.Context) {
	out, err := h.today.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, listingJSON(out))
}

// ======================================================
// SHOW
// ======================================================

func (h *AppointmentHandler) Show(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := memberJSON(out.Appointment)
	body["notes"] = dto.Notes(out.Notes)
	httpresp.OK(c, body)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	attrs, ok := h.bind(c)
	if !ok {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), attrs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, memberJSON(ap))
}

// ======================================================
// UPDATE
// ======================================================

// Update answers 200 even when client_id was dropped; the dropped field is
// listed under "errors".
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	attrs, ok := h.bind(c)
	if !ok {
		return
	}

	ap, rejected, err := h.update.Execute(c.Request.Context(), id, attrs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := memberJSON(ap)
	if rejected.Any() {
		body["errors"] = rejected
	}
	c.JSON(http.StatusOK, body)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Destroy(c *gin.Context) {
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

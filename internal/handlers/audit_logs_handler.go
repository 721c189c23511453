package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
	loc   *time.Location
}

func NewAuditLogsHandler(store audit.Store, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page <= 0 {
		page = 1
	}

	limit := queryInt(c, "limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Date filters: whole days in the server timezone
	// --------------------------------------------------

	if s := c.Query("from"); s != "" {
		from, err := time.ParseInLocation("2006-01-02", s, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD")
			return
		}
		f.From = &from
	}

	if s := c.Query("to"); s != "" {
		to, err := time.ParseInLocation("2006-01-02", s, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD")
			return
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paged(c, page, limit, total, logs)
}

package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
)

// paramID reads a numeric path parameter. Member routes also answer to
// "5.json"; the suffix is dropped.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSuffix(c.Param(name), ".json")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimeIn accepts RFC 3339 and the common date/datetime forms a form
// or spreadsheet export produces. Values without an offset are read in loc.
func parseTimeIn(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	// An unescaped "+00:00" offset arrives form-decoded as " 00:00".
	if i := strings.LastIndex(raw, " "); i > 0 && strings.Contains(raw, "T") {
		return parseTimeIn(raw[:i]+"+"+raw[i+1:], loc)
	}
	return time.Time{}, false
}

func isFormPost(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// bindBody decodes a JSON body into req. Form posts are bound into form
// instead, through its "resource[field]" form tags. On failure the 400 is
// already written.
func bindBody(c *gin.Context, req, form any) bool {
	var err error
	if isFormPost(c) {
		err = c.ShouldBindWith(form, binding.Form)
	} else {
		err = c.ShouldBindJSON(req)
	}
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "request body must be a JSON object or form fields")
		return false
	}
	return true
}

func blankFormValue(c *gin.Context, key string) bool {
	if !isFormPost(c) {
		return false
	}
	v, ok := c.GetPostForm(key)
	return ok && strings.TrimSpace(v) == ""
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code   string `json:"error_code,omitempty"`
	Errors Errors `json:"errors"`
}

func Write(c *gin.Context, status int, code, message string) {
	WriteFields(c, status, code, Errors{"base": {message}})
}

func WriteFields(c *gin.Context, status int, code string, fields Errors) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:   code,
		Errors: fields,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond translates a use case error into the JSON error envelope.
// Unknown errors are attached to the gin context for the request logger
// and answered with a generic 500.
func Respond(c *gin.Context, err error) {
	if fields, ok := AsValidation(err); ok {
		WriteFields(c, http.StatusBadRequest, "invalid_record", fields)
		return
	}

	if code, ok := BusinessCode(err); ok {
		Write(c, StatusFor(code), code, humanize(code))
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "internal server error")
}

// StatusFor maps a business code to its HTTP status.
func StatusFor(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "invalid_credentials", code == "unauthorized":
		return http.StatusUnauthorized
	case code == "forbidden":
		return http.StatusForbidden
	case code == "action_not_permitted":
		return http.StatusMethodNotAllowed
	default:
		return http.StatusBadRequest
	}
}

func humanize(code string) string {
	return strings.ReplaceAll(code, "_", " ")
}

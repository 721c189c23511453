package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Page[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Logs  []T   `json:"logs"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paged wraps a page of rows; a nil slice is rendered as [].
func Paged[T any](c *gin.Context, page, limit int, total int64, rows []T) {
	if rows == nil {
		rows = []T{}
	}
	c.JSON(http.StatusOK, Page[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  rows,
	})
}

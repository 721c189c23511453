package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
)

// SPAHandler serves the built single-page app. Paths that are not files
// get index.html so client-side routing can take over.
type SPAHandler struct {
	dir string
}

func NewSPAHandler(dir string) *SPAHandler {
	return &SPAHandler{dir: dir}
}

func (h *SPAHandler) Serve(c *gin.Context) {
	reqPath := c.Request.URL.Path

	if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
		httperr.NotFound(c, "route_not_found", "no route matches "+c.Request.Method+" "+reqPath)
		return
	}

	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		httperr.NotFound(c, "route_not_found", "no route matches "+c.Request.Method+" "+reqPath)
		return
	}

	// path.Clean on a rooted path cannot climb above the root.
	rel := strings.TrimPrefix(path.Clean("/"+reqPath), "/")
	if rel != "" {
		file := filepath.Join(h.dir, filepath.FromSlash(rel))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
	}

	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	c.File(index)
}

package embed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/gin-gonic/gin"
)

const contentTypeJS = "application/javascript"

// ScriptRenderer is the slice of the render service the embed endpoints
// need: a widget id in, an always-valid-JavaScript body out.
type ScriptRenderer interface {
	DeliverScript(ctx context.Context, widgetID string) (string, error)
}

// Handler serves the public embed endpoints: the injectable widget script
// and the loader snippet site owners paste into their pages.
type Handler struct {
	renderService ScriptRenderer
	cacheMaxAge   int
}

// NewHandler creates a new embed handler
func NewHandler(renderService ScriptRenderer, cacheMaxAge int) *Handler {
	return &Handler{renderService: renderService, cacheMaxAge: cacheMaxAge}
}

// RegisterRoutes registers public embed routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/widget/:id", h.Script)
	r.GET("/embed.js", h.Loader)
}

// Script serves the self-invoking widget script. Every response body is
// valid JavaScript, including denials: embedding pages load this via a
// <script> tag and must never receive an HTML error page there.
func (h *Handler) Script(c *gin.Context) {
	id := strings.TrimSuffix(c.Param("id"), ".js")

	script, err := h.renderService.DeliverScript(c.Request.Context(), id)
	status := http.StatusOK
	switch {
	case err == nil:
		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cacheMaxAge))
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrWidgetInactive), errors.Is(err, domain.ErrInsufficientCredits):
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}
	if status != http.StatusOK {
		c.Header("Cache-Control", "no-store")
	}

	c.Data(status, contentTypeJS, []byte(script))
}

// Loader serves the one-line embed snippet: a script that appends the real
// widget script tag for the wid passed in the query string.
func (h *Handler) Loader(c *gin.Context) {
	wid := c.Query("wid")
	if wid == "" {
		c.Data(http.StatusBadRequest, contentTypeJS,
			[]byte("(function(){console.error('[bubbletap] embed.js requires a wid query parameter');})();\n"))
		return
	}

	src, _ := json.Marshal("/widget/" + wid + ".js")
	loader := fmt.Sprintf(`(function () {
  var s = document.createElement('script');
  s.src = %s;
  s.async = true;
  document.head.appendChild(s);
})();
`, src)

	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cacheMaxAge))
	c.Data(http.StatusOK, contentTypeJS, []byte(loader))
}

package admin

import (
	"errors"
	"net/http"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/bubbletap/bubbletap/internal/service"
	"github.com/bubbletap/bubbletap/internal/widget"
	"github.com/gin-gonic/gin"
)

// Handler handles admin API requests
type Handler struct {
	widgetService *service.WidgetService
	renderService *service.RenderService
}

// NewHandler creates a new admin handler
func NewHandler(widgetService *service.WidgetService, renderService *service.RenderService) *Handler {
	return &Handler{
		widgetService: widgetService,
		renderService: renderService,
	}
}

// RegisterRoutes registers admin routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	widgets := r.Group("/widgets")
	{
		widgets.POST("", h.CreateWidget)
		widgets.GET("", h.ListWidgets)
		widgets.GET("/:id", h.GetWidget)
		widgets.PUT("/:id", h.UpdateWidget)
		widgets.DELETE("/:id", h.DeleteWidget)

		widgets.POST("/:id/channels/group", h.GroupChannels)
		widgets.POST("/:id/channels/:channelId/ungroup", h.UngroupChannel)
		widgets.DELETE("/:id/channels/:channelId/group-items/:itemId", h.RemoveGroupItem)

		widgets.POST("/:id/credits", h.AddCredits)
	}

	r.POST("/preview", h.Preview)
	r.GET("/templates", h.ListTemplates)
	r.GET("/stats", h.GetStats)
}

// Widget handlers

func (h *Handler) CreateWidget(c *gin.Context) {
	var req domain.CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.widgetService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

func (h *Handler) ListWidgets(c *gin.Context) {
	widgets, err := h.widgetService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

func (h *Handler) GetWidget(c *gin.Context) {
	id := c.Param("id")
	w, err := h.widgetService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if w == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "widget not found"})
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) UpdateWidget(c *gin.Context) {
	id := c.Param("id")
	var req domain.UpdateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.widgetService.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) DeleteWidget(c *gin.Context) {
	id := c.Param("id")
	if err := h.widgetService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "widget deleted"})
}

// Channel grouping handlers

func (h *Handler) GroupChannels(c *gin.Context) {
	id := c.Param("id")
	var req domain.GroupChannelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.widgetService.GroupChannels(c.Request.Context(), id, req.Type)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) UngroupChannel(c *gin.Context) {
	w, err := h.widgetService.UngroupChannel(c.Request.Context(), c.Param("id"), c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) RemoveGroupItem(c *gin.Context) {
	w, err := h.widgetService.RemoveGroupItem(c.Request.Context(),
		c.Param("id"), c.Param("channelId"), c.Param("itemId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

// Credits handler

func (h *Handler) AddCredits(c *gin.Context) {
	id := c.Param("id")
	var req domain.AddCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.widgetService.AddCredits(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

// Preview handler

// Preview renders a configuration the builder has not saved yet. The
// response fragments are injected straight into the builder document under
// the returned marker attribute.
func (h *Handler) Preview(c *gin.Context) {
	var cfg domain.WidgetConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.renderService.Preview(c.Request.Context(), cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Template handler

func (h *Handler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": widget.Templates()})
}

// Stats handler

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.widgetService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "widget not found"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

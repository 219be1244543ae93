package service

import (
	"context"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/bubbletap/bubbletap/internal/repository"
	"github.com/bubbletap/bubbletap/internal/widget"
	"go.uber.org/zap"
)

// RenderService turns persisted widget configuration into deliverable
// scripts and preview fragments.
type RenderService struct {
	widgetRepo *repository.WidgetRepository
	gate       DeliveryGate
	logger     *zap.Logger
}

// NewRenderService creates a new render service
func NewRenderService(
	widgetRepo *repository.WidgetRepository,
	gate DeliveryGate,
	logger *zap.Logger,
) *RenderService {
	return &RenderService{
		widgetRepo: widgetRepo,
		gate:       gate,
		logger:     logger,
	}
}

// DeliverScript loads a widget, consults the delivery gate and renders the
// injectable script. The returned error classifies denials (not found,
// inactive, out of credits); the script string is always a valid body for
// the matching HTTP status, so embedding pages never receive a raw error
// page where they expected JavaScript.
func (s *RenderService) DeliverScript(ctx context.Context, widgetID string) (string, error) {
	w, err := s.widgetRepo.Get(widgetID)
	if err != nil {
		return widget.ErrorScript("widget lookup failed"), err
	}
	if w == nil {
		return widget.DeniedScript("widget not found"), domain.ErrNotFound
	}
	if !w.Active {
		return widget.DeniedScript("widget is inactive"), domain.ErrWidgetInactive
	}

	result, err := s.gate.CheckAndRecordView(ctx, w)
	if err != nil {
		return widget.ErrorScript("delivery check failed"), err
	}
	if !result.Allowed {
		return widget.DeniedScript("out of credits"), domain.ErrInsufficientCredits
	}

	if !widget.Known(w.Config.TemplateID) && w.Config.TemplateID != "" {
		s.logger.Warn("unknown template id, using default",
			zap.String("widget_id", w.ID),
			zap.String("template_id", w.Config.TemplateID),
		)
	}

	script, err := widget.BuildScript(w.Config)
	if err != nil {
		s.logger.Error("script assembly failed",
			zap.String("widget_id", w.ID),
			zap.Error(err),
		)
		return script, err
	}
	return script, nil
}

// Preview renders the substituted fragments for the builder UI's live
// preview. No gate check and no debit: previews are free.
func (s *RenderService) Preview(ctx context.Context, cfg domain.WidgetConfig) (widget.Preview, error) {
	p, err := widget.BuildPreview(cfg)
	if err != nil {
		s.logger.Error("preview render failed", zap.Error(err))
		return widget.Preview{}, err
	}
	return p, nil
}

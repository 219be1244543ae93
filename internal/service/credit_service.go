package service

import (
	"context"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/bubbletap/bubbletap/internal/repository"
	"go.uber.org/zap"
)

// DeliveryGate authorizes and meters script deliveries. RenderService only
// sees this interface, so rendering stays testable without a live ledger.
type DeliveryGate interface {
	CheckAndRecordView(ctx context.Context, w *domain.Widget) (domain.GateResult, error)
}

// View costs in credits.
const (
	ViewCost      = 1
	VideoViewCost = 2
)

// CreditService is the delivery gate backed by the widgets table and the
// view ledger.
type CreditService struct {
	widgetRepo *repository.WidgetRepository
	viewRepo   *repository.ViewRepository
	logger     *zap.Logger
}

// NewCreditService creates a new credit service
func NewCreditService(
	widgetRepo *repository.WidgetRepository,
	viewRepo *repository.ViewRepository,
	logger *zap.Logger,
) *CreditService {
	return &CreditService{
		widgetRepo: widgetRepo,
		viewRepo:   viewRepo,
		logger:     logger,
	}
}

// CheckAndRecordView debits one view's cost from the widget's balance and
// records the view. Fail-closed: any failure denies delivery. The debit is
// a single conditional UPDATE, so exactly one view is spent per allowed
// delivery regardless of request parallelism.
func (s *CreditService) CheckAndRecordView(ctx context.Context, w *domain.Widget) (domain.GateResult, error) {
	cost := ViewCost
	if w.Config.VideoEnabled {
		cost = VideoViewCost
	}

	remaining, err := s.widgetRepo.DebitCredits(w.ID, cost)
	if err == domain.ErrInsufficientCredits {
		s.logger.Info("delivery denied, insufficient credits",
			zap.String("widget_id", w.ID),
			zap.Int("balance", remaining),
			zap.Int("cost", cost),
		)
		return domain.GateResult{Allowed: false, CreditsRemaining: remaining}, nil
	}
	if err != nil {
		return domain.GateResult{}, err
	}

	view := &domain.ViewEvent{WidgetID: w.ID, CreditsSpent: cost}
	if err := s.viewRepo.Create(view); err != nil {
		// The debit already happened; losing the ledger row is logged, not
		// surfaced, so the embedding page still gets its script.
		s.logger.Error("failed to record view", zap.String("widget_id", w.ID), zap.Error(err))
	}

	return domain.GateResult{Allowed: true, CreditsRemaining: remaining}, nil
}

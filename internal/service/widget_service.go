package service

import (
	"context"
	"fmt"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/bubbletap/bubbletap/internal/repository"
)

// WidgetService handles admin operations on widgets
type WidgetService struct {
	widgetRepo *repository.WidgetRepository
	viewRepo   *repository.ViewRepository
}

// NewWidgetService creates a new widget service
func NewWidgetService(
	widgetRepo *repository.WidgetRepository,
	viewRepo *repository.ViewRepository,
) *WidgetService {
	return &WidgetService{
		widgetRepo: widgetRepo,
		viewRepo:   viewRepo,
	}
}

// Create creates a widget from the request, defaulting and normalizing its
// configuration.
func (s *WidgetService) Create(ctx context.Context, req *domain.CreateWidgetRequest) (*domain.Widget, error) {
	w := &domain.Widget{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		Active:  true,
		Credits: req.Credits,
	}

	if req.Config != nil {
		if err := req.Config.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		w.Config = req.Config.Normalized()
	} else {
		w.Config = domain.DefaultWidgetConfig()
	}

	if err := s.widgetRepo.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Get retrieves a widget
func (s *WidgetService) Get(ctx context.Context, id string) (*domain.Widget, error) {
	return s.widgetRepo.Get(id)
}

// List retrieves all widgets
func (s *WidgetService) List(ctx context.Context) ([]*domain.Widget, error) {
	return s.widgetRepo.List()
}

// Update updates a widget
func (s *WidgetService) Update(ctx context.Context, id string, req *domain.UpdateWidgetRequest) (*domain.Widget, error) {
	w, err := s.widgetRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != "" {
		w.Name = req.Name
	}
	if req.Active != nil {
		w.Active = *req.Active
	}
	if req.Config != nil {
		if err := req.Config.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		w.Config = req.Config.Normalized()
	}

	if err := s.widgetRepo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Delete deletes a widget
func (s *WidgetService) Delete(ctx context.Context, id string) error {
	return s.widgetRepo.Delete(id)
}

// GroupChannels folds all top-level channels of the given type into a flat
// group and persists the new order.
func (s *WidgetService) GroupChannels(ctx context.Context, id string, typ domain.ChannelType) (*domain.Widget, error) {
	return s.mutateChannels(id, func(channels []domain.Channel) []domain.Channel {
		return domain.GroupChannels(channels, typ)
	})
}

// UngroupChannel disbands a flat group back into individual channels.
func (s *WidgetService) UngroupChannel(ctx context.Context, id, groupID string) (*domain.Widget, error) {
	return s.mutateChannels(id, func(channels []domain.Channel) []domain.Channel {
		return domain.UngroupChannel(channels, groupID)
	})
}

// RemoveGroupItem extracts one member from a flat group, dissolving the
// group when fewer than two members remain.
func (s *WidgetService) RemoveGroupItem(ctx context.Context, id, groupID, itemID string) (*domain.Widget, error) {
	return s.mutateChannels(id, func(channels []domain.Channel) []domain.Channel {
		return domain.RemoveFromGroup(channels, groupID, itemID)
	})
}

func (s *WidgetService) mutateChannels(id string, mutate func([]domain.Channel) []domain.Channel) (*domain.Widget, error) {
	w, err := s.widgetRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}

	w.Config.Channels = mutate(w.Config.Channels)
	if err := s.widgetRepo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

// AddCredits tops up the widget's balance
func (s *WidgetService) AddCredits(ctx context.Context, id string, req *domain.AddCreditsRequest) (*domain.Widget, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if _, err := s.widgetRepo.AddCredits(id, req.Amount); err != nil {
		return nil, err
	}
	return s.widgetRepo.Get(id)
}

// Stats returns system totals
func (s *WidgetService) Stats(ctx context.Context) (*domain.Stats, error) {
	total, active, err := s.widgetRepo.CountActive()
	if err != nil {
		return nil, err
	}
	views, spent, err := s.viewRepo.Totals()
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		TotalWidgets:  total,
		ActiveWidgets: active,
		TotalViews:    views,
		CreditsSpent:  spent,
	}, nil
}

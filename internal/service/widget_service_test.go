package service

import (
	"context"
	"testing"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetServiceCreateDefaults(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	w, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{Name: "My site"})
	require.NoError(t, err)

	assert.NotEmpty(t, w.ID)
	assert.True(t, w.Active)
	assert.Equal(t, "default", w.Config.TemplateID)
	assert.Equal(t, domain.DefaultButtonSize, w.Config.ButtonSize)
}

func TestWidgetServiceCreateNormalizesConfig(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	w, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{
		Name: "My site",
		Config: &domain.WidgetConfig{
			ButtonSize: 40,
			Channels: []domain.Channel{
				{Type: domain.ChannelTelegram, Value: "@team"},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MinButtonSize, w.Config.ButtonSize)
	require.Len(t, w.Config.Channels, 1)
	assert.NotEmpty(t, w.Config.Channels[0].ID)
	assert.Equal(t, "Telegram", w.Config.Channels[0].Label)
}

func TestWidgetServiceCreateRejectsInvalidConfig(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	_, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{
		Name: "Bad",
		Config: &domain.WidgetConfig{
			Channels: []domain.Channel{{Type: "smoke-signals", Value: "x"}},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestWidgetServiceUpdate(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	w, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{Name: "Before"})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(context.Background(), w.ID, &domain.UpdateWidgetRequest{
		Name:   "After",
		Active: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.False(t, updated.Active)

	_, err = svc.Update(context.Background(), "missing", &domain.UpdateWidgetRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWidgetServiceGroupingRoundTrip(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	w, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{
		Name: "Grouping",
		Config: &domain.WidgetConfig{
			Channels: []domain.Channel{
				{ID: "w1", Type: domain.ChannelWhatsApp, Value: "+1", Label: "A"},
				{ID: "w2", Type: domain.ChannelWhatsApp, Value: "+2", Label: "B"},
				{ID: "e1", Type: domain.ChannelEmail, Value: "a@example.com", Label: "Mail"},
			},
		},
	})
	require.NoError(t, err)

	grouped, err := svc.GroupChannels(context.Background(), w.ID, domain.ChannelWhatsApp)
	require.NoError(t, err)
	require.Len(t, grouped.Config.Channels, 2)
	require.True(t, grouped.Config.Channels[0].IsGroup)
	groupID := grouped.Config.Channels[0].ID

	// persisted, not just in-memory
	reloaded, err := svc.Get(context.Background(), w.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Config.Channels[0].IsGroup)

	ungrouped, err := svc.UngroupChannel(context.Background(), w.ID, groupID)
	require.NoError(t, err)
	require.Len(t, ungrouped.Config.Channels, 3)
	for _, c := range ungrouped.Config.Channels {
		assert.False(t, c.IsGroup)
	}
}

func TestWidgetServiceRemoveGroupItemDissolves(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	w, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{
		Name: "Dissolve",
		Config: &domain.WidgetConfig{
			Channels: []domain.Channel{
				{ID: "w1", Type: domain.ChannelWhatsApp, Value: "+1", Label: "A"},
				{ID: "w2", Type: domain.ChannelWhatsApp, Value: "+2", Label: "B"},
			},
		},
	})
	require.NoError(t, err)

	grouped, err := svc.GroupChannels(context.Background(), w.ID, domain.ChannelWhatsApp)
	require.NoError(t, err)
	groupID := grouped.Config.Channels[0].ID

	after, err := svc.RemoveGroupItem(context.Background(), w.ID, groupID, "w1")
	require.NoError(t, err)
	require.Len(t, after.Config.Channels, 2)
	for _, c := range after.Config.Channels {
		assert.False(t, c.IsGroup)
		assert.Equal(t, domain.DisplayIndividual, c.DisplayMode)
	}
}

func TestWidgetServiceAddCredits(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	w, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{Name: "Billing"})
	require.NoError(t, err)

	topped, err := svc.AddCredits(context.Background(), w.ID, &domain.AddCreditsRequest{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, 250, topped.Credits)

	_, err = svc.AddCredits(context.Background(), w.ID, &domain.AddCreditsRequest{Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = svc.AddCredits(context.Background(), "missing", &domain.AddCreditsRequest{Amount: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWidgetServiceStats(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	svc := NewWidgetService(widgetRepo, viewRepo)

	w1, err := svc.Create(context.Background(), &domain.CreateWidgetRequest{Name: "One", Credits: 5})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &domain.CreateWidgetRequest{Name: "Two"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(context.Background(), w1.ID, &domain.UpdateWidgetRequest{Active: &inactive})
	require.NoError(t, err)

	require.NoError(t, viewRepo.Create(&domain.ViewEvent{WidgetID: w1.ID, CreditsSpent: 2}))
	require.NoError(t, viewRepo.Create(&domain.ViewEvent{WidgetID: w1.ID, CreditsSpent: 1}))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalWidgets)
	assert.Equal(t, 1, stats.ActiveWidgets)
	assert.Equal(t, 2, stats.TotalViews)
	assert.Equal(t, 3, stats.CreditsSpent)
}

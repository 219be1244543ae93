package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/bubbletap/bubbletap/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepos(t *testing.T) (*repository.WidgetRepository, *repository.ViewRepository) {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewWidgetRepository(db), repository.NewViewRepository(db)
}

func newTestWidget(t *testing.T, repo *repository.WidgetRepository, credits int, active bool) *domain.Widget {
	t.Helper()
	w := &domain.Widget{
		Name:    "test widget",
		Active:  active,
		Credits: credits,
		Config: domain.WidgetConfig{
			TemplateID:  "default",
			Position:    "right",
			ButtonColor: "#25d366",
			ButtonSize:  60,
			Channels: []domain.Channel{
				{ID: "1", Type: domain.ChannelWhatsApp, Value: "+1 (555) 123-4567", Label: "WhatsApp"},
			},
		},
	}
	require.NoError(t, repo.Create(w))
	return w
}

func TestDeliverScript(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	w := newTestWidget(t, widgetRepo, 10, true)

	gate := NewCreditService(widgetRepo, viewRepo, zap.NewNop())
	svc := NewRenderService(widgetRepo, gate, zap.NewNop())

	script, err := svc.DeliverScript(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Contains(t, script, "https://wa.me/15551234567")
	assert.Contains(t, script, "background:#25d366")

	// exactly one credit spent and one view recorded
	got, err := widgetRepo.Get(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Credits)

	views, err := viewRepo.CountByWidget(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, views)
}

func TestDeliverScriptVideoCostsTwo(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	w := newTestWidget(t, widgetRepo, 10, true)
	w.Config.VideoEnabled = true
	w.Config.VideoURL = "https://cdn.example.com/intro.mp4"
	require.NoError(t, widgetRepo.Update(w))

	gate := NewCreditService(widgetRepo, viewRepo, zap.NewNop())
	svc := NewRenderService(widgetRepo, gate, zap.NewNop())

	_, err := svc.DeliverScript(context.Background(), w.ID)
	require.NoError(t, err)

	got, err := widgetRepo.Get(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Credits)
}

func TestDeliverScriptOutOfCredits(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	w := newTestWidget(t, widgetRepo, 0, true)

	gate := NewCreditService(widgetRepo, viewRepo, zap.NewNop())
	svc := NewRenderService(widgetRepo, gate, zap.NewNop())

	script, err := svc.DeliverScript(context.Background(), w.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)

	// fail-closed: console error only, nothing renders
	assert.Contains(t, script, "console.error")
	assert.NotContains(t, script, "bt-launcher")
	assert.NotContains(t, script, "appendChild")

	// balance untouched, no view recorded
	got, err := widgetRepo.Get(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Credits)

	views, err := viewRepo.CountByWidget(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, views)
}

func TestDeliverScriptInactiveWidget(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	w := newTestWidget(t, widgetRepo, 10, false)

	gate := NewCreditService(widgetRepo, viewRepo, zap.NewNop())
	svc := NewRenderService(widgetRepo, gate, zap.NewNop())

	script, err := svc.DeliverScript(context.Background(), w.ID)
	assert.ErrorIs(t, err, domain.ErrWidgetInactive)
	assert.Contains(t, script, "console.error")

	// inactive widgets are never debited
	got, err := widgetRepo.Get(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Credits)
}

func TestDeliverScriptNotFound(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)

	gate := NewCreditService(widgetRepo, viewRepo, zap.NewNop())
	svc := NewRenderService(widgetRepo, gate, zap.NewNop())

	script, err := svc.DeliverScript(context.Background(), "no-such-widget")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, script, "console.error")
}

// denyAllGate exercises the gate interface without the credit ledger.
type denyAllGate struct{}

func (denyAllGate) CheckAndRecordView(ctx context.Context, w *domain.Widget) (domain.GateResult, error) {
	return domain.GateResult{Allowed: false, CreditsRemaining: 0}, nil
}

func TestDeliverScriptRespectsGateDecision(t *testing.T) {
	widgetRepo, _ := newTestRepos(t)
	w := newTestWidget(t, widgetRepo, 100, true)

	svc := NewRenderService(widgetRepo, denyAllGate{}, zap.NewNop())

	script, err := svc.DeliverScript(context.Background(), w.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
	assert.Contains(t, script, "console.error")
	assert.NotContains(t, script, "bt-launcher")
}

func TestPreviewDoesNotTouchCredits(t *testing.T) {
	widgetRepo, viewRepo := newTestRepos(t)
	w := newTestWidget(t, widgetRepo, 5, true)

	gate := NewCreditService(widgetRepo, viewRepo, zap.NewNop())
	svc := NewRenderService(widgetRepo, gate, zap.NewNop())

	p, err := svc.Preview(context.Background(), w.Config)
	require.NoError(t, err)
	assert.Contains(t, p.HTML, "bt-launcher")

	got, err := widgetRepo.Get(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Credits)

	views, err := viewRepo.CountByWidget(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, views)
}

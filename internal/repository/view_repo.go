package repository

import (
	"time"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/google/uuid"
)

// ViewRepository handles the view ledger: one row per metered delivery
type ViewRepository struct {
	db *DB
}

// NewViewRepository creates a new view repository
func NewViewRepository(db *DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Create records a delivered view
func (r *ViewRepository) Create(view *domain.ViewEvent) error {
	if view.ID == "" {
		view.ID = uuid.New().String()
	}
	view.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO views (id, widget_id, credits_spent, created_at)
		VALUES (?, ?, ?, ?)
	`, view.ID, view.WidgetID, view.CreditsSpent, view.CreatedAt)

	return err
}

// CountByWidget returns the number of recorded views for a widget
func (r *ViewRepository) CountByWidget(widgetID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM views WHERE widget_id = ?
	`, widgetID).Scan(&count)
	return count, err
}

// Totals returns the overall view count and credits spent
func (r *ViewRepository) Totals() (views, creditsSpent int, err error) {
	err = r.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(credits_spent), 0) FROM views
	`).Scan(&views, &creditsSpent)
	return views, creditsSpent, err
}

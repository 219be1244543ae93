package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/google/uuid"
)

// WidgetRepository handles widget persistence
type WidgetRepository struct {
	db *DB
}

// NewWidgetRepository creates a new widget repository
func NewWidgetRepository(db *DB) *WidgetRepository {
	return &WidgetRepository{db: db}
}

// Create creates a new widget
func (r *WidgetRepository) Create(w *domain.Widget) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now

	configJSON, err := json.Marshal(w.Config)
	if err != nil {
		return fmt.Errorf("failed to encode widget config: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO widgets (id, owner_id, name, active, credits, config, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, w.ID, w.OwnerID, w.Name, w.Active, w.Credits, string(configJSON),
		w.CreatedAt, w.UpdatedAt)

	return err
}

// Get retrieves a widget by ID
func (r *WidgetRepository) Get(id string) (*domain.Widget, error) {
	w := &domain.Widget{}
	var configJSON string

	err := r.db.QueryRow(`
		SELECT id, owner_id, name, active, credits, config, created_at, updated_at
		FROM widgets WHERE id = ?
	`, id).Scan(&w.ID, &w.OwnerID, &w.Name, &w.Active, &w.Credits,
		&configJSON, &w.CreatedAt, &w.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(configJSON), &w.Config)

	return w, nil
}

// List retrieves all widgets
func (r *WidgetRepository) List() ([]*domain.Widget, error) {
	rows, err := r.db.Query(`
		SELECT id, owner_id, name, active, credits, config, created_at, updated_at
		FROM widgets ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var widgets []*domain.Widget
	for rows.Next() {
		w := &domain.Widget{}
		var configJSON string

		if err := rows.Scan(&w.ID, &w.OwnerID, &w.Name, &w.Active, &w.Credits,
			&configJSON, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}

		json.Unmarshal([]byte(configJSON), &w.Config)
		widgets = append(widgets, w)
	}

	return widgets, rows.Err()
}

// Update updates a widget
func (r *WidgetRepository) Update(w *domain.Widget) error {
	w.UpdatedAt = time.Now()
	configJSON, err := json.Marshal(w.Config)
	if err != nil {
		return fmt.Errorf("failed to encode widget config: %w", err)
	}

	result, err := r.db.Exec(`
		UPDATE widgets SET name = ?, active = ?, config = ?, updated_at = ?
		WHERE id = ?
	`, w.Name, w.Active, string(configJSON), w.UpdatedAt, w.ID)

	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("widget not found: %s", w.ID)
	}

	return nil
}

// Delete deletes a widget
func (r *WidgetRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM widgets WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("widget not found: %s", id)
	}

	return nil
}

// AddCredits tops up a widget's credit balance and returns the new balance.
func (r *WidgetRepository) AddCredits(id string, amount int) (int, error) {
	result, err := r.db.Exec(`
		UPDATE widgets SET credits = credits + ?, updated_at = ?
		WHERE id = ?
	`, amount, time.Now(), id)
	if err != nil {
		return 0, err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return 0, domain.ErrNotFound
	}

	return r.balance(id)
}

// DebitCredits atomically spends cost credits from a widget's balance and
// returns the remaining balance. The conditional UPDATE is what keeps
// parallel script fetches from spending below zero; a balance that cannot
// cover the cost returns ErrInsufficientCredits with the balance untouched.
func (r *WidgetRepository) DebitCredits(id string, cost int) (int, error) {
	result, err := r.db.Exec(`
		UPDATE widgets SET credits = credits - ?, updated_at = ?
		WHERE id = ? AND credits >= ?
	`, cost, time.Now(), id, cost)
	if err != nil {
		return 0, err
	}

	affected, _ := result.RowsAffected()
	remaining, berr := r.balance(id)
	if berr != nil {
		return 0, berr
	}
	if affected == 0 {
		return remaining, domain.ErrInsufficientCredits
	}

	return remaining, nil
}

func (r *WidgetRepository) balance(id string) (int, error) {
	var credits int
	err := r.db.QueryRow(`SELECT credits FROM widgets WHERE id = ?`, id).Scan(&credits)
	if err == sql.ErrNoRows {
		return 0, domain.ErrNotFound
	}
	return credits, err
}

// CountActive returns total and active widget counts.
func (r *WidgetRepository) CountActive() (total, active int, err error) {
	err = r.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(active), 0) FROM widgets
	`).Scan(&total, &active)
	return total, active, err
}

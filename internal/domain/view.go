package domain

import "time"

// ViewEvent records one metered delivery of a widget script
type ViewEvent struct {
	ID           string    `json:"id"`
	WidgetID     string    `json:"widget_id"`
	CreditsSpent int       `json:"credits_spent"`
	CreatedAt    time.Time `json:"created_at"`
}

// GateResult is the delivery gate's answer for one script fetch
type GateResult struct {
	Allowed          bool `json:"allowed"`
	CreditsRemaining int  `json:"credits_remaining"`
}

// Stats represents system statistics
type Stats struct {
	TotalWidgets  int `json:"total_widgets"`
	ActiveWidgets int `json:"active_widgets"`
	TotalViews    int `json:"total_views"`
	CreditsSpent  int `json:"credits_spent"`
}

package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Widget represents a configured floating contact widget
type Widget struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"owner_id"`
	Name      string       `json:"name"`
	Active    bool         `json:"active"`
	Credits   int          `json:"credits"`
	Config    WidgetConfig `json:"config"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// WidgetConfig holds the full render input for a widget. Field names are
// the wire format consumed by the generated script.
type WidgetConfig struct {
	Channels        []Channel `json:"channels"`
	ButtonColor     string    `json:"buttonColor"`
	Position        string    `json:"position"`
	ButtonSize      int       `json:"buttonSize"`
	Tooltip         string    `json:"tooltip"`
	TooltipDisplay  string    `json:"tooltipDisplay"`
	TooltipPosition string    `json:"tooltipPosition"`
	VideoEnabled    bool      `json:"videoEnabled"`
	VideoURL        string    `json:"videoUrl"`
	VideoHeight     int       `json:"videoHeight"`
	VideoAlignment  string    `json:"videoAlignment"`
	UseVideoPreview bool      `json:"useVideoPreview"`
	CustomIconURL   string    `json:"customIconUrl"`
	GreetingMessage string    `json:"greetingMessage"`
	TemplateID      string    `json:"templateId"`
}

// Button size bounds in pixels.
const (
	MinButtonSize     = 50
	MaxButtonSize     = 80
	DefaultButtonSize = 60
)

// DefaultWidgetConfig returns the default widget configuration
func DefaultWidgetConfig() WidgetConfig {
	return WidgetConfig{
		Channels:       []Channel{},
		ButtonColor:    "#25d366",
		Position:       "right",
		ButtonSize:     DefaultButtonSize,
		Tooltip:        "Contact us",
		TooltipDisplay: "hover",
		VideoHeight:    200,
		VideoAlignment: "center",
		TemplateID:     "default",
	}
}

// Normalized returns a copy with every field coerced to its documented
// default so a partially populated record still renders deterministically.
func (c WidgetConfig) Normalized() WidgetConfig {
	def := DefaultWidgetConfig()

	if c.ButtonColor == "" {
		c.ButtonColor = def.ButtonColor
	}
	if c.Position != "left" && c.Position != "right" {
		c.Position = def.Position
	}
	if c.ButtonSize == 0 {
		c.ButtonSize = def.ButtonSize
	}
	if c.ButtonSize < MinButtonSize {
		c.ButtonSize = MinButtonSize
	}
	if c.ButtonSize > MaxButtonSize {
		c.ButtonSize = MaxButtonSize
	}
	switch c.TooltipDisplay {
	case "hover", "always", "never":
	default:
		c.TooltipDisplay = def.TooltipDisplay
	}
	if c.VideoHeight <= 0 {
		c.VideoHeight = def.VideoHeight
	}
	switch c.VideoAlignment {
	case "left", "center", "right", "top", "bottom":
	default:
		c.VideoAlignment = def.VideoAlignment
	}
	if c.TemplateID == "" {
		c.TemplateID = def.TemplateID
	}
	if c.Channels == nil {
		c.Channels = []Channel{}
	}
	c.Channels = NormalizeChannels(c.Channels)

	return c
}

// Validate checks admin-supplied configuration before persisting. Rendering
// never validates; it defaults instead.
func (c WidgetConfig) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Position, validation.In("", "left", "right")),
		validation.Field(&c.ButtonSize, validation.Min(0), validation.Max(MaxButtonSize)),
		validation.Field(&c.TooltipDisplay, validation.In("", "hover", "always", "never")),
		validation.Field(&c.VideoAlignment, validation.In("", "left", "center", "right", "top", "bottom")),
	); err != nil {
		return err
	}
	for _, ch := range c.Channels {
		if err := ch.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CreateWidgetRequest is the request to create a widget
type CreateWidgetRequest struct {
	Name    string        `json:"name" binding:"required"`
	OwnerID string        `json:"owner_id,omitempty"`
	Config  *WidgetConfig `json:"config,omitempty"`
	Credits int           `json:"credits,omitempty"`
}

// UpdateWidgetRequest is the request to update a widget
type UpdateWidgetRequest struct {
	Name   string        `json:"name,omitempty"`
	Active *bool         `json:"active,omitempty"`
	Config *WidgetConfig `json:"config,omitempty"`
}

// GroupChannelsRequest folds same-type channels into a flat group.
type GroupChannelsRequest struct {
	Type ChannelType `json:"type" binding:"required"`
}

// AddCreditsRequest tops up a widget's credit balance.
type AddCreditsRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// Validate rejects non-positive top-ups.
func (r AddCreditsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required, validation.Min(1)),
	)
}

package widget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bubbletap/bubbletap/internal/domain"
)

// escapeHTML entity-escapes every character that could break out of an
// HTML text or attribute context. Applied uniformly to all user-supplied
// strings before they reach markup.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Render fills a template's placeholders from a fully-defaulted config and
// returns the final html, css and js strings. Substitution is literal
// token-for-string replacement applied independently to each part; a token
// absent from a part is simply a no-op there.
func Render(t WidgetTemplate, cfg domain.WidgetConfig) (html, css, js string) {
	cfg = cfg.Normalized()
	r := strings.NewReplacer(tokenPairs(cfg)...)
	return r.Replace(t.HTML), r.Replace(t.CSS), r.Replace(t.JS)
}

func tokenPairs(cfg domain.WidgetConfig) []string {
	size := cfg.ButtonSize
	hasVideo := cfg.VideoEnabled && strings.TrimSpace(cfg.VideoURL) != ""

	tooltipClass := "hide"
	if cfg.TooltipDisplay == "always" {
		tooltipClass = "show"
	}

	// anchor the tooltip opposite the button's screen edge, offset past
	// the button in both axes
	var tooltipStyle string
	if cfg.Position == "left" {
		tooltipStyle = fmt.Sprintf("right:%dpx;bottom:%dpx;", size+10, size+10)
	} else {
		tooltipStyle = fmt.Sprintf("left:%dpx;bottom:%dpx;", size+10, size+10)
	}

	buttonIcon := glyphChat
	if cfg.CustomIconURL != "" {
		buttonIcon = `<img src="` + escapeHTML(cfg.CustomIconURL) + `" alt="" class="bt-icon-img">`
	}

	channelsSection := ""
	if len(cfg.Channels) > 0 {
		channelsSection = RenderChannels(cfg.Channels)
	}
	emptyState := ""
	if len(cfg.Channels) == 0 && !hasVideo {
		emptyState = RenderEmptyState()
	}

	greeting := cfg.GreetingMessage
	if greeting == "" {
		greeting = "Get in touch"
	}

	return []string{
		"{{POSITION_STYLE}}", cfg.Position,
		"{{BUTTON_COLOR}}", cfg.ButtonColor,
		"{{BUTTON_SIZE}}", strconv.Itoa(size),
		"{{BUTTON_STYLE}}", fmt.Sprintf("width:%dpx;height:%dpx;background:%s;", size, size, cfg.ButtonColor),
		"{{TOOLTIP_TEXT}}", escapeHTML(cfg.Tooltip),
		"{{TOOLTIP_CLASS}}", tooltipClass,
		"{{TOOLTIP_POSITION_STYLE}}", tooltipStyle,
		"{{TOOLTIP_DISPLAY}}", cfg.TooltipDisplay,
		"{{BUTTON_ICON}}", buttonIcon,
		"{{GREETING_MESSAGE}}", escapeHTML(greeting),
		"{{VIDEO_SECTION}}", videoSection(cfg, hasVideo),
		"{{CHANNELS_SECTION}}", channelsSection,
		"{{EMPTY_STATE}}", emptyState,
		"{{CHANNELS_DATA}}", ChannelsData(cfg.Channels),
	}
}

func videoSection(cfg domain.WidgetConfig, hasVideo bool) string {
	if !hasVideo {
		return ""
	}
	return fmt.Sprintf(
		`<div class="bt-video"><video src="%s" style="height:%dpx;object-position:%s;" controls autoplay muted playsinline></video></div>`,
		escapeHTML(cfg.VideoURL), cfg.VideoHeight, cfg.VideoAlignment)
}

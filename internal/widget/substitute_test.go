package widget

import (
	"strings"
	"testing"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() domain.WidgetConfig {
	cfg := domain.DefaultWidgetConfig()
	cfg.Channels = []domain.Channel{
		{ID: "1", Type: domain.ChannelWhatsApp, Value: "+1 (555) 123-4567", Label: "WhatsApp"},
	}
	return cfg
}

func TestRenderFillsAllTokens(t *testing.T) {
	html, css, js := Render(Lookup("default"), baseConfig())

	for name, part := range map[string]string{"html": html, "css": css, "js": js} {
		assert.NotContains(t, part, "{{", "unsubstituted token left in %s", name)
	}
}

func TestRenderPositionSide(t *testing.T) {
	cfg := baseConfig()
	cfg.Position = "left"

	html, css, _ := Render(Lookup("default"), cfg)
	assert.Contains(t, html, `bt-widget bt-left`)
	assert.Contains(t, css, "left:20px;")
	assert.Contains(t, css, "left:0;")
}

func TestRenderButtonStyle(t *testing.T) {
	cfg := baseConfig()
	cfg.ButtonColor = "#ff0000"
	cfg.ButtonSize = 72

	html, css, _ := Render(Lookup("default"), cfg)
	assert.Contains(t, html, "width:72px;height:72px;background:#ff0000;")
	assert.Contains(t, css, "width:72px")
	assert.Contains(t, css, "background:#ff0000")
}

func TestRenderTooltipClass(t *testing.T) {
	cfg := baseConfig()

	cfg.TooltipDisplay = "always"
	html, _, _ := Render(Lookup("default"), cfg)
	assert.Contains(t, html, `bt-tooltip show`)

	cfg.TooltipDisplay = "hover"
	html, _, _ = Render(Lookup("default"), cfg)
	assert.Contains(t, html, `bt-tooltip hide`)

	cfg.TooltipDisplay = "never"
	html, _, _ = Render(Lookup("default"), cfg)
	assert.Contains(t, html, `bt-tooltip hide`)
}

func TestRenderTooltipPositionStyle(t *testing.T) {
	cfg := baseConfig()
	cfg.ButtonSize = 60

	cfg.Position = "left"
	html, _, _ := Render(Lookup("default"), cfg)
	assert.Contains(t, html, "right:70px;bottom:70px;")

	cfg.Position = "right"
	html, _, _ = Render(Lookup("default"), cfg)
	assert.Contains(t, html, "left:70px;bottom:70px;")
}

func TestRenderEscapesUserContent(t *testing.T) {
	cfg := baseConfig()
	cfg.Tooltip = `<script>alert(1)</script>`
	cfg.GreetingMessage = `"><img src=x>`
	cfg.Channels[0].Label = `<script>alert(2)</script>`

	html, _, _ := Render(Lookup("default"), cfg)
	assert.NotContains(t, html, "<script>alert(1)")
	assert.NotContains(t, html, "<script>alert(2)")
	assert.NotContains(t, html, `"><img src=x>`)
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestRenderVideoSection(t *testing.T) {
	cfg := baseConfig()
	cfg.VideoEnabled = true
	cfg.VideoURL = "https://cdn.example.com/intro.mp4"
	cfg.VideoHeight = 240
	cfg.VideoAlignment = "top"

	html, _, _ := Render(Lookup("default"), cfg)
	require.Contains(t, html, "<video")
	assert.Contains(t, html, "height:240px")
	assert.Contains(t, html, "object-position:top")
	assert.Contains(t, html, "controls autoplay muted")

	// disabled flag suppresses the block even with a url set
	cfg.VideoEnabled = false
	html, _, _ = Render(Lookup("default"), cfg)
	assert.NotContains(t, html, "<video")

	// blank url suppresses the block even when enabled
	cfg.VideoEnabled = true
	cfg.VideoURL = "   "
	html, _, _ = Render(Lookup("default"), cfg)
	assert.NotContains(t, html, "<video")
}

func TestRenderEmptyState(t *testing.T) {
	cfg := baseConfig()
	cfg.Channels = nil
	cfg.VideoEnabled = false

	html, _, _ := Render(Lookup("default"), cfg)
	assert.Contains(t, html, "bt-empty")
	assert.NotContains(t, html, "bt-channel ")

	// video alone suppresses the empty state
	cfg.VideoEnabled = true
	cfg.VideoURL = "https://cdn.example.com/intro.mp4"
	html, _, _ = Render(Lookup("default"), cfg)
	assert.NotContains(t, html, "bt-empty")
}

func TestRenderChannelsData(t *testing.T) {
	_, _, js := Render(Lookup("default"), baseConfig())
	assert.Contains(t, js, `"url":"https://wa.me/15551234567"`)
	assert.Contains(t, js, `"id":"1"`)
}

func TestChannelsDataStaysInertInScript(t *testing.T) {
	data := ChannelsData([]domain.Channel{
		{ID: "1", Type: domain.ChannelCustom, Value: "x", Label: "</script><script>alert(1)</script>"},
	})
	assert.NotContains(t, data, "</script>")
}

func TestRenderUnknownTemplateMatchesDefault(t *testing.T) {
	cfg := baseConfig()

	gotHTML, gotCSS, gotJS := Render(Lookup("unknown-id"), cfg)
	wantHTML, wantCSS, wantJS := Render(Lookup("default"), cfg)

	assert.Equal(t, wantHTML, gotHTML)
	assert.Equal(t, wantCSS, gotCSS)
	assert.Equal(t, wantJS, gotJS)
}

func TestRenderDefaultsPartialConfig(t *testing.T) {
	// a nearly-empty config still renders deterministically
	html, css, _ := Render(Lookup("default"), domain.WidgetConfig{})

	assert.Contains(t, css, "right:20px")
	assert.True(t, strings.Contains(html, "width:60px"), "default button size applied")
	assert.Contains(t, html, "bt-empty")
}

package widget

import (
	"strings"
	"testing"

	"github.com/bubbletap/bubbletap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestURLFor(t *testing.T) {
	tests := []struct {
		name    string
		channel domain.Channel
		want    string
	}{
		{
			name:    "whatsapp strips formatting",
			channel: domain.Channel{Type: domain.ChannelWhatsApp, Value: "+1 (555) 123-4567"},
			want:    "https://wa.me/15551234567",
		},
		{
			name:    "telegram strips at-sign",
			channel: domain.Channel{Type: domain.ChannelTelegram, Value: "@mychannel"},
			want:    "https://t.me/mychannel",
		},
		{
			name:    "telegram without at-sign",
			channel: domain.Channel{Type: domain.ChannelTelegram, Value: "mychannel"},
			want:    "https://t.me/mychannel",
		},
		{
			name:    "email gets mailto",
			channel: domain.Channel{Type: domain.ChannelEmail, Value: "hi@example.com"},
			want:    "mailto:hi@example.com",
		},
		{
			name:    "phone gets tel",
			channel: domain.Channel{Type: domain.ChannelPhone, Value: "+15551234567"},
			want:    "tel:+15551234567",
		},
		{
			name:    "http url passes through",
			channel: domain.Channel{Type: domain.ChannelInstagram, Value: "https://instagram.com/someone"},
			want:    "https://instagram.com/someone",
		},
		{
			name:    "bare handle gets https prefix",
			channel: domain.Channel{Type: domain.ChannelWebsite, Value: "example.com"},
			want:    "https://example.com",
		},
		{
			name:    "custom follows the generic rule",
			channel: domain.Channel{Type: domain.ChannelCustom, Value: "example.com/contact"},
			want:    "https://example.com/contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URLFor(tt.channel))
		})
	}
}

func TestResolverTotality(t *testing.T) {
	// every enum value plus garbage must yield non-empty results with no panic
	types := []domain.ChannelType{
		domain.ChannelWhatsApp, domain.ChannelTelegram, domain.ChannelInstagram,
		domain.ChannelMessenger, domain.ChannelViber, domain.ChannelSkype,
		domain.ChannelDiscord, domain.ChannelTikTok, domain.ChannelYouTube,
		domain.ChannelFacebook, domain.ChannelTwitter, domain.ChannelLinkedIn,
		domain.ChannelGitHub, domain.ChannelWebsite, domain.ChannelChatbot,
		domain.ChannelEmail, domain.ChannelPhone, domain.ChannelCustom,
		domain.ChannelType("definitely-not-a-platform"), domain.ChannelType(""),
	}

	for _, typ := range types {
		c := domain.Channel{Type: typ, Value: "something"}
		assert.NotEmpty(t, URLFor(c), "URLFor(%q)", typ)
		assert.NotEmpty(t, IconFor(c), "IconFor(%q)", typ)
		color := ColorFor(typ)
		assert.NotEmpty(t, color, "ColorFor(%q)", typ)
		assert.True(t, strings.HasPrefix(color, "#"), "ColorFor(%q) = %q is not a hex color", typ, color)
	}
}

func TestColorForFallback(t *testing.T) {
	assert.Equal(t, FallbackColor, ColorFor("no-such-type"))
	assert.Equal(t, "#25d366", ColorFor(domain.ChannelWhatsApp))
}

func TestIconForCustomImage(t *testing.T) {
	c := domain.Channel{Type: domain.ChannelCustom, CustomIcon: "https://cdn.example.com/icon.png"}
	icon := IconFor(c)
	assert.Contains(t, icon, "<img")
	assert.Contains(t, icon, "https://cdn.example.com/icon.png")

	// without an uploaded icon, custom falls back to the link glyph
	assert.Equal(t, glyphLink, IconFor(domain.Channel{Type: domain.ChannelCustom}))
	// unknown types share the same fallback
	assert.Equal(t, glyphLink, IconFor(domain.Channel{Type: "mystery"}))
}

func TestIconForEscapesCustomIconURL(t *testing.T) {
	c := domain.Channel{Type: domain.ChannelCustom, CustomIcon: `x" onerror="alert(1)`}
	icon := IconFor(c)
	assert.NotContains(t, icon, `" onerror="`)
	assert.Contains(t, icon, "&quot;")
}

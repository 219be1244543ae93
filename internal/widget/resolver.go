package widget

import (
	"strings"

	"github.com/bubbletap/bubbletap/internal/domain"
)

// FallbackColor is used for unrecognized channel types.
const FallbackColor = "#6b7280"

var brandColors = map[domain.ChannelType]string{
	domain.ChannelWhatsApp:  "#25d366",
	domain.ChannelTelegram:  "#0088cc",
	domain.ChannelInstagram: "#e4405f",
	domain.ChannelMessenger: "#0084ff",
	domain.ChannelViber:     "#7360f2",
	domain.ChannelSkype:     "#00aff0",
	domain.ChannelDiscord:   "#5865f2",
	domain.ChannelTikTok:    "#010101",
	domain.ChannelYouTube:   "#ff0000",
	domain.ChannelFacebook:  "#1877f2",
	domain.ChannelTwitter:   "#1da1f2",
	domain.ChannelLinkedIn:  "#0a66c2",
	domain.ChannelGitHub:    "#181717",
	domain.ChannelWebsite:   "#4b5563",
	domain.ChannelChatbot:   "#8b5cf6",
	domain.ChannelEmail:     "#ea4335",
	domain.ChannelPhone:     "#34a853",
	domain.ChannelCustom:    FallbackColor,
}

// URLFor resolves a channel to its deep link. Total over the type enum:
// unknown and custom types fall through to the generic URL rule.
func URLFor(c domain.Channel) string {
	value := strings.TrimSpace(c.Value)
	switch c.Type {
	case domain.ChannelWhatsApp:
		return "https://wa.me/" + digitsOnly(value)
	case domain.ChannelTelegram:
		return "https://t.me/" + strings.TrimPrefix(value, "@")
	case domain.ChannelEmail:
		return "mailto:" + value
	case domain.ChannelPhone:
		return "tel:" + value
	default:
		if strings.HasPrefix(value, "http") {
			return value
		}
		return "https://" + value
	}
}

// ColorFor returns the platform brand color, or a gray fallback for
// unrecognized types. Never returns an empty string.
func ColorFor(t domain.ChannelType) string {
	if color, ok := brandColors[t]; ok {
		return color
	}
	return FallbackColor
}

// IconFor returns inline icon markup for a channel. A custom channel with
// an uploaded icon renders as an <img>; everything else resolves through
// the glyph table with a generic link glyph as fallback.
func IconFor(c domain.Channel) string {
	if c.Type == domain.ChannelCustom && c.CustomIcon != "" {
		return `<img src="` + escapeHTML(c.CustomIcon) + `" alt="" class="bt-icon-img">`
	}
	if glyph, ok := channelGlyphs[c.Type]; ok {
		return glyph
	}
	return glyphLink
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

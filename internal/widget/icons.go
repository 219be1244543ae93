package widget

import "github.com/bubbletap/bubbletap/internal/domain"

// Inline SVG glyphs, one per channel type. All share the same frame so
// templates can size them uniformly via .bt-icon.
const (
	svgOpen = `<svg class="bt-icon" viewBox="0 0 24 24" fill="currentColor" aria-hidden="true">`
	svgEnd  = `</svg>`

	glyphLink = svgOpen + `<path d="M10.6 13.4a1 1 0 0 0 1.4 1.4l4.3-4.3a3 3 0 0 0-4.2-4.2L9.3 9.1a1 1 0 1 0 1.4 1.4l2.8-2.8a1 1 0 0 1 1.4 1.4l-4.3 4.3zm2.8-2.8a1 1 0 0 0-1.4-1.4l-4.3 4.3a3 3 0 0 0 4.2 4.2l2.8-2.8a1 1 0 1 0-1.4-1.4l-2.8 2.8a1 1 0 0 1-1.4-1.4l4.3-4.3z"/>` + svgEnd
	glyphChat = svgOpen + `<path d="M12 3C6.5 3 2 6.6 2 11c0 2.2 1.1 4.2 2.9 5.6L4 21l4.4-2.2c1.1.3 2.3.5 3.6.5 5.5 0 10-3.6 10-8.3S17.5 3 12 3z"/>` + svgEnd
	glyphPlane = svgOpen + `<path d="M21.9 2.1a.8.8 0 0 0-.9-.1L2.5 9.6a.8.8 0 0 0 .1 1.5l5 1.4 1.5 5a.8.8 0 0 0 1.5.1l7.6-18.5a.8.8 0 0 0-.3-1zM9.5 12.1l9-7-7 9-2-2z"/>` + svgEnd
	glyphCamera = svgOpen + `<path d="M12 8.5A3.5 3.5 0 1 0 12 15.5 3.5 3.5 0 0 0 12 8.5zM17 2H7A5 5 0 0 0 2 7v10a5 5 0 0 0 5 5h10a5 5 0 0 0 5-5V7a5 5 0 0 0-5-5zm1 5.2a1.2 1.2 0 1 1 0-2.4 1.2 1.2 0 0 1 0 2.4z"/>` + svgEnd
	glyphBolt = svgOpen + `<path d="M13 2 4 13h6l-1 9 9-11h-6l1-9z"/>` + svgEnd
	glyphPhone = svgOpen + `<path d="M20.5 15.5c-1.2 0-2.4-.2-3.5-.6a1 1 0 0 0-1 .2l-2.2 2.2a15.1 15.1 0 0 1-6.6-6.6l2.2-2.2a1 1 0 0 0 .2-1c-.4-1.1-.6-2.3-.6-3.5a1 1 0 0 0-1-1H4a1 1 0 0 0-1 1A17.5 17.5 0 0 0 20.5 21.5a1 1 0 0 0 1-1v-4a1 1 0 0 0-1-1z"/>` + svgEnd
	glyphMail = svgOpen + `<path d="M20 4H4a2 2 0 0 0-2 2v12a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V6a2 2 0 0 0-2-2zm0 4-8 5-8-5V6l8 5 8-5v2z"/>` + svgEnd
	glyphVideo = svgOpen + `<path d="M17 10.5V7a2 2 0 0 0-2-2H4a2 2 0 0 0-2 2v10a2 2 0 0 0 2 2h11a2 2 0 0 0 2-2v-3.5l5 4v-11l-5 4z"/>` + svgEnd
	glyphGlobe = svgOpen + `<path d="M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20zm7.9 9h-3.4a15.7 15.7 0 0 0-1.2-6.2A8 8 0 0 1 19.9 11zM12 20a13.7 13.7 0 0 1-1.5-7h3a13.7 13.7 0 0 1-1.5 7zm-1.5-9a13.7 13.7 0 0 1 1.5-7 13.7 13.7 0 0 1 1.5 7h-3zM8.7 4.8A15.7 15.7 0 0 0 7.5 11H4.1a8 8 0 0 1 4.6-6.2zM4.1 13h3.4a15.7 15.7 0 0 0 1.2 6.2A8 8 0 0 1 4.1 13zm11.2 6.2a15.7 15.7 0 0 0 1.2-6.2h3.4a8 8 0 0 1-4.6 6.2z"/>` + svgEnd
	glyphBot = svgOpen + `<path d="M12 2a1 1 0 0 1 1 1v2h4a3 3 0 0 1 3 3v8a3 3 0 0 1-3 3H7a3 3 0 0 1-3-3V8a3 3 0 0 1 3-3h4V3a1 1 0 0 1 1-1zM9 10.5A1.5 1.5 0 1 0 9 13.5 1.5 1.5 0 0 0 9 10.5zm6 0a1.5 1.5 0 1 0 0 3 1.5 1.5 0 0 0 0-3zM3 10H2a1 1 0 0 0-1 1v2a1 1 0 0 0 1 1h1v-4zm19 0h-1v4h1a1 1 0 0 0 1-1v-2a1 1 0 0 0-1-1z"/>` + svgEnd
	glyphPlay = svgOpen + `<path d="M21.6 7.2a2.8 2.8 0 0 0-2-2C17.9 4.8 12 4.8 12 4.8s-5.9 0-7.6.4a2.8 2.8 0 0 0-2 2A29.4 29.4 0 0 0 2 12a29.4 29.4 0 0 0 .4 4.8 2.8 2.8 0 0 0 2 2c1.7.4 7.6.4 7.6.4s5.9 0 7.6-.4a2.8 2.8 0 0 0 2-2A29.4 29.4 0 0 0 22 12a29.4 29.4 0 0 0-.4-4.8zM9.8 15.3V8.7L16 12l-6.2 3.3z"/>` + svgEnd
	glyphBird = svgOpen + `<path d="M22 5.9a8.2 8.2 0 0 1-2.4.7 4.1 4.1 0 0 0 1.8-2.3 8.2 8.2 0 0 1-2.6 1A4.1 4.1 0 0 0 11.8 9 11.7 11.7 0 0 1 3.4 4.7a4.1 4.1 0 0 0 1.3 5.5 4 4 0 0 1-1.9-.5 4.1 4.1 0 0 0 3.3 4 4.2 4.2 0 0 1-1.8.1 4.1 4.1 0 0 0 3.8 2.9A8.3 8.3 0 0 1 2 18.4 11.7 11.7 0 0 0 8.3 20.2c7.5 0 11.7-6.3 11.7-11.7v-.5A8.3 8.3 0 0 0 22 5.9z"/>` + svgEnd
	glyphBriefcase = svgOpen + `<path d="M20 7h-4V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v2H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2zm-10-2h4v2h-4V5z"/>` + svgEnd
	glyphOctocat = svgOpen + `<path d="M12 2A10 10 0 0 0 8.8 21.5c.5.1.7-.2.7-.5v-1.7c-2.8.6-3.4-1.2-3.4-1.2-.5-1.2-1.1-1.5-1.1-1.5-.9-.6.1-.6.1-.6 1 .1 1.5 1 1.5 1 .9 1.5 2.3 1.1 2.9.8.1-.6.3-1.1.6-1.3-2.2-.3-4.6-1.1-4.6-5a3.9 3.9 0 0 1 1-2.7 3.6 3.6 0 0 1 .1-2.6s.9-.3 2.8 1a9.5 9.5 0 0 1 5 0c1.9-1.3 2.8-1 2.8-1a3.6 3.6 0 0 1 .1 2.6 3.9 3.9 0 0 1 1 2.7c0 3.9-2.4 4.7-4.6 5 .4.3.7.9.7 1.8V21c0 .3.2.6.7.5A10 10 0 0 0 12 2z"/>` + svgEnd
	glyphNote = svgOpen + `<path d="M12.5 2a8.8 8.8 0 0 0 .1 1.5v10a4 4 0 1 0 2 3.5V8.2a8 8 0 0 0 4.6 1.5V6.6A4.8 4.8 0 0 1 14.6 2h-2.1z"/>` + svgEnd
	glyphGame = svgOpen + `<path d="M19.3 5.3A16.4 16.4 0 0 0 15.2 4l-.2.4a15 15 0 0 0-6 0L8.8 4a16.4 16.4 0 0 0-4.1 1.3A17 17 0 0 0 2 16.8a16.5 16.5 0 0 0 5 2.5l.7-1.1a10.6 10.6 0 0 1-1.7-.8l.4-.3a11.8 11.8 0 0 0 10.2 0l.4.3a10.6 10.6 0 0 1-1.7.8l.7 1.1a16.5 16.5 0 0 0 5-2.5 17 17 0 0 0-2.7-11.5zM9 14.6c-.8 0-1.4-.7-1.4-1.6S8.2 11.4 9 11.4s1.4.7 1.4 1.6-.6 1.6-1.4 1.6zm6 0c-.8 0-1.4-.7-1.4-1.6s.6-1.6 1.4-1.6 1.4.7 1.4 1.6-.6 1.6-1.4 1.6z"/>` + svgEnd
)

var channelGlyphs = map[domain.ChannelType]string{
	domain.ChannelWhatsApp:  glyphChat,
	domain.ChannelTelegram:  glyphPlane,
	domain.ChannelInstagram: glyphCamera,
	domain.ChannelMessenger: glyphBolt,
	domain.ChannelViber:     glyphPhone,
	domain.ChannelSkype:     glyphVideo,
	domain.ChannelDiscord:   glyphGame,
	domain.ChannelTikTok:    glyphNote,
	domain.ChannelYouTube:   glyphPlay,
	domain.ChannelFacebook:  glyphChat,
	domain.ChannelTwitter:   glyphBird,
	domain.ChannelLinkedIn:  glyphBriefcase,
	domain.ChannelGitHub:    glyphOctocat,
	domain.ChannelWebsite:   glyphGlobe,
	domain.ChannelChatbot:   glyphBot,
	domain.ChannelEmail:     glyphMail,
	domain.ChannelPhone:     glyphPhone,
	domain.ChannelCustom:    glyphLink,
}

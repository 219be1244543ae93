package widget

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bubbletap/bubbletap/internal/domain"
)

// channelRow is the wire shape inlined into the behavior script via the
// CHANNELS_DATA token. URLs and colors are resolved here so the script
// never re-derives them.
type channelRow struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Label    string       `json:"label"`
	Value    string       `json:"value,omitempty"`
	URL      string       `json:"url,omitempty"`
	Color    string       `json:"color"`
	Items    []channelRow `json:"items,omitempty"`
	Children []channelRow `json:"children,omitempty"`
}

func toRow(c domain.Channel) channelRow {
	row := channelRow{
		ID:    c.ID,
		Type:  string(c.Type),
		Label: c.Label,
		Value: c.Value,
		Color: ColorFor(c.Type),
	}
	if !c.IsGroup {
		row.URL = URLFor(c)
	}
	for _, item := range c.GroupItems {
		row.Items = append(row.Items, toRow(item))
	}
	for _, child := range c.ChildChannels {
		row.Children = append(row.Children, toRow(child))
	}
	return row
}

// ChannelsData encodes the channel list as the JSON blob the behavior
// script consumes at runtime.
func ChannelsData(channels []domain.Channel) string {
	rows := make([]channelRow, 0, len(channels))
	for _, c := range channels {
		if c.ParentID != "" {
			continue
		}
		rows = append(rows, toRow(c))
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "[]"
	}
	// keep the inlined JSON inert inside a <script> context
	return strings.ReplaceAll(string(data), "</", "<\\/")
}

// RenderChannels produces the channels section markup. Top-level channels
// render in stored array order; children only appear inside their parent's
// sub-menu. Every link opens in a new browsing context.
func RenderChannels(channels []domain.Channel) string {
	var b strings.Builder
	for _, c := range channels {
		if c.ParentID != "" {
			continue
		}
		switch {
		case len(c.ChildChannels) > 0:
			renderNestedGroup(&b, c)
		case c.IsGroup:
			renderFlatGroup(&b, c)
		default:
			renderRow(&b, c)
		}
	}
	return b.String()
}

// RenderEmptyState produces the placeholder block shown when a widget has
// neither channels nor video.
func RenderEmptyState() string {
	return `<div class="bt-empty">No contact channels configured yet.</div>`
}

func renderRow(b *strings.Builder, c domain.Channel) {
	color := ColorFor(c.Type)
	fmt.Fprintf(b,
		`<a class="bt-channel" href="%s" target="_blank" rel="noopener noreferrer" data-channel-id="%s">`+
			`<span class="bt-channel-icon" style="background:%s;">%s</span>`+
			`<span class="bt-channel-meta"><span class="bt-channel-label">%s</span><span class="bt-channel-value">%s</span></span>`+
			`<span class="bt-channel-ext">%s</span>`+
			`</a>`,
		escapeHTML(URLFor(c)), escapeHTML(c.ID), color, IconFor(c),
		escapeHTML(c.Label), escapeHTML(c.Value), glyphLink)
}

// renderNestedGroup renders a parent channel with a hover sub-menu. The
// trigger itself navigates to the parent's URL; the sub-menu lists the
// parent followed by each child.
func renderNestedGroup(b *strings.Builder, c domain.Channel) {
	color := ColorFor(c.Type)
	fmt.Fprintf(b, `<div class="bt-group">`)
	fmt.Fprintf(b,
		`<a class="bt-channel" href="%s" target="_blank" rel="noopener noreferrer" data-channel-id="%s">`+
			`<span class="bt-channel-icon" style="background:%s;">%s</span>`+
			`<span class="bt-channel-meta"><span class="bt-channel-label">%s</span></span>`+
			`<span class="bt-badge">%d options</span>`+
			`</a>`,
		escapeHTML(URLFor(c)), escapeHTML(c.ID), color, IconFor(c),
		escapeHTML(c.Label), len(c.ChildChannels)+1)
	b.WriteString(`<div class="bt-submenu">`)
	parent := c
	parent.ChildChannels = nil
	renderRow(b, parent)
	for _, child := range c.ChildChannels {
		renderRow(b, child)
	}
	b.WriteString(`</div></div>`)
}

// renderFlatGroup renders an aggregate pseudo-channel as an expandable
// badge-count block; each member stays individually clickable.
func renderFlatGroup(b *strings.Builder, c domain.Channel) {
	color := ColorFor(c.Type)
	fmt.Fprintf(b, `<div class="bt-group" data-group-id="%s">`, escapeHTML(c.ID))
	fmt.Fprintf(b,
		`<button type="button" class="bt-group-toggle">`+
			`<span class="bt-channel-icon" style="background:%s;">%s</span>`+
			`<span class="bt-channel-meta"><span class="bt-channel-label">%s</span></span>`+
			`<span class="bt-badge">%d</span>`+
			`</button>`,
		color, IconFor(c), escapeHTML(c.Label), len(c.GroupItems))
	b.WriteString(`<div class="bt-group-items" hidden>`)
	for _, item := range c.GroupItems {
		renderRow(b, item)
	}
	b.WriteString(`</div></div>`)
}

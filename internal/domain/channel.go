package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ChannelType identifies the contact platform a channel points at.
type ChannelType string

const (
	ChannelWhatsApp  ChannelType = "whatsapp"
	ChannelTelegram  ChannelType = "telegram"
	ChannelInstagram ChannelType = "instagram"
	ChannelMessenger ChannelType = "messenger"
	ChannelViber     ChannelType = "viber"
	ChannelSkype     ChannelType = "skype"
	ChannelDiscord   ChannelType = "discord"
	ChannelTikTok    ChannelType = "tiktok"
	ChannelYouTube   ChannelType = "youtube"
	ChannelFacebook  ChannelType = "facebook"
	ChannelTwitter   ChannelType = "twitter"
	ChannelLinkedIn  ChannelType = "linkedin"
	ChannelGitHub    ChannelType = "github"
	ChannelWebsite   ChannelType = "website"
	ChannelChatbot   ChannelType = "chatbot"
	ChannelEmail     ChannelType = "email"
	ChannelPhone     ChannelType = "phone"
	ChannelCustom    ChannelType = "custom"
)

// Display modes for channels that belong to a flat group.
const (
	DisplayGrouped    = "grouped"
	DisplayIndividual = "individual"
)

var channelTypes = []ChannelType{
	ChannelWhatsApp, ChannelTelegram, ChannelInstagram, ChannelMessenger,
	ChannelViber, ChannelSkype, ChannelDiscord, ChannelTikTok,
	ChannelYouTube, ChannelFacebook, ChannelTwitter, ChannelLinkedIn,
	ChannelGitHub, ChannelWebsite, ChannelChatbot, ChannelEmail,
	ChannelPhone, ChannelCustom,
}

// Known reports whether t is a recognized channel type.
func (t ChannelType) Known() bool {
	for _, k := range channelTypes {
		if t == k {
			return true
		}
	}
	return false
}

// canonical display names, used when a channel has no user-set label
var channelNames = map[ChannelType]string{
	ChannelWhatsApp:  "WhatsApp",
	ChannelTelegram:  "Telegram",
	ChannelInstagram: "Instagram",
	ChannelMessenger: "Messenger",
	ChannelViber:     "Viber",
	ChannelSkype:     "Skype",
	ChannelDiscord:   "Discord",
	ChannelTikTok:    "TikTok",
	ChannelYouTube:   "YouTube",
	ChannelFacebook:  "Facebook",
	ChannelTwitter:   "Twitter",
	ChannelLinkedIn:  "LinkedIn",
	ChannelGitHub:    "GitHub",
	ChannelWebsite:   "Website",
	ChannelChatbot:   "Chatbot",
	ChannelEmail:     "Email",
	ChannelPhone:     "Phone",
	ChannelCustom:    "Custom",
}

// CanonicalName returns the platform's display name, or "Contact" for
// unknown types.
func (t ChannelType) CanonicalName() string {
	if name, ok := channelNames[t]; ok {
		return name
	}
	return "Contact"
}

// Channel is a single contact method shown in the widget.
//
// Two independent grouping mechanisms exist in stored data and both are
// supported: a flat group (IsGroup + GroupItems, an aggregate pseudo-channel
// folding several same-type channels) and a nested group (ParentID back-
// reference plus ChildChannels on the parent, rendered as a sub-menu).
// A channel is never both: see Validate.
type Channel struct {
	ID         string      `json:"id"`
	Type       ChannelType `json:"type"`
	Value      string      `json:"value"`
	Label      string      `json:"label"`
	CustomIcon string      `json:"customIcon,omitempty"`

	IsGroup     bool      `json:"isGroup,omitempty"`
	GroupItems  []Channel `json:"groupItems,omitempty"`
	DisplayMode string    `json:"displayMode,omitempty"`

	ParentID      string    `json:"parentId,omitempty"`
	ChildChannels []Channel `json:"childChannels,omitempty"`
}

// Validate checks a channel and everything nested under it. A flat group
// carrying a parent back-reference is corrupt data and is rejected rather
// than reinterpreted; the same goes for a group appearing inside GroupItems
// or ChildChannels, since Normalize stamps ParentID onto every child.
func (c Channel) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Type, validation.Required, validation.By(func(any) error {
			if !c.Type.Known() {
				return ErrUnknownChannelType
			}
			return nil
		})),
		validation.Field(&c.Value, validation.Required.When(!c.IsGroup)),
		validation.Field(&c.DisplayMode, validation.In("", DisplayGrouped, DisplayIndividual)),
	); err != nil {
		return err
	}
	if c.IsGroup && c.ParentID != "" {
		return ErrConflictingGrouping
	}
	if c.IsGroup && len(c.GroupItems) < 2 {
		return ErrGroupTooSmall
	}
	for _, item := range c.GroupItems {
		if item.IsGroup {
			return ErrConflictingGrouping
		}
		if err := item.Validate(); err != nil {
			return err
		}
	}
	for _, child := range c.ChildChannels {
		if child.IsGroup {
			return ErrConflictingGrouping
		}
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Normalize fills derived defaults on a channel: a stable id and the
// platform's canonical label when the user left it blank.
func (c Channel) Normalize() Channel {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Label == "" {
		c.Label = c.Type.CanonicalName()
	}
	if c.IsGroup && c.DisplayMode == "" {
		c.DisplayMode = DisplayGrouped
	}
	for i, item := range c.GroupItems {
		c.GroupItems[i] = item.Normalize()
	}
	for i, child := range c.ChildChannels {
		child.ParentID = c.ID
		c.ChildChannels[i] = child.Normalize()
	}
	return c
}

// NormalizeChannels normalizes every channel in stored order. Order is the
// source of truth for rendering and must be preserved verbatim.
func NormalizeChannels(channels []Channel) []Channel {
	out := make([]Channel, len(channels))
	for i, c := range channels {
		out[i] = c.Normalize()
	}
	return out
}

// GroupChannels folds every top-level channel of the given type into a
// single flat group pseudo-channel, placed at the position of the first
// member. Fewer than two members leaves the list unchanged: a group of one
// cannot exist.
func GroupChannels(channels []Channel, typ ChannelType) []Channel {
	var members []Channel
	for _, c := range channels {
		if !c.IsGroup && c.ParentID == "" && c.Type == typ {
			members = append(members, c)
		}
	}
	if len(members) < 2 {
		return channels
	}

	for i := range members {
		members[i].DisplayMode = DisplayGrouped
	}
	group := Channel{
		ID:          uuid.New().String(),
		Type:        typ,
		Label:       typ.CanonicalName(),
		IsGroup:     true,
		GroupItems:  members,
		DisplayMode: DisplayGrouped,
	}

	var out []Channel
	placed := false
	for _, c := range channels {
		if !c.IsGroup && c.ParentID == "" && c.Type == typ {
			if !placed {
				out = append(out, group)
				placed = true
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

// UngroupChannel disbands the flat group with the given id: every member
// reverts to individual display and takes the group's place in order.
func UngroupChannel(channels []Channel, groupID string) []Channel {
	var out []Channel
	for _, c := range channels {
		if c.IsGroup && c.ID == groupID {
			for _, item := range c.GroupItems {
				item.DisplayMode = DisplayIndividual
				out = append(out, item)
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

// RemoveFromGroup extracts one member from a flat group back to a
// standalone individual channel. A group left with fewer than two members
// dissolves: the remainder also reverts to individual channels in place.
func RemoveFromGroup(channels []Channel, groupID, itemID string) []Channel {
	var out []Channel
	for _, c := range channels {
		if !c.IsGroup || c.ID != groupID {
			out = append(out, c)
			continue
		}

		var removed *Channel
		var kept []Channel
		for _, item := range c.GroupItems {
			if item.ID == itemID {
				item.DisplayMode = DisplayIndividual
				removed = &item
				continue
			}
			kept = append(kept, item)
		}

		if len(kept) < 2 {
			for _, item := range kept {
				item.DisplayMode = DisplayIndividual
				out = append(out, item)
			}
		} else {
			c.GroupItems = kept
			out = append(out, c)
		}
		if removed != nil {
			out = append(out, *removed)
		}
	}
	return out
}

package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInsufficientCredits indicates the widget's balance cannot cover a view
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrWidgetInactive indicates the widget is disabled by its owner
	ErrWidgetInactive = errors.New("widget inactive")
	// ErrUnknownChannelType indicates a channel type outside the enum
	ErrUnknownChannelType = errors.New("unknown channel type")
	// ErrConflictingGrouping indicates a channel that is both a flat group and a nested child
	ErrConflictingGrouping = errors.New("channel cannot be a group and have a parent")
	// ErrGroupTooSmall indicates a flat group with fewer than two members
	ErrGroupTooSmall = errors.New("group must contain at least two channels")
)

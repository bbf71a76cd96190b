// Package policy maps the extension's title-bar preference to the window
// decoration action to take and the reply the extension expects.
package policy

import "github.com/hmiko/untitled/internal/protocol"

// Preference is the extension's three-valued title-bar setting, plus the
// catch-all Unknown for absent or unrecognized values.
type Preference string

const (
	PrefAlways  Preference = "always"
	PrefMaxOnly Preference = "maxonly"
	PrefNever   Preference = "never"
	PrefUnknown Preference = "unknown"
)

// Action is the decoration change requested from the window manager.
type Action int

const (
	// ActionNone requests no decoration change.
	ActionNone Action = iota
	// ActionBorderOnly strips the chrome down to a bare border.
	ActionBorderOnly
	// ActionAll restores full window manager decorations.
	ActionAll
)

func (a Action) String() string {
	switch a {
	case ActionBorderOnly:
		return "border-only"
	case ActionAll:
		return "all"
	default:
		return "none"
	}
}

// FromRequest derives the preference from the request. Absent or
// unrecognized values yield PrefUnknown; this never fails.
func FromRequest(req protocol.Request) Preference {
	switch Preference(req.WhenToHideTitleBar) {
	case PrefAlways, PrefMaxOnly, PrefNever:
		return Preference(req.WhenToHideTitleBar)
	default:
		return PrefUnknown
	}
}

// Resolve maps a preference to the action to take and the reply to send.
// Total over the preference domain; values outside it behave like
// PrefUnknown.
func Resolve(pref Preference) (Action, protocol.Reply) {
	switch pref {
	case PrefAlways:
		return ActionBorderOnly, protocol.NewOKReply()
	case PrefMaxOnly:
		// Hiding only while maximized is not expressible through
		// decoration hints.
		return ActionNone, protocol.NewFailureReply(protocol.FailureMaxOnlyUnsupported)
	case PrefNever:
		return ActionAll, protocol.NewOKReply()
	default:
		return ActionNone, protocol.NewFailureReply(protocol.FailureUnknownWhenToHide)
	}
}

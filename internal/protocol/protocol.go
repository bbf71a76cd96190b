// Package protocol defines the JSON messages exchanged with the browser
// extension.
package protocol

// Request is the single message the extension sends per invocation.
// Unknown fields are ignored; an absent preference decodes to the empty
// string.
type Request struct {
	WhenToHideTitleBar string `json:"whenToHideTitleBar"`
}

// Known failure tags the extension understands.
const (
	// FailureUnknownWhenToHide reports an absent or unrecognized
	// preference value.
	FailureUnknownWhenToHide = "UNKNOWN_WHEN_TO_HIDE"
	// FailureMaxOnlyUnsupported reports that maximized-only hiding cannot
	// be implemented through window manager decoration hints.
	FailureMaxOnlyUnsupported = "MAX_ONLY_UNSUPPORTED"
)

// Reply is the single message sent back to the extension. Exactly one of
// Okay or KnownFailure is set, so the message marshals to either
// {"okay":true} or {"knownFailure":"<tag>"}.
type Reply struct {
	Okay         bool   `json:"okay,omitempty"`
	KnownFailure string `json:"knownFailure,omitempty"`
}

// NewOKReply creates a successful reply.
func NewOKReply() Reply {
	return Reply{Okay: true}
}

// NewFailureReply creates a reply carrying a known failure tag.
func NewFailureReply(tag string) Reply {
	return Reply{KnownFailure: tag}
}

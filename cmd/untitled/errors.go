package main

import "fmt"

// Exit codes. The values are a local contract with the calling extension:
// the extension treats any close-without-reply as a failure, and the code
// distinguishes why.
const (
	exitSuccess = 0
	exitError   = 1
	// exitProtocol: stdin carried a malformed native-messaging frame.
	exitProtocol = 2
	// exitToolNotFound: pidof, wmctrl or xprop is not installed.
	exitToolNotFound = 3
	// exitToolFailed and exitBadOutput are reserved for a stricter contract
	// in which a failed discovery command or undecodable tool output is
	// fatal. The current flow degrades both to an empty window set instead,
	// so nothing returns these codes; the extension still reserves them.
	exitToolFailed = 4
	exitBadOutput  = 5
)

// ExitError represents an error that should cause the process to exit
// with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errProtocol(err error) *ExitError {
	return &ExitError{
		Code:    exitProtocol,
		Message: fmt.Sprintf("malformed request: %v", err),
	}
}

func errToolNotFound(err error) *ExitError {
	return &ExitError{
		Code:    exitToolNotFound,
		Message: fmt.Sprintf("%v\nInstall wmctrl, xprop and pidof, then run: untitled doctor", err),
	}
}

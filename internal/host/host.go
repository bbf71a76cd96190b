// Package host implements the native-messaging request flow: read one
// request from the extension, resolve the decoration policy, apply it to
// the target process's windows, and send one reply.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hmiko/untitled/internal/nativemsg"
	"github.com/hmiko/untitled/internal/policy"
	"github.com/hmiko/untitled/internal/protocol"
	"github.com/hmiko/untitled/internal/x11"
)

// channel frames messages to and from the extension.
type channel interface {
	Read(v any) error
	Write(v any) error
}

// windowLocator resolves a process name to the windows it owns.
type windowLocator interface {
	FindWindows(procName string) ([]x11.Window, error)
}

// Host handles one native-messaging exchange with the extension.
type Host struct {
	channel   channel
	locator   windowLocator
	decorator x11.Decorator
	logger    *slog.Logger
	procName  string
}

// New creates a host targeting the named process.
func New(ch channel, locator windowLocator, decorator x11.Decorator, logger *slog.Logger, procName string) *Host {
	return &Host{
		channel:   ch,
		locator:   locator,
		decorator: decorator,
		logger:    logger,
		procName:  procName,
	}
}

// Run performs one read-decide-act-respond pass. A clean empty-message
// shutdown returns nil without writing a reply; every other path either
// writes exactly one reply or returns an error.
func (h *Host) Run() error {
	pref, done, err := h.receive()
	if done || err != nil {
		return err
	}

	action, reply := policy.Resolve(pref)
	if action != policy.ActionNone {
		if err := h.decorate(action); err != nil {
			return err
		}
	}

	h.logger.Debug("sending reply", "okay", reply.Okay, "knownFailure", reply.KnownFailure)
	if err := h.channel.Write(reply); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}

// Watch reads and resolves one request, then re-applies the resulting
// action at the given interval until ctx is cancelled, catching windows
// the target process opens later. No reply is ever written in this mode;
// the process is expected to be killed when the pipe closes.
func (h *Host) Watch(ctx context.Context, interval time.Duration) error {
	pref, done, err := h.receive()
	if done || err != nil {
		return err
	}

	action, _ := policy.Resolve(pref)
	if action == policy.ActionNone {
		h.logger.Debug("no decoration action, nothing to watch")
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := h.decorate(action); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// receive reads the request and derives the preference. done is true on
// the empty-message shutdown signal.
func (h *Host) receive() (pref policy.Preference, done bool, err error) {
	var req protocol.Request
	if err := h.channel.Read(&req); err != nil {
		if errors.Is(err, nativemsg.ErrEmptyMessage) {
			h.logger.Debug("empty message, exiting")
			return "", true, nil
		}
		return "", false, fmt.Errorf("read request: %w", err)
	}

	pref = policy.FromRequest(req)
	h.logger.Debug("received request",
		"whenToHideTitleBar", req.WhenToHideTitleBar,
		"preference", string(pref))
	return pref, false, nil
}

// decorate applies the action to every window the target process owns.
// A per-window failure is logged and skipped, so that a window vanishing
// between discovery and application never blocks the rest; a missing
// decoration tool aborts the pass.
func (h *Host) decorate(action policy.Action) error {
	windows, err := h.locator.FindWindows(h.procName)
	if err != nil {
		return err
	}

	for _, w := range windows {
		h.logger.Debug("decorating window",
			"id", fmt.Sprintf("0x%x", w.ID),
			"title", w.Title,
			"action", action.String())
		if err := h.decorator.Decorate(w, action); err != nil {
			if errors.Is(err, x11.ErrToolNotFound) {
				return err
			}
			h.logger.Warn("decorate window failed",
				"id", fmt.Sprintf("0x%x", w.ID),
				"error", err)
		}
	}
	return nil
}

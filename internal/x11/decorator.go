package x11

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/hmiko/untitled/internal/policy"
)

// _MOTIF_WM_HINTS values understood by the window manager. The flags
// word selects the decorations field; in the decorations word, bit 0
// means "all decorations" and bit 1 means "border".
const (
	motifHintsProperty   = "_MOTIF_WM_HINTS"
	motifFlagDecorations = 0x2
	motifDecorAll        = 0x1
	motifDecorBorder     = 0x2
)

// Decorator applies a decoration action to a window. Best-effort: the
// window may no longer exist by the time the hint is applied.
type Decorator interface {
	Decorate(w Window, action policy.Action) error
}

// MotifDecorator sets _MOTIF_WM_HINTS on windows through xprop.
type MotifDecorator struct {
	run runner
}

// NewDecorator creates a decorator backed by the real xprop tool.
func NewDecorator() *MotifDecorator {
	return &MotifDecorator{run: execRunner{}}
}

// Decorate applies the action to the window. ActionNone is a no-op.
func (d *MotifDecorator) Decorate(w Window, action policy.Action) error {
	var decor uint32
	switch action {
	case policy.ActionBorderOnly:
		decor = motifDecorBorder
	case policy.ActionAll:
		decor = motifDecorAll
	default:
		return nil
	}

	hints := fmt.Sprintf("0x%x, 0x0, 0x%x, 0x0, 0x0", motifFlagDecorations, decor)
	_, err := d.run.Output(PropertyTool,
		"-id", fmt.Sprintf("0x%x", w.ID),
		"-f", motifHintsProperty, "32c",
		"-set", motifHintsProperty, hints)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrToolNotFound, PropertyTool)
		}
		return fmt.Errorf("set %s on 0x%x: %w", motifHintsProperty, w.ID, err)
	}
	return nil
}

package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrNoClipboard is returned when a pane has no clipboard configured.
var ErrNoClipboard = errors.New("no clipboard available")

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through the platform clipboard utilities
// (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("system clipboard unsupported on this platform")
	}
	return clipboard.WriteAll(text)
}

// OSC52Clipboard asks the terminal emulator to set the clipboard by writing an
// OSC 52 escape sequence. It works over SSH where no local utility exists.
//
// Writes happen outside Bubble Tea's renderer, from the goroutine running the
// copy command, so the sequence can land between the bytes of a frame being
// drawn. It is written with a single Write, which keeps the sequence itself
// intact but does not order it against the renderer's output.
type OSC52Clipboard struct {
	Out  io.Writer
	Tmux bool
}

// NewOSC52Clipboard writes to stderr and wraps the sequence for tmux when
// running inside it.
func NewOSC52Clipboard() OSC52Clipboard {
	return OSC52Clipboard{Out: os.Stderr, Tmux: os.Getenv("TMUX") != ""}
}

func (c OSC52Clipboard) WriteAll(text string) error {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

type fallbackClipboard struct {
	primary   Clipboard
	secondary Clipboard
}

// Fallback tries primary first and secondary when primary fails. Both errors
// are reported when neither succeeds.
func Fallback(primary, secondary Clipboard) Clipboard {
	return fallbackClipboard{primary: primary, secondary: secondary}
}

func (f fallbackClipboard) WriteAll(text string) error {
	var errs []error
	for _, cb := range []Clipboard{f.primary, f.secondary} {
		if cb == nil {
			continue
		}
		err := cb.WriteAll(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrNoClipboard
	}
	return errors.Join(errs...)
}

// DefaultClipboard prefers the system clipboard and falls back to OSC 52.
func DefaultClipboard() Clipboard {
	return Fallback(SystemClipboard{}, NewOSC52Clipboard())
}

// Package clipboard hands a selected command to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable reports that no clipboard backend could be found.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	WriteAll(text string) error
}

type system struct{}

// System returns the OS clipboard writer.
func System() Writer {
	return system{}
}

func (system) WriteAll(text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Deliver copies text through w unless printOnly is set. When copying is
// disabled or fails, text is printed to out instead. It reports whether the
// clipboard received the text.
func Deliver(w Writer, out io.Writer, text string, printOnly bool) (bool, error) {
	if !printOnly && w != nil {
		if err := w.WriteAll(text); err == nil {
			return true, nil
		}
	}
	if out == nil {
		return false, nil
	}
	if _, err := fmt.Fprintln(out, text); err != nil {
		return false, fmt.Errorf("print selection: %w", err)
	}
	return false, nil
}

// Available reports whether the platform has a clipboard backend at all.
func Available() bool {
	return !sysclip.Unsupported
}

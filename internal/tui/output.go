package tui

import (
	"fmt"
	"io"

	"github.com/wexinc/mixadd/internal/tui/styles"
)

// Info prints an informational line.
func Info(w io.Writer, msg string) {
	if w == nil {
		return
	}
	fmt.Fprintln(w, msg)
}

// Success prints a success line.
func Success(w io.Writer, msg string) {
	if w == nil {
		return
	}
	fmt.Fprintln(w, styles.SuccessTextStyle.Render("✓ "+msg))
}

// Warn prints a non-fatal error as a warning line.
func Warn(w io.Writer, err error) {
	if w == nil || err == nil {
		return
	}
	fmt.Fprintln(w, styles.WarningTextStyle.Render("⚠ warning: "+err.Error()))
}

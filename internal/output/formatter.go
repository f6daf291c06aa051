// Package output provides output formatting for OrarioDoc.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Format represents the output format type.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Formatter handles output formatting.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		Format:    FormatCLI,
		ColorMode: ColorAuto,
	}
}

// IsColorEnabled returns true if color output is enabled.
func (f *Formatter) IsColorEnabled() bool {
	switch f.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if w, ok := f.Writer.(*os.File); ok {
			return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
		}
		return false
	}
}

// Print outputs text.
func (f *Formatter) Print(a ...interface{}) {
	fmt.Fprint(f.Writer, a...)
}

// Println outputs text with newline.
func (f *Formatter) Println(a ...interface{}) {
	fmt.Fprintln(f.Writer, a...)
}

// Printf outputs formatted text.
func (f *Formatter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSON outputs data as indented JSON.
func (f *Formatter) JSON(v interface{}) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatMinutes formats a duration in minutes as a short human string.
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

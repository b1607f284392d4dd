package ux

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Palette holds the colors used by plain CLI output.
type Palette struct {
	Title   *color.Color
	Success *color.Color
	Warning *color.Color
	Error   *color.Color
	Muted   *color.Color
	Accent  *color.Color

	// Plain is set when colors are disabled
	Plain bool
}

// NewPalette returns the CLI colors. With noColor every color prints plain
// text; otherwise fatih/color decides from the terminal.
func NewPalette(noColor bool) *Palette {
	p := &Palette{
		Title:   color.New(color.FgCyan, color.Bold),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
		Error:   color.New(color.FgRed, color.Bold),
		Muted:   color.New(color.FgHiBlack),
		Accent:  color.New(color.FgMagenta),
		Plain:   noColor,
	}
	if noColor {
		for _, c := range []*color.Color{p.Title, p.Success, p.Warning, p.Error, p.Muted, p.Accent} {
			c.DisableColor()
		}
	}
	return p
}

// ColorWriter reports whether w is a terminal that should get colors.
func ColorWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ColorEnabled(f)
}

// ColorEnabled reports whether f is a terminal and NO_COLOR is unset.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

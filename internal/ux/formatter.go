package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format and output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// Formatter writes one command result.
type Formatter interface {
	Format(data interface{}) error
}

// TextWriter is implemented by reports with a human-readable rendering.
type TextWriter interface {
	WriteText(w io.Writer, p *Palette) error
}

// FormatterOptions configures NewFormatter.
type FormatterOptions struct {
	// Writer defaults to os.Stdout
	Writer io.Writer
	// NoColor strips colors from text output
	NoColor bool
}

// NewFormatter returns the formatter for format. An empty format is text.
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	o := FormatterOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Writer == nil {
		o.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return jsonFormatter{w: o.Writer}, nil
	case FormatYAML:
		return yamlFormatter{w: o.Writer}, nil
	case FormatText, "":
		return textFormatter{w: o.Writer, palette: NewPalette(o.NoColor)}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}

type jsonFormatter struct{ w io.Writer }

func (f jsonFormatter) Format(data interface{}) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

type yamlFormatter struct{ w io.Writer }

func (f yamlFormatter) Format(data interface{}) error {
	enc := yaml.NewEncoder(f.w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

// textFormatter prefers a TextWriter rendering. Values without one are
// printed as YAML, which reads well enough for flat structs.
type textFormatter struct {
	w       io.Writer
	palette *Palette
}

func (f textFormatter) Format(data interface{}) error {
	switch v := data.(type) {
	case TextWriter:
		return v.WriteText(f.w, f.palette)
	case string:
		_, err := fmt.Fprintln(f.w, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.w, v.String())
		return err
	default:
		return yamlFormatter{w: f.w}.Format(data)
	}
}

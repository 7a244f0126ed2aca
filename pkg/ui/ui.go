// Package ui renders the human-facing lines of a merge invocation.
// It supports terminal (coloured), text (plain), and JSON output formats.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConsoleSink writes success lines to out and failure lines to errOut
type ConsoleSink struct {
	out     io.Writer
	errOut  io.Writer
	format  Format
	success lipgloss.Style
	failure lipgloss.Style
}

// NewSink creates a console sink for the given format. FormatAuto is
// resolved against out: terminals get colour, anything else plain text.
func NewSink(format Format, out, errOut io.Writer) (*ConsoleSink, error) {
	if format == FormatAuto {
		format = FormatText
		if file, ok := out.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal, FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}

	sink := &ConsoleSink{out: out, errOut: errOut, format: format}
	if format == FormatTerminal {
		renderer := lipgloss.NewRenderer(out)
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI256)
		}
		sink.success = renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"})
		sink.failure = renderer.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"})
	}
	return sink, nil
}

// Format returns the resolved output format
func (s *ConsoleSink) Format() Format {
	return s.format
}

func (s *ConsoleSink) Success(line string) {
	s.emit(s.out, "success", line, s.success)
}

func (s *ConsoleSink) Failure(line string) {
	s.emit(s.errOut, "error", line, s.failure)
}

type jsonLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func (s *ConsoleSink) emit(w io.Writer, level, line string, style lipgloss.Style) {
	switch s.format {
	case FormatJSON:
		_ = json.NewEncoder(w).Encode(jsonLine{Level: level, Message: line})
	case FormatTerminal:
		fmt.Fprintln(w, style.Render(line))
	default:
		fmt.Fprintln(w, line)
	}
}

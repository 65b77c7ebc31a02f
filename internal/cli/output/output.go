// Package output renders command results for terminals, pipes, and
// machine consumers. Auto mode picks styled text on a TTY and markdown
// otherwise, so piped output stays script- and agent-friendly.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// ValidModes lists the accepted --output values.
var ValidModes = []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Renderer writes formatted output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer. An empty or unknown mode falls back
// to auto detection.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// EffectiveMode resolves ModeAuto: text when stdout is a terminal,
// markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the underlying output writer, for encoders that need
// direct access.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error stream writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// styled reports whether ANSI styling should be applied.
func (r *Renderer) styled() bool {
	if r.EffectiveMode() != ModeText {
		return false
	}
	f, ok := r.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// Header prints a section header: styled bold in text mode, a markdown
// heading otherwise.
func (r *Renderer) Header(level int, text string) {
	if r.styled() {
		r.Println(headerStyle.Render(text))
		return
	}
	if r.EffectiveMode() == ModeText {
		r.Println(text)
		return
	}
	r.Println(FormatHeader(level, text))
}

// KeyValue prints a labeled value.
func (r *Renderer) KeyValue(key, value string) {
	if r.styled() {
		r.Println(keyStyle.Render(key+":") + " " + value)
		return
	}
	if r.EffectiveMode() == ModeText {
		r.Println(key + ": " + value)
		return
	}
	r.Println(FormatKeyValue(key, value))
}

// StatusLine prints a name with a pass/warn/fail marker and optional
// detail, for check-style commands.
func (r *Renderer) StatusLine(name, status, detail string) {
	marker := statusMarker(status)
	if r.styled() {
		marker = styleForStatus(status).Render(marker)
	}
	line := marker + " " + name
	if detail != "" {
		line += ": " + detail
	}
	r.Println(line)
}

// Success prints a green confirmation line.
func (r *Renderer) Success(msg string) {
	if r.styled() {
		r.Println(successStyle.Render("✓ " + msg))
		return
	}
	r.Println("✓ " + msg)
}

func statusMarker(status string) string {
	switch status {
	case "success", "ok":
		return "✓"
	case "warning":
		return "!"
	default:
		return "✗"
	}
}

func styleForStatus(status string) lipgloss.Style {
	switch status {
	case "success", "ok":
		return successStyle
	case "warning":
		return warnStyle
	default:
		return errorStyle
	}
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"earl/internal/model"
)

// console prints user-facing messages. Styles follow the writer's color
// support, so piped output stays plain.
type console struct {
	out, err io.Writer
	r        *lipgloss.Renderer

	errorStyle lipgloss.Style
	warnStyle  lipgloss.Style
	okStyle    lipgloss.Style
	dimStyle   lipgloss.Style
	pinStyle   lipgloss.Style
}

func newConsole(out, errOut io.Writer) *console {
	r := lipgloss.NewRenderer(out)
	return &console{
		out:        out,
		err:        errOut,
		r:          r,
		errorStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warnStyle:  r.NewStyle().Foreground(lipgloss.Color("11")),
		okStyle:    r.NewStyle().Foreground(lipgloss.Color("10")),
		dimStyle:   r.NewStyle().Foreground(lipgloss.Color("240")),
		pinStyle:   r.NewStyle().Foreground(lipgloss.Color("208")), // Orange
	}
}

func (c *console) Error(msg string) {
	fmt.Fprintf(c.err, "%s %s\n", c.errorStyle.Render("Error:"), msg)
}

func (c *console) Warn(msg string) {
	fmt.Fprintln(c.err, c.warnStyle.Render(msg))
}

func (c *console) Warning(msg string) {
	fmt.Fprintf(c.err, "%s %s\n", c.warnStyle.Render("Warning:"), msg)
}

// Success prints a green label followed by msg.
func (c *console) Success(label, msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.okStyle.Render(label), msg)
}

// Item prints an indented list entry.
func (c *console) Item(icon, msg string) {
	fmt.Fprintf(c.out, "  %s %s\n", c.dimStyle.Render(icon), msg)
}

// Skipped reports an ignored entry on the error stream.
func (c *console) Skipped(msg string) {
	fmt.Fprintf(c.err, "  %s %s\n", c.warnStyle.Render(model.IconSkipped), msg)
}

func (c *console) Pinned(msg string) string {
	return msg + " " + c.pinStyle.Render("(pinned)")
}

func (c *console) Prompt(msg string) {
	fmt.Fprint(c.out, msg)
}

// newLogger builds the diagnostics logger: warnings and above on w,
// debug with --verbose.
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "earl",
	})
}

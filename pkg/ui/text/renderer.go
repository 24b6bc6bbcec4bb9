// Package text renders the human-readable violation report
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/check-commits/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Report lines
const (
	MsgAllValid        = "✅ All submitted email addresses meet the requirements"
	MsgViolationsFound = "❌ %d violating email address(es) detected:"
	MsgViolationItem   = "  %s %s"
)

// Renderer writes the text report
type Renderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
}

// New creates a text renderer. Styling is applied only when color is set.
func New(output io.Writer, color bool) *Renderer {
	r := &Renderer{output: output}
	if color {
		r.renderer = lipgloss.NewRenderer(output)
		r.renderer.SetColorProfile(termenv.ANSI256)
		r.renderer.SetHasDarkBackground(true)
	}
	return r
}

// RenderViolations writes the success line or the numbered violation list
func (r *Renderer) RenderViolations(violations []string) error {
	if len(violations) == 0 {
		_, err := fmt.Fprintln(r.output, r.style("Success", MsgAllValid))
		return err
	}

	header := fmt.Sprintf(MsgViolationsFound, len(violations))
	if _, err := fmt.Fprintln(r.output, r.style("Error", header)); err != nil {
		return err
	}

	for i, email := range violations {
		index := r.style("Index", fmt.Sprintf("%d.", i+1))
		if _, err := fmt.Fprintf(r.output, MsgViolationItem+"\n", index, r.style("Email", email)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) style(name, s string) string {
	if r.renderer == nil {
		return s
	}
	return styles.GetStyle(name).Renderer(r.renderer).Render(s)
}

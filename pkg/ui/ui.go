// Package ui renders the violation report in the supported output formats.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/check-commits/pkg/ui/github"
	"github.com/arthur-debert/check-commits/pkg/ui/text"
)

// Renderer is the common interface for all report renderers
type Renderer interface {
	// RenderViolations writes the report for a sorted violation list
	RenderViolations(violations []string) error
}

// Options tunes the renderers
type Options struct {
	// Color enables lipgloss styling of the text report
	Color bool
	// Bullet prefixes each entry of the github report
	Bullet string
	// Separator joins the entries of the github report
	Separator string
}

// NewRenderer creates a new renderer based on the specified format
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatText:
		return text.New(output, opts.Color), nil
	case FormatGitHub:
		return github.New(output, opts.Bullet, opts.Separator), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

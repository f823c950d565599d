// Package output renders resolution reports.
package output

import (
	"io"

	"github.com/jokarl/gitunjam/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render writes the complete report to the writer
	Render(w io.Writer, report *types.Report) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatYAML:
		return &YAMLRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}

// ValidFormats returns all valid format names
func ValidFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// IsValidFormat checks if a format name is valid
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

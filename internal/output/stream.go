package output

import (
	"io"

	"github.com/jokarl/gitunjam/internal/types"
)

// Stream writes resolver progress to w. Text output is written step by step
// as it happens; structured formats are rendered once, when the run finishes.
type Stream struct {
	w        io.Writer
	text     *TextRenderer
	renderer Renderer
	err      error
}

// NewStream creates a Stream for the given format
func NewStream(w io.Writer, format Format, colorEnabled bool) *Stream {
	s := &Stream{w: w}
	renderer := NewRenderer(format, colorEnabled)
	if text, ok := renderer.(*TextRenderer); ok {
		s.text = text
	} else {
		s.renderer = renderer
	}
	return s
}

// Start writes the transcript header
func (s *Stream) Start(report *types.Report) {
	if s.text != nil {
		s.text.renderHeader(s.w, report)
	}
}

// Lock writes one lock removal line
func (s *Stream) Lock(removal *types.LockRemoval) {
	if s.text != nil {
		s.text.renderLock(s.w, removal)
	}
}

// Command writes one command result
func (s *Stream) Command(result *types.CommandResult) {
	if s.text != nil {
		s.text.renderCommand(s.w, result)
	}
}

// Finish writes the footer, or the whole report for structured formats
func (s *Stream) Finish(report *types.Report) {
	if s.text != nil {
		s.text.renderFooter(s.w, report)
		return
	}
	s.err = s.renderer.Render(s.w, report)
}

// Err returns the error from rendering a structured report, if any
func (s *Stream) Err() error {
	return s.err
}

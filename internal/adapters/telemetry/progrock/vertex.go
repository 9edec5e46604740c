package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/press/internal/core/ports"
)

var _ ports.Span = (*Span)(nil)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write forwards page output to the vertex stdout stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError marks the span as failed. The error surfaces when the span
// ends.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetAttribute records a key-value pair. A true press.cached attribute marks
// the vertex as a cache hit; everything else goes to the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	if key == "press.cached" {
		if hit, ok := value.(bool); ok && hit {
			s.vertex.Cached()
		}
		return
	}
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End completes the vertex, reporting any recorded error.
func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vertex.Done(s.err)
}

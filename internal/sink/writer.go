// Package sink renders book.Response pairs to an output stream in the
// format spec.md §6 defines: primary line (if any), then secondary line
// (if any), one line per response.
package sink

import (
	"bufio"
	"io"

	"bookengine/internal/book"
)

// Writer buffers rendered response lines before flushing to the
// underlying stream, grounded on the teacher's String()-returning render
// methods (internal/common/order.go, internal/common/trade.go) but
// restyled as a single streaming writer rather than ad hoc fmt.Sprintf
// calls at each call site.
type Writer struct {
	w *bufio.Writer
}

// New wraps w for buffered line writing. Callers must call Flush when
// done.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits the primary line (if any) then the secondary line (if any).
// A Flush action, which has neither, produces no output, per spec.md §6.
func (s *Writer) Write(primary, secondary *book.Response) error {
	if primary != nil {
		if _, err := s.w.WriteString(primary.String()); err != nil {
			return err
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if secondary != nil {
		if _, err := s.w.WriteString(secondary.String()); err != nil {
			return err
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush pushes any buffered output to the underlying writer.
func (s *Writer) Flush() error {
	return s.w.Flush()
}

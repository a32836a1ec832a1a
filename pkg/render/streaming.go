package render

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// DefaultFlushThreshold is the byte count a Streamer accumulates before
// flushing to the client.
const DefaultFlushThreshold = 2048

// Streamer renders documents to a writer with incremental flushing for
// faster time-to-first-byte. It rides the dom fragment sink: every
// serialized fragment is counted, and once Threshold bytes have
// accumulated the underlying writer is flushed.
type Streamer struct {
	// Threshold is the number of pending bytes that triggers a flush.
	// Zero means DefaultFlushThreshold.
	Threshold int

	w       io.Writer
	flusher http.Flusher
	pending int
}

// NewStreamer creates a streamer writing to w. If w implements
// http.Flusher, content is flushed as it accumulates; otherwise the
// streamer degrades to plain writing.
func NewStreamer(w io.Writer) *Streamer {
	flusher, _ := w.(http.Flusher)
	return &Streamer{w: w, flusher: flusher}
}

// Render serializes n to the underlying writer, flushing along the way
// and once more at the end.
func (s *Streamer) Render(n dom.Node) error {
	w := dom.NewWriter(s.w, s.observe)
	if err := n.WriteMarkup(w); err != nil {
		return err
	}
	s.flush()
	return nil
}

func (s *Streamer) observe(fragment string) {
	s.pending += len(fragment)
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultFlushThreshold
	}
	if s.pending >= threshold {
		s.flush()
	}
}

func (s *Streamer) flush() {
	s.pending = 0
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// Handler serves documents built per request. The build result is
// streamed with Content-Type text/html; a nil result becomes 404. Errors
// surfacing after the stream has started cannot change the status line
// anymore, so they are logged and the connection is left to the client.
func Handler(build func(r *http.Request) dom.Node) http.Handler {
	log := slog.Default().With("component", "render")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc := build(r)
		if doc == nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := NewStreamer(w).Render(doc); err != nil {
			log.Error("render failed mid-stream",
				"path", r.URL.Path,
				"error", err,
			)
		}
	})
}

// FlushableWriter wraps an io.Writer with flush counting. It is useful
// for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}

// Package response sends dump output over HTTP.
package response

import (
	"io"
	"net/http"

	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/logging"
)

// DefaultContentType is set when no Content-Type header is given
const DefaultContentType = "text/html; charset=utf-8"

// Response is a dump body together with its status and headers
type Response struct {
	Content    string
	StatusCode int
	Headers    http.Header
}

// Option configures a Response
type Option func(*Response)

// WithStatus sets the status code
func WithStatus(code int) Option {
	return func(r *Response) {
		r.StatusCode = code
	}
}

// WithHeader adds a header value, replacing the default Content-Type when
// that is the header given
func WithHeader(name, value string) Option {
	return func(r *Response) {
		if http.CanonicalHeaderKey(name) == "Content-Type" {
			r.Headers.Del(name)
		}
		r.Headers.Add(name, value)
	}
}

// New creates a 200 text/html response
func New(content string, opts ...Option) *Response {
	r := &Response{
		Content:    content,
		StatusCode: http.StatusOK,
		Headers:    http.Header{"Content-Type": {DefaultContentType}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// headerTracker is implemented by writers that know whether the status line
// and headers already went out
type headerTracker interface {
	Written() bool
}

// headersSent looks for a headerTracker through the chain of wrapped writers.
// Writers without one are assumed untouched.
func headersSent(w http.ResponseWriter) bool {
	for w != nil {
		if t, ok := w.(headerTracker); ok {
			return t.Written()
		}
		u, ok := w.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			return false
		}
		w = u.Unwrap()
	}
	return false
}

// Send writes the headers and status, unless w reports they were already
// sent, followed by the preformatted body.
func (r *Response) Send(w http.ResponseWriter) error {
	logger := logging.GetLogger("response")

	if headersSent(w) {
		logger.Debug().Msg("Headers already sent, writing body only")
	} else {
		for name, values := range r.Headers {
			for _, v := range values {
				w.Header().Add(name, v)
			}
		}
		w.WriteHeader(r.StatusCode)
	}

	if _, err := r.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrResponse, "failed to write response body")
	}
	return nil
}

// WriteTo writes the body wrapped in <pre> tags
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "<pre>"+r.Content+"</pre>")
	return int64(n), err
}

// TrackingWriter records whether the headers of the wrapped writer were
// written, so several responses can share one request.
type TrackingWriter struct {
	http.ResponseWriter
	written bool
}

// NewTrackingWriter wraps w
func NewTrackingWriter(w http.ResponseWriter) *TrackingWriter {
	if tw, ok := w.(*TrackingWriter); ok {
		return tw
	}
	return &TrackingWriter{ResponseWriter: w}
}

// WriteHeader forwards the status and marks the headers as sent
func (t *TrackingWriter) WriteHeader(code int) {
	t.written = true
	t.ResponseWriter.WriteHeader(code)
}

// Write marks the headers as sent, as the first write implies a 200
func (t *TrackingWriter) Write(p []byte) (int, error) {
	t.written = true
	return t.ResponseWriter.Write(p)
}

// Written reports whether the headers went out
func (t *TrackingWriter) Written() bool {
	return t.written
}

// Unwrap returns the wrapped writer, for http.ResponseController
func (t *TrackingWriter) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}

// Track wraps the writer of every request in a TrackingWriter, so handlers
// below it can send several responses on one request.
func Track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewTrackingWriter(w), r)
	})
}

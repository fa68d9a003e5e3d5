// Package insight is the caller-facing entry point for dumping values.
//
//	insight.Fdump(os.Stdout, cfg, err)
//	html := insight.Sdump(user)
//	insight.Respond(w, r.URL.Query())
//
// Every dump is tagged with the file and line it was requested from and the
// time elapsed since the process started.
package insight

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/logging"
	"github.com/arthur-debert/insightdump/pkg/render"
	"github.com/arthur-debert/insightdump/pkg/response"
	"github.com/arthur-debert/insightdump/pkg/sourcemeta"
)

// Placeholder is dumped when no values are given
const Placeholder = "🫣"

var (
	start = time.Now()

	mu      sync.RWMutex
	current = dumper.New(render.Default())
)

// SetEngine replaces the engine used by the package-level functions
func SetEngine(engine *render.Engine, opts ...dumper.Option) {
	mu.Lock()
	defer mu.Unlock()
	current = dumper.New(engine, opts...)
}

func active() *dumper.Dumper {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// sdump dumps vars as seen from the caller skip frames above it
func sdump(skip int, vars []any) string {
	meta := dumper.Meta{
		Source:  sourcemeta.Capture(skip + 1),
		Elapsed: time.Since(start),
	}

	d := active()
	if len(vars) == 0 {
		return d.Dump(Placeholder, meta)
	}

	var b strings.Builder
	for _, v := range vars {
		b.WriteString(d.Dump(v, meta))
	}
	return b.String()
}

// Sdump returns the dump of each value, one wrapper per value
func Sdump(vars ...any) string {
	return sdump(1, vars)
}

// Fdump writes the dump of each value to w
func Fdump(w io.Writer, vars ...any) error {
	if _, err := io.WriteString(w, sdump(1, vars)); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write dump")
	}
	return nil
}

// Respond sends the dump of each value as an HTML response. A plain writer
// cannot tell whether its headers went out, so handlers calling Respond more
// than once per request run under response.Track or pass a
// response.TrackingWriter.
func Respond(w http.ResponseWriter, vars ...any) error {
	return response.New(sdump(1, vars)).Send(w)
}

// Pp dumps and passes through: with several values it returns them
// unchanged, otherwise it returns the dump string.
func Pp(vars ...any) any {
	dump := sdump(1, vars)
	if len(vars) > 1 {
		return vars
	}
	return dump
}

// Handler answers every request with the dump of what fn returns
func Handler(fn func(*http.Request) any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := active()
		out := d.Dump(fn(r), dumper.Meta{
			Source:  sourcemeta.Meta{Function: r.Method + " " + r.URL.Path},
			Elapsed: time.Since(start),
		})
		if err := response.New(out).Send(w); err != nil {
			logger := logging.GetLogger("insight")
			logger.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to send dump")
		}
	})
}

package render

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"reflect"
	"strings"

	"github.com/arthur-debert/insightdump/pkg/markup"
	"github.com/davecgh/go-spew/spew"
)

// Handle is implemented by values standing for an external resource
type Handle interface {
	HandleKind() string
}

// StreamHandle is a Handle that can describe the stream behind it. ok is
// false when the stream can no longer be introspected (e.g. it was closed).
type StreamHandle interface {
	Handle
	StreamMeta() (meta StreamMeta, ok bool)
}

// StreamMeta describes an open stream
type StreamMeta struct {
	URI        string
	Mode       string
	Blocked    bool
	Seekable   bool
	StreamType string
	Crypto     *CryptoInfo
}

// CryptoInfo describes the secure transport of an encrypted stream
type CryptoInfo struct {
	Protocol      string
	CipherName    string
	CipherBits    int
	CipherVersion string
}

const (
	kindStream = "stream"
	kindChan   = "chan"

	notApplicable = "N/A"
	notAResource  = "Not a resource"
)

var cryptoDumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// FormatHandle renders v as an external handle using the default engine
func FormatHandle(v any, indentLevel int) string {
	return defaultEngine.FormatHandle(v, indentLevel)
}

// FormatHandle renders v as an external handle. Values that are not handles
// render a fallback line instead; it never panics.
func (e *Engine) FormatHandle(v any, indentLevel int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			e.log().Warn().Interface("panic", r).Msg("Recovered while formatting handle")
			out = markup.Wrap(ClassResource, notAResource)
		}
	}()

	s := &state{engine: e, visited: NewRegistry()}
	return s.handle(reflect.ValueOf(v), indentLevel)
}

func (s *state) handle(v reflect.Value, indentLevel int) string {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() || !v.CanInterface() {
		return markup.Wrap(ClassResource, notAResource)
	}

	kind, meta, ok := describeHandle(v)
	if !ok || kind == "" {
		if isRecord(v) || isHandle(v) {
			return markup.Wrap(ClassResource, "Object of class "+s.text(v.Type().String()))
		}
		return markup.Wrap(ClassResource, notAResource)
	}

	indent := s.indent(indentLevel)
	var b strings.Builder
	fmt.Fprintf(&b, "Resource:%s {\n", s.text(kind))

	if meta != nil {
		inner := s.indent(indentLevel + 1)
		uri := meta.URI
		if uri == "" {
			uri = notApplicable
		}

		lines := []string{
			inner + "uri: " + s.text(uri),
			inner + "mode: " + s.text(meta.Mode),
			inner + "blocked: " + s.boolean(meta.Blocked),
			inner + "seekable: " + s.boolean(meta.Seekable),
		}
		if meta.Crypto != nil {
			lines = append(lines, inner+"crypto: "+s.text(exportCrypto(*meta.Crypto, inner)))
		}
		b.WriteString(strings.Join(lines, ",\n"))
		b.WriteString("\n")
	}

	b.WriteString(indent)
	b.WriteString("}")
	return markup.Wrap(ClassResource, b.String())
}

// describeHandle returns the kind of the handle and, for streams, its
// metadata. ok is false when v is not a handle or cannot be introspected.
func describeHandle(v reflect.Value) (kind string, meta *StreamMeta, ok bool) {
	x := v.Interface()

	switch h := x.(type) {
	case StreamHandle:
		m, ok := h.StreamMeta()
		if !ok {
			return "", nil, false
		}
		return h.HandleKind(), &m, true
	case Handle:
		return h.HandleKind(), nil, true
	case *os.File:
		m, ok := fileMeta(h)
		if !ok {
			return "", nil, false
		}
		return kindStream, &m, true
	case net.Conn:
		m, ok := connMeta(h)
		if !ok {
			return "", nil, false
		}
		return kindStream, &m, true
	}

	if v.Kind() == reflect.Chan {
		return kindChan, nil, true
	}
	return "", nil, false
}

func connMeta(c net.Conn) (StreamMeta, bool) {
	if c == nil {
		return StreamMeta{}, false
	}

	meta := StreamMeta{Mode: "r+", Blocked: true}
	network := ""
	if addr := c.RemoteAddr(); addr != nil {
		network = addr.Network()
		meta.URI = network + "://" + addr.String()
	}
	meta.StreamType = socketType(network)

	if tc, ok := c.(*tls.Conn); ok {
		meta.StreamType += "/ssl"
		if cs := tc.ConnectionState(); cs.HandshakeComplete {
			meta.Crypto = &CryptoInfo{
				Protocol:      tls.VersionName(cs.Version),
				CipherName:    tls.CipherSuiteName(cs.CipherSuite),
				CipherBits:    cipherBits(tls.CipherSuiteName(cs.CipherSuite)),
				CipherVersion: tls.VersionName(cs.Version),
			}
		}
	}
	return meta, true
}

func socketType(network string) string {
	switch {
	case network == "":
		return "socket"
	case strings.HasPrefix(network, "tcp"):
		return "tcp_socket"
	case strings.HasPrefix(network, "udp"):
		return "udp_socket"
	case strings.HasPrefix(network, "unix"):
		return "unix_socket"
	default:
		return network + "_socket"
	}
}

// cipherBits reads the key size off a cipher suite name
func cipherBits(suite string) int {
	switch {
	case strings.Contains(suite, "AES_128"):
		return 128
	case strings.Contains(suite, "AES_256"), strings.Contains(suite, "CHACHA20"):
		return 256
	case strings.Contains(suite, "3DES"):
		return 168
	}
	return 0
}

// exportCrypto dumps the crypto info as a Go-syntax structure, indenting
// continuation lines to the surrounding field.
func exportCrypto(info CryptoInfo, inner string) string {
	dump := strings.TrimRight(cryptoDumper.Sdump(info), "\n")
	return strings.ReplaceAll(dump, "\n", "\n"+inner)
}

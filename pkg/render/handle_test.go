package render_test

import (
	"net"
	"os"
	"runtime"
	"testing"

	"github.com/arthur-debert/insightdump/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	open bool
}

func (fakeStream) HandleKind() string { return "stream" }

func (f fakeStream) StreamMeta() (render.StreamMeta, bool) {
	if !f.open {
		return render.StreamMeta{}, false
	}
	return render.StreamMeta{
		Mode:       "rb",
		Blocked:    true,
		StreamType: "tcp_socket/ssl",
		Crypto: &render.CryptoInfo{
			Protocol:      "TLS 1.3",
			CipherName:    "TLS_AES_128_GCM_SHA256",
			CipherBits:    128,
			CipherVersion: "TLS 1.3",
		},
	}, true
}

type timer struct{}

func (timer) HandleKind() string { return "timer" }

func TestFormatHandleFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("descriptor flags are unix only")
	}

	f, err := os.CreateTemp(t.TempDir(), "handle-*.txt")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	expected := `<span class="insight-dump-resource">Resource:stream {` + "\n" +
		"  uri: " + f.Name() + ",\n" +
		"  mode: r+,\n" +
		"  blocked: " + trueHTML + ",\n" +
		"  seekable: " + trueHTML + "\n" +
		"}</span>"
	assert.Equal(t, expected, render.FormatHandle(f, 0))
	assert.Equal(t, expected, newEngine().Render(f))
}

func TestFormatHandleClosedFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "closed-*.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t,
		`<span class="insight-dump-resource">Object of class *os.File</span>`,
		render.FormatHandle(f, 0))
}

func TestFormatHandleFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: `<span class="insight-dump-resource">Not a resource</span>`},
		{name: "int", input: 42, expected: `<span class="insight-dump-resource">Not a resource</span>`},
		{name: "record", input: point{}, expected: `<span class="insight-dump-resource">Object of class render_test.point</span>`},
		{name: "closed stream", input: fakeStream{}, expected: `<span class="insight-dump-resource">Object of class render_test.fakeStream</span>`},
		{name: "kind without metadata", input: timer{}, expected: `<span class="insight-dump-resource">Resource:timer {` + "\n}</span>"},
		{name: "channel", input: make(chan int), expected: `<span class="insight-dump-resource">Resource:chan {` + "\n}</span>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render.FormatHandle(tt.input, 0))
		})
	}
}

func TestFormatHandleCrypto(t *testing.T) {
	out := render.FormatHandle(fakeStream{open: true}, 1)

	assert.Contains(t, out, "    uri: N/A,\n")
	assert.Contains(t, out, "    mode: rb,\n")
	assert.Contains(t, out, "    seekable: "+falseHTML+",\n")
	assert.Contains(t, out, "    crypto: (render.CryptoInfo) {\n")
	assert.Contains(t, out, `Protocol: (string) (len=7) "TLS 1.3"`)
	assert.Contains(t, out, "CipherBits: (int) 128")
	assert.Contains(t, out, "\n  }</span>")
}

func TestFormatHandleConn(t *testing.T) {
	client, server := net.Pipe()
	defer func() { _ = client.Close() }()
	defer func() { _ = server.Close() }()

	out := render.FormatHandle(client, 0)

	assert.Contains(t, out, "Resource:stream {\n")
	assert.Contains(t, out, "  uri: pipe://pipe,\n")
	assert.Contains(t, out, "  mode: r+,\n")
	assert.Contains(t, out, "  blocked: "+trueHTML+",\n")
	assert.Contains(t, out, "  seekable: "+falseHTML+"\n")
}

func TestRenderHandleInCollection(t *testing.T) {
	out := newEngine().Render(map[string]any{"t": timer{}})

	assert.Contains(t, out, `'`+str("t")+`' => <span class="insight-dump-resource">Resource:timer {`+"\n  }</span>")
}

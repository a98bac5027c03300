package fileio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want Compression
		err  bool
	}{
		{"", CompressionAuto, false},
		{"AUTO", CompressionAuto, false},
		{"none", CompressionNone, false},
		{"gz", CompressionGzip, false},
		{"zstd", CompressionZstd, false},
		{"lz4", CompressionAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.in)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		if tt.in != "" && tt.in != "gz" {
			assert.Equal(t, strings.ToLower(tt.in), got.String())
		}
	}
}

func TestFromExtension(t *testing.T) {
	assert.Equal(t, CompressionGzip, FromExtension("out.utf16.GZ"))
	assert.Equal(t, CompressionZstd, FromExtension("/tmp/a.zst"))
	assert.Equal(t, CompressionNone, FromExtension("plain.txt"))
	assert.Equal(t, CompressionNone, FromExtension(Stdio))
}

// TestRoundTrip writes through every compressor and reads back with
// detection.
func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("Съешь же ещё этих мягких булок 😀\n"), 200)
	dir := t.TempDir()

	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			path := filepath.Join(dir, "data-"+c.String())
			w, err := CreateOutput(path, nil, c)
			require.NoError(t, err)
			cw := &CountingWriter{W: w}
			_, err = cw.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())
			assert.Equal(t, int64(len(payload)), cw.N)

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, c, Sniff(raw))

			r, err := OpenInput(path, nil, CompressionAuto)
			require.NoError(t, err)
			cr := &CountingReader{R: r}
			got, err := io.ReadAll(cr)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, payload, got)
			assert.Equal(t, int64(len(payload)), cr.N)
		})
	}
}

func TestCreateOutputUsesExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gz")
	w, err := CreateOutput(path, nil, CompressionAuto)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, CompressionGzip, Sniff(raw))
}

func TestNewReaderShortInput(t *testing.T) {
	for _, in := range []string{"", "a", "\x1f"} {
		r, err := NewReader(strings.NewReader(in), CompressionAuto)
		require.NoError(t, err)
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, in, string(got))
	}
}

func TestOpenInputErrors(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "missing"), nil, CompressionAuto)
	assert.ErrorContains(t, err, "cannot open input")

	path := filepath.Join(t.TempDir(), "notgzip")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))
	_, err = OpenInput(path, nil, CompressionGzip)
	assert.ErrorContains(t, err, "cannot read input")
}

func TestStdioStreams(t *testing.T) {
	var compressed bytes.Buffer
	zw, err := NewWriter(&compressed, CompressionGzip)
	require.NoError(t, err)
	_, err = zw.Write([]byte("from stdin"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r, err := OpenInput(Stdio, &compressed, CompressionAuto)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "from stdin", string(data))

	var stdout bytes.Buffer
	w, err := CreateOutput(Stdio, &stdout, CompressionAuto)
	require.NoError(t, err)
	_, err = w.Write([]byte("to stdout"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "to stdout", stdout.String())
}

func TestParseCompressionErrorCarriesStack(t *testing.T) {
	_, err := ParseCompression("lz4")
	require.Error(t, err)
	assert.Implements(t, (*interface{ StackTrace() errors.StackTrace })(nil), err)
}

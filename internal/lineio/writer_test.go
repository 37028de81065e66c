// internal/lineio/writer_test.go
package lineio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wormod-core/wordlist"
)

func TestWriteAllToFallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAll("-", &buf, false, wordlist.List{"a", "", "b"}))
	assert.Equal(t, "a\n\nb\n", buf.String())
}

func TestWriteAllEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAll("-", &buf, false, nil))
	assert.Zero(t, buf.Len())
}

func TestWriteAllTruncatesByDefault(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteAll(p, nil, false, wordlist.List{"old", "words"}))
	require.NoError(t, WriteAll(p, nil, false, wordlist.List{"new"}))
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteAllAppendMode(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteAll(p, nil, false, wordlist.List{"one"}))
	require.NoError(t, WriteAll(p, nil, true, wordlist.List{"two"}))
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestWriteAllRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	in := wordlist.List{"alpha", "", "beta"}
	require.NoError(t, WriteAll(p, nil, false, in))
	got, err := ReadAll(p, nil)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

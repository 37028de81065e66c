// internal/lineio/reader_test.go
package lineio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wormod-core/wordlist"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestReadAllStripsTerminators(t *testing.T) {
	p := writeFile(t, "in.txt", "alpha\nbeta\r\ngamma\n")
	words, err := ReadAll(p, nil)
	require.NoError(t, err)
	assert.Equal(t, wordlist.List{"alpha", "beta", "gamma"}, words)
}

func TestReadAllKeepsBlankLines(t *testing.T) {
	p := writeFile(t, "in.txt", "a\n\nb\n\n")
	words, err := ReadAll(p, nil)
	require.NoError(t, err)
	assert.Equal(t, wordlist.List{"a", "", "b", ""}, words)
}

func TestReadAllNoTrailingNewline(t *testing.T) {
	p := writeFile(t, "in.txt", "a\nb")
	words, err := ReadAll(p, nil)
	require.NoError(t, err)
	assert.Equal(t, wordlist.List{"a", "b"}, words)
}

func TestReadAllEmptyFile(t *testing.T) {
	p := writeFile(t, "in.txt", "")
	words, err := ReadAll(p, nil)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestReadAllFromFallbackReader(t *testing.T) {
	words, err := ReadAll("-", strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	assert.Equal(t, wordlist.List{"x", "y"}, words)
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input wordlist")
}

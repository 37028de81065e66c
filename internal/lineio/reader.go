// internal/lineio/reader.go
package lineio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"wormod-core/wordlist"
)

// maxLineBytes bounds a single input line. Wordlist entries are short; 1 MiB
// leaves generous headroom without letting one malformed line eat the heap.
const maxLineBytes = 1 << 20

// ReadAll loads the whole wordlist from path ("-" = stdin), one word per
// line. Line terminators (\n and \r\n) are stripped. Blank lines become
// empty-string words and are kept: downstream operations must see the file
// exactly as ordered.
func ReadAll(path string, stdin io.Reader) (wordlist.List, error) {
	if path == "-" || path == "" {
		return readLines(stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input wordlist")
	}
	defer func() { _ = fh.Close() }()
	return readLines(fh)
}

func readLines(r io.Reader) (wordlist.List, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	var words wordlist.List
	for sc.Scan() {
		words = append(words, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input wordlist")
	}
	return words, nil
}

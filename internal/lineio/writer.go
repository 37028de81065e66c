// internal/lineio/writer.go
package lineio

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"wormod-core/wordlist"
)

// WriteAll writes the wordlist, one word per line with a single \n
// terminator, to path. "-" selects the fallback writer (stdout). appendMode
// opens the file with O_APPEND instead of truncating.
func WriteAll(path string, stdout io.Writer, appendMode bool, words wordlist.List) error {
	if path == "-" || path == "" {
		return writeLines(stdout, words)
	}
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	fh, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.Wrap(err, "open output wordlist")
	}
	if err := writeLines(fh, words); err != nil {
		_ = fh.Close()
		return err
	}
	return errors.Wrap(fh.Close(), "close output wordlist")
}

func writeLines(w io.Writer, words wordlist.List) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return errors.Wrap(err, "write output wordlist")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "write output wordlist")
		}
	}
	return errors.Wrap(bw.Flush(), "flush output wordlist")
}

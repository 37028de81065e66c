// internal/lineio/path.go
package lineio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// CheckInput validates the input path before anything is read: it must exist
// and not be a directory, and with noFollow set it may not contain symlink
// components. The returned size feeds the memory guard. Stdin ("-") always
// passes with size 0.
func CheckInput(path string, noFollow bool) (int64, error) {
	if path == "-" || path == "" {
		return 0, nil
	}
	if noFollow {
		if err := rejectSymlinks(path); err != nil {
			return 0, err
		}
	}
	fi, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrap(err, "input wordlist")
	}
	if fi.IsDir() {
		return 0, errors.Errorf("input path is a directory: %s", path)
	}
	return fi.Size(), nil
}

// CheckOutput validates the output path before anything is written: it may
// not be a directory, with noFollow set it may not contain symlink
// components, and it may not resolve to the same file as the input.
func CheckOutput(path, input string, noFollow bool) error {
	if path == "-" || path == "" {
		return nil
	}
	if noFollow {
		if err := rejectSymlinks(path); err != nil {
			return err
		}
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return errors.Errorf("output path is a directory: %s", path)
	}
	if input != "-" && input != "" && sameFile(input, path) {
		return errors.Errorf("input and output resolve to the same file: %s", path)
	}
	return nil
}

// sameFile resolves both paths through symlinks and compares the underlying
// files. A non-existent output never aliases the input.
func sameFile(a, b string) bool {
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		return false
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		return false
	}
	ai, err := os.Stat(ra)
	if err != nil {
		return false
	}
	bi, err := os.Stat(rb)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// rejectSymlinks walks every existing component of path and fails on the
// first symlink. Components that do not exist yet (a not-yet-created output
// file) are fine.
func rejectSymlinks(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "resolve path")
	}
	cur := string(os.PathSeparator)
	for _, part := range strings.Split(abs, string(os.PathSeparator)) {
		if part == "" {
			continue
		}
		cur = filepath.Join(cur, part)
		fi, err := os.Lstat(cur)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return errors.Wrapf(err, "check path component %s", cur)
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			return errors.Errorf("path contains a symlink: %s", cur)
		}
	}
	return nil
}

// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"wormod/internal/version"
)

// Usage writes the full help text to w.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "wormod – wordlist manipulation\n\n")
	fmt.Fprintf(w, "Version: %s\n\n", version.Version)

	fmt.Fprintln(w, "Reads a wordlist (one word per line), applies the requested operations in")
	fmt.Fprintln(w, "the order they are given on the command line, and writes the result.")

	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  wormod -i rockyou.txt -o clean.txt --dedup --sort")
	fmt.Fprintln(w, "  cat words.txt | wormod --filter 8,63 --reverse")

	fmt.Fprintln(w, "\nInput/Output:")
	fmt.Fprintln(w, "  -i, --input file            Input wordlist ('-' = stdin) [-]")
	fmt.Fprintln(w, "  -o, --output file           Output path ('-' = stdout) [-]")
	fmt.Fprintln(w, "      --append-output         Append to the output file instead of truncating")
	fmt.Fprintln(w, "      --no-follow-symlinks    Reject input/output paths containing symlinks")

	fmt.Fprintln(w, "\nOperations (applied in the order given):")
	fmt.Fprintln(w, "      --sort                  Sort the wordlist (stable, byte-wise ascending)")
	fmt.Fprintln(w, "      --dedup                 Drop repeated words, first occurrence wins (alias --unique)")
	fmt.Fprintln(w, "      --reverse               Reverse each word's characters (not the list)")
	fmt.Fprintln(w, "      --filter MIN,MAX        Keep words whose length is within [MIN,MAX] (repeatable)")

	fmt.Fprintln(w, "\nMiscellaneous:")
	fmt.Fprintln(w, "  -q, --quiet                 Log errors only")
	fmt.Fprintln(w, "      --verbose               Enable debug logging")
	fmt.Fprintln(w, "  -v, --version               Print version and exit")
	fmt.Fprintln(w, "  -h, --help                  Show this help and exit")
}

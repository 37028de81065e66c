// internal/cli/options.go
package cli

import (
	"errors"
	"strings"

	flag "github.com/spf13/pflag"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// I/O
	Input            string
	Output           string
	AppendOutput     bool
	NoFollowSymlinks bool

	// Specs holds the pipeline operation specs ("sort", "dedup", "reverse",
	// "filter:MIN,MAX") in the order their flags appeared on the command
	// line. Order is significant: the pipeline applies them left to right.
	Specs []string

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// ParseArgs registers and parses all flags, recovers the operation order
// from argv, and validates the result. All failures here happen before any
// I/O is attempted.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVarP(&opt.Input, "input", "i", "-", "input wordlist path ('-' = stdin) [-]")
	fs.StringVarP(&opt.Output, "output", "o", "-", "output path ('-' = stdout) [-]")
	fs.BoolVar(&opt.AppendOutput, "append-output", false, "append to the output file instead of truncating [false]")
	fs.BoolVar(&opt.NoFollowSymlinks, "no-follow-symlinks", false, "reject input/output paths that contain symlinks [false]")

	// Operation flags. Counts let every flag repeat; the values are ignored
	// because the authoritative, ordered sequence comes from scanning argv
	// in operationSpecs below.
	var sortN, dedupN, uniqueN, reverseN int
	fs.CountVar(&sortN, "sort", "sort the wordlist (stable, byte-wise ascending)")
	fs.CountVar(&dedupN, "dedup", "drop repeated words, first occurrence wins")
	fs.CountVar(&uniqueN, "unique", "alias for --dedup")
	var filters []string
	fs.StringArrayVar(&filters, "filter", nil, "keep words whose length is within MIN,MAX (repeatable)")
	fs.CountVar(&reverseN, "reverse", "reverse each word, not the list")
	_ = fs.MarkHidden("unique")

	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "log errors only [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "enable debug logging [false]")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	opt.Specs = operationSpecs(fs, argv)

	// Validation
	if len(opt.Specs) == 0 {
		return opt, errors.New("no operation selected: pass at least one of --sort, --dedup, --reverse, --filter")
	}
	if opt.Input == "" {
		opt.Input = "-"
	}
	if opt.Output == "" {
		opt.Output = "-"
	}
	if opt.AppendOutput && opt.Output == "-" {
		return opt, errors.New("--append-output requires --output")
	}
	return opt, nil
}

// opFlags maps operation flag names to their pipeline spec.
var opFlags = map[string]string{
	"sort":    "sort",
	"dedup":   "dedup",
	"unique":  "dedup",
	"reverse": "reverse",
}

// operationSpecs walks argv and converts operation flags into pipeline specs,
// preserving command-line order. It runs only after fs.Parse succeeded, so
// every flag is known to be well-formed and every value present.
func operationSpecs(fs *flag.FlagSet, argv []string) []string {
	var specs []string
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "--") {
			if strings.HasPrefix(arg, "-") && arg != "-" {
				i += shorthandSkip(fs, arg, argv, i)
			}
			continue
		}
		name, val, hasVal := strings.Cut(arg[2:], "=")
		if spec, ok := opFlags[name]; ok {
			specs = append(specs, spec)
			continue
		}
		if name == "filter" {
			if !hasVal && i+1 < len(argv) {
				i++
				val = argv[i]
			}
			specs = append(specs, "filter:"+val)
			continue
		}
		if !hasVal && flagTakesValue(fs, name) {
			i++
		}
	}
	return specs
}

// flagTakesValue reports whether --name consumes a separate value argument.
func flagTakesValue(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	t := f.Value.Type()
	return t != "bool" && t != "count"
}

// shorthandSkip returns 1 when a shorthand group like "-o file" ends in a
// flag that takes its value from the next argument, else 0.
func shorthandSkip(fs *flag.FlagSet, arg string, argv []string, i int) int {
	shorts := strings.TrimPrefix(arg, "-")
	if strings.ContainsRune(shorts, '=') {
		return 0
	}
	f := fs.ShorthandLookup(shorts[len(shorts)-1:])
	if f == nil {
		return 0
	}
	if t := f.Value.Type(); t == "bool" || t == "count" {
		return 0
	}
	if i+1 < len(argv) {
		return 1
	}
	return 0
}

package cli

import flag "github.com/spf13/pflag"

// NewFlagSet returns a clean FlagSet with ContinueOnError. Callers print
// usage themselves via Usage(), so pflag's own handler is silenced.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}

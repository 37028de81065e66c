// core/pipeline/pipeline.go
package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wormod-core/wordlist"
)

// ErrInvalidSpec reports a malformed operation spec at Build time.
var ErrInvalidSpec = errors.New("invalid operation spec")

// Kind tags one of the fixed operation variants.
type Kind int

const (
	KindSort Kind = iota
	KindDedup
	KindReverse
	KindFilter
)

// Op is one tagged operation. Min and Max are meaningful for KindFilter only.
type Op struct {
	Kind Kind
	Min  int
	Max  int
}

func (o Op) String() string {
	switch o.Kind {
	case KindSort:
		return "sort"
	case KindDedup:
		return "dedup"
	case KindReverse:
		return "reverse"
	case KindFilter:
		return fmt.Sprintf("filter:%d,%d", o.Min, o.Max)
	}
	return "unknown"
}

// Pipeline is an ordered list of operations, applied left to right. The zero
// value is the identity pipeline.
type Pipeline struct {
	ops []Op
}

// Len returns the number of operations in the pipeline.
func (p Pipeline) Len() int { return len(p.ops) }

// Build parses operation specs ("sort", "dedup", "reverse", "filter:MIN,MAX")
// into a Pipeline, preserving their order exactly. It fails with an error
// wrapping ErrInvalidSpec when a spec is unrecognized or a filter bound is
// non-numeric, negative, or inverted. Build never touches I/O, so a failure
// here aborts the run before anything is read or written.
func Build(specs []string) (Pipeline, error) {
	ops := make([]Op, 0, len(specs))
	for _, s := range specs {
		op, err := parseSpec(s)
		if err != nil {
			return Pipeline{}, err
		}
		ops = append(ops, op)
	}
	return Pipeline{ops: ops}, nil
}

func parseSpec(s string) (Op, error) {
	switch {
	case s == "sort":
		return Op{Kind: KindSort}, nil
	case s == "dedup":
		return Op{Kind: KindDedup}, nil
	case s == "reverse":
		return Op{Kind: KindReverse}, nil
	case strings.HasPrefix(s, "filter:"):
		min, max, err := parseBounds(strings.TrimPrefix(s, "filter:"))
		if err != nil {
			return Op{}, fmt.Errorf("%w %q: %v", ErrInvalidSpec, s, err)
		}
		return Op{Kind: KindFilter, Min: min, Max: max}, nil
	default:
		return Op{}, fmt.Errorf("%w %q: unknown operation", ErrInvalidSpec, s)
	}
}

func parseBounds(s string) (int, int, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.New("want MIN,MAX")
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("min %q is not a number", lo)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("max %q is not a number", hi)
	}
	if min < 0 || max < 0 {
		return 0, 0, errors.New("bounds must be non-negative")
	}
	if min > max {
		return 0, 0, fmt.Errorf("min %d exceeds max %d", min, max)
	}
	return min, max, nil
}

// Apply folds every operation, in order, over the list and returns the
// result. There is no reordering or fusion of operations, and every variant
// is total, so Apply cannot fail; empty input produces empty output.
func Apply(p Pipeline, in wordlist.List) wordlist.List {
	for _, op := range p.ops {
		switch op.Kind {
		case KindSort:
			in = wordlist.Sort(in)
		case KindDedup:
			in = wordlist.Dedup(in)
		case KindReverse:
			in = wordlist.Reverse(in)
		case KindFilter:
			in = wordlist.Filter(in, op.Min, op.Max)
		}
	}
	return in
}

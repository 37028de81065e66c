// core/wordlist/wordlist.go
package wordlist

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// List is an ordered, fully in-memory wordlist. Operations take ownership of
// the slice they are given and hand back the transformed list; they touch
// nothing else.
type List []string

// Sort orders the list lexicographically ascending, byte-wise and
// case-sensitive. The sort is stable: equal words keep their relative order.
func Sort(in List) List {
	sort.SliceStable(in, func(i, j int) bool { return in[i] < in[j] })
	return in
}

// Dedup removes every later occurrence of a word already seen. The first
// occurrence wins and the relative order of the kept words is unchanged.
// This is not a sort: the list may arrive in any order.
func Dedup(in List) List {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, w := range in {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Reverse reverses the characters of each word; the order of the list itself
// is unchanged. Words are reversed grapheme cluster by grapheme cluster so
// combining marks and multi-rune clusters survive the round trip. The empty
// word reverses to itself.
func Reverse(in List) List {
	for i, w := range in {
		in[i] = reverseWord(w)
	}
	return in
}

func reverseWord(w string) string {
	if len(w) < 2 {
		return w
	}
	clusters := make([]string, 0, len(w))
	g := uniseg.NewGraphemes(w)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	var b strings.Builder
	b.Grow(len(w))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}

// Filter keeps only the words whose character count lies in [min,max], both
// bounds inclusive. Characters are counted as grapheme clusters, matching
// Reverse. Callers guarantee 0 <= min <= max; any list, including one with
// empty-string words, is fine.
func Filter(in List, min, max int) List {
	out := in[:0]
	for _, w := range in {
		if n := uniseg.GraphemeClusterCount(w); min <= n && n <= max {
			out = append(out, w)
		}
	}
	return out
}

// Package text walks strings by user-perceived characters and words, and
// splits them on separators that respect those boundaries.
package text

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"go.lepak.sg/ranges/iterator"
	"go.lepak.sg/ranges/must"
	"go.lepak.sg/ranges/to"
	"go.lepak.sg/ranges/view"
	"golang.org/x/text/cases"
)

// step cuts the first segment off s given the segmenter state left by the
// previous cut.
type step func(s string, state int) (seg string, newState int)

func graphemeStep(s string, state int) (string, int) {
	c, _, _, st := uniseg.FirstGraphemeClusterInString(s, state)
	return c, st
}

func wordStep(s string, state int) (string, int) {
	w, _, st := uniseg.FirstWordInString(s, state)
	return w, st
}

// Pos is a forward position over the segments of a string. Positions are
// only comparable with positions over the same string.
type Pos struct {
	at    string // from the current segment to the end
	seg   string
	state int
	total int
	step  step
}

var _ iterator.Forward[Pos, string] = Pos{}

func begin(s string, f step) iterator.Subrange[Pos, Pos] {
	first := Pos{at: s, total: len(s), step: f}
	if s != "" {
		first.seg, first.state = f(s, -1)
	}
	return iterator.NewSubrange(first, Pos{total: len(s), step: f})
}

// Graphemes ranges over the extended grapheme clusters of s.
func Graphemes(s string) iterator.Subrange[Pos, Pos] {
	return begin(s, graphemeStep)
}

// Words ranges over s cut at word boundaries. Runs of spaces and
// punctuation come out as their own segments.
func Words(s string) iterator.Subrange[Pos, Pos] {
	return begin(s, wordStep)
}

func (p Pos) Current() string {
	if p.at == "" {
		panic("read at the end of the string")
	}
	return p.seg
}

func (p Pos) Next() Pos {
	if p.at == "" {
		panic("next at the end of the string")
	}
	next := Pos{at: p.at[len(p.seg):], total: p.total, step: p.step}
	if next.at != "" {
		next.seg, next.state = p.step(next.at, p.state)
	}
	return next
}

func (p Pos) Equal(o Pos) bool {
	return p.total == o.total && len(p.at) == len(o.at)
}

// Offset is the byte offset of p in the string.
func (p Pos) Offset() int {
	return p.total - len(p.at)
}

// Until is the text from p up to o.
func (p Pos) Until(o Pos) string {
	return p.at[:len(p.at)-len(o.at)]
}

// FoldBoundary finds sep at grapheme boundaries. With fold, matching is
// caseless. An empty sep matches everywhere without consuming anything.
func FoldBoundary(sep string, fold bool) view.Boundary[Pos, Pos] {
	n := uniseg.GraphemeClusterCount(sep)
	caser := cases.Fold()
	if fold {
		sep = caser.String(sep)
	}
	return func(cur, last Pos) (bool, int) {
		if n == 0 {
			return true, 0
		}
		end, left := iterator.AdvanceBounded(cur, n, last)
		if left != 0 {
			return false, 0
		}
		got := cur.Until(end)
		if fold {
			got = caser.String(got)
		}
		return got == sep, n
	}
}

// Split cuts s at every sep. A sep at the very end does not produce a
// trailing empty piece, and an empty sep yields the grapheme clusters.
func Split(s, sep string, fold bool) []string {
	sp := view.SplitFunc[string](Graphemes(s), FoldBoundary(sep, fold))
	parts := must.Get(to.Segments(sp))
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.Join(p, "")
	}
	return out
}

// Fields returns the words of s, dropping segments that hold only
// whitespace or punctuation.
func Fields(s string) []string {
	var out []string
	for w := range iterator.Elements[string](Words(s)) {
		if strings.IndexFunc(w, isWordRune) >= 0 {
			out = append(out, w)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Package edit collects the text replacements produced by the extensions,
// resolves nesting and overlap, and applies them to the source in one pass.
//
// Replacement computation and application are strictly separated: all edits
// for a file are gathered first, then applied together, so token positions
// stay valid for the whole scan.
package edit

import (
	"sort"

	"sugarc/internal/source"
)

// Replacement is a single text-span substitution.
type Replacement struct {
	Span source.Span
	Text string
}

// Set accumulates replacements for one file.
type Set struct {
	file  *source.File
	repls []Replacement
}

// NewSet creates an empty replacement set for the file.
func NewSet(file *source.File) *Set {
	return &Set{file: file}
}

// Add appends a replacement. Ordering and overlap are resolved at apply time.
func (s *Set) Add(span source.Span, text string) {
	s.repls = append(s.repls, Replacement{Span: span, Text: text})
}

// Len returns the number of collected replacements.
func (s *Set) Len() int {
	return len(s.repls)
}

// normalize sorts the set and drops replacements that cannot be applied:
// spans out of range, spans strictly contained in another replacement (the
// outer rewrite already folded the inner text in), and partial overlaps,
// where the later-starting edit conservatively loses.
func (s *Set) normalize() []Replacement {
	limit := uint32(len(s.file.Content))
	kept := make([]Replacement, 0, len(s.repls))
	for _, r := range s.repls {
		if r.Span.Start > r.Span.End || r.Span.End > limit {
			continue
		}
		kept = append(kept, r)
	}

	// старт по возрастанию; при равенстве вставки (нулевой ширины) первыми,
	// затем более длинный, чтобы вложенность схлопывалась за один проход
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i].Span, kept[j].Span
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if (a.Len() == 0) != (b.Len() == 0) {
			return a.Len() == 0
		}
		return a.End > b.End
	})

	out := kept[:0]
	for _, r := range kept {
		if len(out) == 0 {
			out = append(out, r)
			continue
		}
		prev := out[len(out)-1]
		switch {
		case r.Span.Start >= prev.Span.End:
			out = append(out, r)
		case prev.Span.Contains(r.Span):
			// nested inside prev: already folded into prev's text
		default:
			// partial overlap: never produced by a correct extension,
			// dropped rather than guessed at
		}
	}
	return out
}

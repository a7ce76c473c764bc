// Package label defines the STREUSLE lextag vocabulary: composite label
// strings, their boundary-role and lexical-category components, and the
// indexed alphabet the constraint tables are built over.
//
// A lextag is a dash-joined composite such as "I~-V-v.cognition": the first
// component is the boundary role ("I~"), the second is the lexical category
// ("V"), and any further components (here the supersense "v.cognition") are
// carried verbatim but play no part in constraint decisions.
package label

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateLabel is returned when an alphabet is built from a vocabulary
// that contains the same label string twice.
var ErrDuplicateLabel = errors.New("duplicate label")

// Parts holds the constraint-relevant components of a lextag.
//
// Role is always the first dash-delimited component. Lexcat is the second
// when present and empty otherwise. The synthetic "START" and "END" markers
// contain no dash, so they decompose to themselves as role with no lexcat.
type Parts struct {
	Role   string
	Lexcat string
}

// HasLexcat reports whether the label carried a lexical category component.
func (p Parts) HasLexcat() bool {
	return p.Lexcat != ""
}

// Split decomposes a lextag into its role and lexcat components.
//
// Components past the second (supersenses and the like) are ignored here;
// callers that need them keep the raw label string. Split never fails: a
// label with no dash is a role-only label, and validating the role itself
// is the transition builder's job.
func Split(lextag string) Parts {
	role, rest, found := strings.Cut(lextag, "-")
	if !found {
		return Parts{Role: role}
	}
	lexcat, _, _ := strings.Cut(rest, "-")
	return Parts{Role: role, Lexcat: lexcat}
}

// IsGapOrOutside reports whether the label's role marks the token as
// outside an expression ("O" at the top level, "o" inside a gap). Only
// these labels are subject to the UPOS/lexcat compatibility check; all
// other roles are structurally committed to an expression already.
func IsGapOrOutside(lextag string) bool {
	return strings.HasPrefix(lextag, "O-") || strings.HasPrefix(lextag, "o-")
}

// Alphabet is an ordered, index-addressable collection of lextags.
//
// Indices are stable for the lifetime of the alphabet, which is built once
// from the trained label vocabulary and never mutated; it is safe to share
// across goroutines without synchronization. Two synthetic positions,
// StartIndex and EndIndex, sit immediately past the real labels and
// participate in transition construction but are never predicted.
type Alphabet struct {
	labels []string
	index  map[string]int
}

// NewAlphabet builds an alphabet from an ordered label list. Label i in the
// slice receives index i.
func NewAlphabet(labels []string) (*Alphabet, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := index[l]; ok {
			return nil, fmt.Errorf("%w %q at index %d", ErrDuplicateLabel, l, i)
		}
		index[l] = i
	}
	ordered := make([]string, len(labels))
	copy(ordered, labels)
	return &Alphabet{labels: ordered, index: index}, nil
}

// NewAlphabetFromIndex builds an alphabet from an index-to-label mapping,
// the shape label vocabularies usually arrive in. Indices must be dense in
// [0, len).
func NewAlphabetFromIndex(labels map[int]string) (*Alphabet, error) {
	ordered := make([]string, len(labels))
	for i := range ordered {
		l, ok := labels[i]
		if !ok {
			return nil, fmt.Errorf("label vocabulary has no entry for index %d (indices must be dense)", i)
		}
		ordered[i] = l
	}
	return NewAlphabet(ordered)
}

// Size returns the number of real (predictable) labels, excluding the
// synthetic START and END positions.
func (a *Alphabet) Size() int {
	return len(a.labels)
}

// Label returns the label at index i, or false if i is out of range.
func (a *Alphabet) Label(i int) (string, bool) {
	if i < 0 || i >= len(a.labels) {
		return "", false
	}
	return a.labels[i], true
}

// Index returns the index of a label, or false if the label is unknown.
func (a *Alphabet) Index(lextag string) (int, bool) {
	i, ok := a.index[lextag]
	return i, ok
}

// Labels returns a copy of the ordered label list.
func (a *Alphabet) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

// StartIndex returns the synthetic START position, Size().
func (a *Alphabet) StartIndex() int {
	return len(a.labels)
}

// EndIndex returns the synthetic END position, Size()+1.
func (a *Alphabet) EndIndex() int {
	return len(a.labels) + 1
}

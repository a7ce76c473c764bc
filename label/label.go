// Copyright 2025 The Lextag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package label is the public API for the lextag vocabulary: composite
// label strings, their boundary-role and lexical-category components, and
// the indexed alphabet the constraint tables are built over.
//
// Example:
//
//	parts := label.Split("I~-V-v.cognition")
//	// parts.Role == "I~", parts.Lexcat == "V"
//
//	alphabet, err := label.NewAlphabet([]string{"O", "B-V", "I_-V"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// alphabet.StartIndex() and alphabet.EndIndex() address the synthetic
//	// transition-only positions.
package label

import (
	"github.com/lextag-ml/lextag/internal/label"
)

// Role is one of the eight boundary symbols of the "BbIiOo_~" tagging
// scheme, or a synthetic sequence marker.
type Role = label.Role

// The closed role set.
const (
	Outside         Role = label.Outside
	Begin           Role = label.Begin
	InsideStrong    Role = label.InsideStrong
	InsideWeak      Role = label.InsideWeak
	GapOutside      Role = label.GapOutside
	GapBegin        Role = label.GapBegin
	GapInsideStrong Role = label.GapInsideStrong
	GapInsideWeak   Role = label.GapInsideWeak

	Start Role = label.Start
	End   Role = label.End
)

// AllRoles lists the eight predictable boundary roles, excluding the
// synthetic markers.
var AllRoles = label.AllRoles

// ErrInvalidRole is returned when a role string falls outside the closed
// role set.
var ErrInvalidRole = label.ErrInvalidRole

// ErrDuplicateLabel is returned when an alphabet is built from a vocabulary
// that contains the same label string twice.
var ErrDuplicateLabel = label.ErrDuplicateLabel

// Parts holds the constraint-relevant components of a lextag.
type Parts = label.Parts

// Alphabet is an ordered, index-addressable collection of lextags, plus
// two synthetic transition-only positions.
type Alphabet = label.Alphabet

// Split decomposes a lextag into its role and lexcat components.
func Split(lextag string) Parts {
	return label.Split(lextag)
}

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, error) {
	return label.ParseRole(s)
}

// IsGapOrOutside reports whether the label's role marks the token as
// outside an expression ("O" at the top level, "o" inside a gap).
func IsGapOrOutside(lextag string) bool {
	return label.IsGapOrOutside(lextag)
}

// NewAlphabet builds an alphabet from an ordered label list.
func NewAlphabet(labels []string) (*Alphabet, error) {
	return label.NewAlphabet(labels)
}

// NewAlphabetFromIndex builds an alphabet from an index-to-label mapping
// with dense indices in [0, len).
func NewAlphabetFromIndex(labels map[int]string) (*Alphabet, error) {
	return label.NewAlphabetFromIndex(labels)
}

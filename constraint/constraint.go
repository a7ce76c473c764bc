// Copyright 2025 The Lextag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package constraint is the public API for the lextag constraint engine:
// the "BbIiOo_~" role-transition grammar, the UPOS-to-lexcat compatibility
// table, and the per-token constraint mask built from both.
//
// Example:
//
//	alphabet, err := label.NewAlphabet(labels)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine, err := constraint.NewEngine(alphabet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Static: hand the transition set to the decoder once.
//	transitions := engine.Transitions()
//
//	// Per batch: build the UPOS admissibility mask.
//	mask, err := engine.ConstraintMask(batchUPOSTags, batchLemmas)
//	if err != nil {
//	    log.Fatal(err)
//	}
package constraint

import (
	"log/slog"

	"github.com/lextag-ml/lextag/internal/constraint"
	"github.com/lextag-ml/lextag/internal/label"
)

// UPOS is a universal part-of-speech tag, supplied externally per token.
type UPOS = constraint.UPOS

// Lexcat is a lexical category code used for multiword-expression-aware
// tagging.
type Lexcat = constraint.Lexcat

// Transition is a legal (from, to) pair of alphabet indices.
type Transition = constraint.Transition

// LexcatSet is a set of lexical categories.
type LexcatSet = constraint.LexcatSet

// Compatibility maps every UPOS to its allowed lexical categories.
type Compatibility = constraint.Compatibility

// Engine bundles the static constraint tables for one label alphabet.
type Engine = constraint.Engine

// Option configures an Engine.
type Option = constraint.Option

// AllUPOS lists the 17 universal part-of-speech tags.
var AllUPOS = constraint.AllUPOS

// AllLexcats lists the 21 lexical categories.
var AllLexcats = constraint.AllLexcats

// Sentinel errors for the constraint taxonomy.
var (
	ErrUnknownUPOS   = constraint.ErrUnknownUPOS
	ErrUnknownLexcat = constraint.ErrUnknownLexcat
)

// NewEngine builds all constraint tables for the alphabet.
func NewEngine(alphabet *label.Alphabet, opts ...Option) (*Engine, error) {
	return constraint.NewEngine(alphabet, opts...)
}

// WithLogger sets the logger used for the compatibility table audit dump.
func WithLogger(logger *slog.Logger) Option {
	return constraint.WithLogger(logger)
}

// IsRoleTransitionAllowed reports whether to may follow from under the
// "BbIiOo_~" tagging scheme.
func IsRoleTransitionAllowed(from, to label.Role) (bool, error) {
	return constraint.IsRoleTransitionAllowed(from, to)
}

// AllowedTransitions computes the full set of legal (from, to) index pairs
// over the alphabet augmented with its synthetic START and END positions.
func AllowedTransitions(alphabet *label.Alphabet) ([]Transition, error) {
	return constraint.AllowedTransitions(alphabet)
}

// ValidateRoleSequence checks every consecutive pair in a full role
// sequence and reports the first offending 1-based step.
func ValidateRoleSequence(roles []label.Role) error {
	return constraint.ValidateRoleSequence(roles)
}

// CheckLabelSequence validates a predicted lextag sequence, wrapping it in
// START/END before checking.
func CheckLabelSequence(labels []string) error {
	return constraint.CheckLabelSequence(labels)
}

// ParseUPOS validates a UPOS string against the fixed 17-tag set.
func ParseUPOS(s string) (UPOS, error) {
	return constraint.ParseUPOS(s)
}

// ParseLexcat validates a lexcat string against the fixed 21-category set.
func ParseLexcat(s string) (Lexcat, error) {
	return constraint.ParseLexcat(s)
}

// BuildCompatibility evaluates the compatibility predicate over the full
// UPOS × lexcat product.
func BuildCompatibility() Compatibility {
	return constraint.BuildCompatibility()
}

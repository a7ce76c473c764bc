// Copyright 2025 The Lextag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package decode is the public API for constrained Viterbi decoding over
// masked logits.
//
// Example:
//
//	decoder, err := decode.NewDecoder(alphabet.Size(), engine.Transitions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	masked, err := decode.ApplyMask(logits, mask)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	paths, err := decoder.Best(masked, lengths)
//	if err != nil {
//	    log.Fatal(err)
//	}
package decode

import (
	"github.com/lextag-ml/lextag/internal/constraint"
	"github.com/lextag-ml/lextag/internal/decode"
	"github.com/lextag-ml/lextag/internal/tensor"
)

// MaskedValue is the sentinel written into disallowed logit entries.
const MaskedValue = decode.MaskedValue

// ErrNoValidPath is returned when the constraints rule out every complete
// tag sequence for some input.
var ErrNoValidPath = decode.ErrNoValidPath

// Decoder finds best tag paths under a fixed transition set.
type Decoder = decode.Decoder

// DecoderOption configures a Decoder.
type DecoderOption = decode.DecoderOption

// ApplyMask returns a copy of logits with every entry the mask disallows
// replaced by MaskedValue.
func ApplyMask(logits, mask *tensor.Dense) (*tensor.Dense, error) {
	return decode.ApplyMask(logits, mask)
}

// NewDecoder builds a decoder for an alphabet of numTags real labels from
// the transition set over the augmented alphabet.
func NewDecoder(numTags int, transitions []constraint.Transition, opts ...DecoderOption) (*Decoder, error) {
	return decode.NewDecoder(numTags, transitions, opts...)
}

// WithoutStartEndTransitions disables the START/END boundary constraints.
func WithoutStartEndTransitions() DecoderOption {
	return decode.WithoutStartEndTransitions()
}

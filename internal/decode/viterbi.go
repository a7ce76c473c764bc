// Package decode runs constrained Viterbi decoding over masked logits.
//
// The decoder consumes the two artifacts the constraint engine produces —
// the transition set over the augmented alphabet and the per-token
// constraint mask — and finds, per sequence, the highest-scoring tag path
// that violates neither.
package decode

import (
	"errors"
	"fmt"
	"math"

	"github.com/lextag-ml/lextag/internal/constraint"
	"github.com/lextag-ml/lextag/internal/parallel"
	"github.com/lextag-ml/lextag/internal/tensor"
)

// MaskedValue is the sentinel written into disallowed logit entries. It is
// negative enough that no arg-max or Viterbi search ever selects a masked
// label, while staying finite so score arithmetic stays well defined.
const MaskedValue = -1e32

// ErrNoValidPath is returned when the constraints rule out every complete
// tag sequence for some input, which a well-formed transition set over a
// well-formed alphabet never does.
var ErrNoValidPath = errors.New("no valid tag path")

// ApplyMask returns a copy of logits with every entry the mask disallows
// replaced by MaskedValue. Shapes must match exactly; mask entries are
// interpreted as disallowed when zero and allowed otherwise.
func ApplyMask(logits, mask *tensor.Dense) (*tensor.Dense, error) {
	if !logits.Shape().Equal(mask.Shape()) {
		return nil, fmt.Errorf("apply mask: logits shape %v does not match mask shape %v",
			logits.Shape(), mask.Shape())
	}
	out := logits.Clone()
	data := out.Data()
	maskData := mask.Data()
	for i, m := range maskData {
		if m == 0 {
			data[i] = MaskedValue
		}
	}
	return out, nil
}

// Decoder finds best tag paths under a fixed transition set.
//
// A Decoder is built once from the engine's transitions and immutable
// afterwards; batches may be decoded concurrently.
type Decoder struct {
	numTags         int
	start           int
	end             int
	allowed         [][]bool
	includeStartEnd bool
	par             parallel.Config
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithoutStartEndTransitions disables the START/END boundary constraints:
// any tag may begin or end a sequence, and only pairwise transitions are
// enforced. Mirrors training without start/end transition parameters.
func WithoutStartEndTransitions() DecoderOption {
	return func(d *Decoder) {
		d.includeStartEnd = false
	}
}

// WithParallelism overrides how decoding fans out across batch sequences.
func WithParallelism(cfg parallel.Config) DecoderOption {
	return func(d *Decoder) {
		d.par = cfg
	}
}

// NewDecoder builds a decoder for an alphabet of numTags real labels from
// the transition set over the augmented alphabet (START at numTags, END at
// numTags+1).
func NewDecoder(numTags int, transitions []constraint.Transition, opts ...DecoderOption) (*Decoder, error) {
	if numTags <= 0 {
		return nil, fmt.Errorf("decoder: numTags must be > 0, got %d", numTags)
	}
	total := numTags + 2
	allowed := make([][]bool, total)
	for i := range allowed {
		allowed[i] = make([]bool, total)
	}
	for _, tr := range transitions {
		if tr.From < 0 || tr.From >= total || tr.To < 0 || tr.To >= total {
			return nil, fmt.Errorf("decoder: transition (%d, %d) out of range for %d tags",
				tr.From, tr.To, numTags)
		}
		allowed[tr.From][tr.To] = true
	}

	d := &Decoder{
		numTags:         numTags,
		start:           numTags,
		end:             numTags + 1,
		allowed:         allowed,
		includeStartEnd: true,
		par:             parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Best decodes a batch of masked logits with shape (batch, length, tags)
// into per-sequence best tag index paths. lengths gives each sequence's
// real token count; positions past it are padding and ignored. A length of
// zero yields an empty path.
func (d *Decoder) Best(logits *tensor.Dense, lengths []int) ([][]int, error) {
	shape := logits.Shape()
	if len(shape) != 3 {
		return nil, fmt.Errorf("decode: logits must be rank 3 (batch, length, tags), got shape %v", shape)
	}
	if shape[2] != d.numTags {
		return nil, fmt.Errorf("decode: logits have %d tags, decoder was built for %d", shape[2], d.numTags)
	}
	if len(lengths) != shape[0] {
		return nil, fmt.Errorf("decode: got %d lengths for batch of %d", len(lengths), shape[0])
	}
	for b, n := range lengths {
		if n < 0 || n > shape[1] {
			return nil, fmt.Errorf("decode: sequence %d has length %d, padded length is %d", b, n, shape[1])
		}
	}

	paths := make([][]int, shape[0])
	errs := make([]error, shape[0])
	parallel.For(shape[0], func(b int) {
		paths[b], errs[b] = d.bestPath(logits, b, lengths[b])
	}, d.par)

	for b, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("decode: sequence %d: %w", b, err)
		}
	}
	return paths, nil
}

// bestPath runs Viterbi over one sequence. Scores accumulate in float64 so
// chains of MaskedValue penalties stay ordered correctly.
func (d *Decoder) bestPath(logits *tensor.Dense, b, length int) ([]int, error) {
	if length == 0 {
		return []int{}, nil
	}

	negInf := math.Inf(-1)
	prev := make([]float64, d.numTags)
	row := logits.Row(b, 0)
	for j := 0; j < d.numTags; j++ {
		if d.includeStartEnd && !d.allowed[d.start][j] {
			prev[j] = negInf
			continue
		}
		prev[j] = float64(row[j])
	}

	backptr := make([][]int, length)
	for t := 1; t < length; t++ {
		row = logits.Row(b, t)
		cur := make([]float64, d.numTags)
		ptr := make([]int, d.numTags)
		for j := 0; j < d.numTags; j++ {
			best, bestFrom := negInf, -1
			for i := 0; i < d.numTags; i++ {
				if !d.allowed[i][j] || prev[i] == negInf {
					continue
				}
				if prev[i] > best {
					best, bestFrom = prev[i], i
				}
			}
			if bestFrom < 0 {
				cur[j] = negInf
				ptr[j] = -1
				continue
			}
			cur[j] = best + float64(row[j])
			ptr[j] = bestFrom
		}
		prev = cur
		backptr[t] = ptr
	}

	best, bestTag := negInf, -1
	for j := 0; j < d.numTags; j++ {
		if prev[j] == negInf {
			continue
		}
		if d.includeStartEnd && !d.allowed[j][d.end] {
			continue
		}
		if prev[j] > best {
			best, bestTag = prev[j], j
		}
	}
	if bestTag < 0 {
		return nil, ErrNoValidPath
	}

	path := make([]int, length)
	path[length-1] = bestTag
	for t := length - 1; t > 0; t-- {
		path[t-1] = backptr[t][path[t]]
	}
	return path, nil
}

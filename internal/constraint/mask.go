package constraint

import (
	"fmt"

	"github.com/lextag-ml/lextag/internal/label"
	"github.com/lextag-ml/lextag/internal/parallel"
	"github.com/lextag-ml/lextag/internal/tensor"
)

// buildUPOSMasks precomputes, per UPOS, a 0/1 row over the alphabet. Per
// token at mask time this reduces to one row copy; no label is examined
// again after construction.
//
// A label is admissible for a UPOS when any of:
//   - it carries no lexcat (role-only labels are always allowed),
//   - its role is not an outside role (non-O/o labels are structurally
//     committed regardless of UPOS),
//   - its lexcat is compatible with the UPOS.
func buildUPOSMasks(alphabet *label.Alphabet, compat Compatibility) map[UPOS][]float32 {
	masks := make(map[UPOS][]float32, len(AllUPOS))
	labels := alphabet.Labels()
	for _, upos := range AllUPOS {
		row := make([]float32, alphabet.Size())
		for i, l := range labels {
			parts := label.Split(l)
			switch {
			case !parts.HasLexcat():
				row[i] = 1
			case !label.IsGapOrOutside(l):
				row[i] = 1
			case compat[upos][Lexcat(parts.Lexcat)]:
				row[i] = 1
			}
		}
		masks[upos] = row
	}
	return masks
}

// ConstraintMask builds the per-token admissibility mask for a batch:
// shape (batch, longest sequence, alphabet size), 1 where a label may be
// predicted at a position and 0 where it may not. Rows past a sequence's
// real length stay all-zero; the decoder masks padding separately and never
// reads them.
//
// Lemmas are accepted alongside the UPOS tags so lemma-conditioned
// compatibility exceptions (lemma "be" licensing AUX with V, lemma
// "versus" licensing ADP with CCONJ) have somewhere to plug in; no current
// rule consults them. Pass nil to omit lemmas entirely.
//
// Every UPOS tag is validated before any row is written: an unknown tag
// returns ErrUnknownUPOS and no mask.
func (e *Engine) ConstraintMask(batchUPOSTags [][]string, batchLemmas [][]string) (*tensor.Dense, error) {
	if len(batchUPOSTags) == 0 {
		return nil, fmt.Errorf("constraint mask: empty batch")
	}
	if batchLemmas != nil && len(batchLemmas) != len(batchUPOSTags) {
		return nil, fmt.Errorf("constraint mask: got %d lemma sequences for %d UPOS sequences",
			len(batchLemmas), len(batchUPOSTags))
	}

	maxLen := 0
	parsed := make([][]UPOS, len(batchUPOSTags))
	for b, tags := range batchUPOSTags {
		if batchLemmas != nil && len(batchLemmas[b]) != len(tags) {
			return nil, fmt.Errorf("constraint mask: sequence %d has %d lemmas for %d tokens",
				b, len(batchLemmas[b]), len(tags))
		}
		seq := make([]UPOS, len(tags))
		for t, tag := range tags {
			u, err := ParseUPOS(tag)
			if err != nil {
				return nil, fmt.Errorf("constraint mask: sequence %d token %d: %w", b, t, err)
			}
			seq[t] = u
		}
		parsed[b] = seq
		if len(tags) > maxLen {
			maxLen = len(tags)
		}
	}
	if maxLen == 0 {
		return nil, fmt.Errorf("constraint mask: batch contains no tokens")
	}

	mask, err := tensor.NewDense(tensor.Shape{len(parsed), maxLen, e.alphabet.Size()})
	if err != nil {
		return nil, fmt.Errorf("constraint mask: %w", err)
	}

	// Rows depend only on their own token's UPOS; fill sequences in
	// parallel.
	parallel.For(len(parsed), func(b int) {
		for t, upos := range parsed[b] {
			copy(mask.Row(b, t), e.uposMasks[upos])
		}
	}, e.par)

	return mask, nil
}

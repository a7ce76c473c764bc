package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lextag-ml/lextag/internal/constraint"
	"github.com/lextag-ml/lextag/internal/tensor"
)

func TestConstraintMask_SingleToken(t *testing.T) {
	e := newTestEngine(t, []string{
		"O",              // role only
		"O-N-n.person",   // NOUN-compatible lexcat
		"O-V-v.cognition", // VERB-only lexcat
		"B",              // role only, non-outside
	})

	mask, err := e.ConstraintMask([][]string{{"NOUN"}}, nil)
	require.NoError(t, err)
	require.True(t, mask.Shape().Equal(tensor.Shape{1, 1, 4}))

	// Under NOUN: role-only and N-lexcat labels stay, the V-lexcat
	// outside label goes.
	assert.Equal(t, []float32{1, 1, 0, 1}, mask.Row(0, 0))
}

func TestConstraintMask_Batch(t *testing.T) {
	e := newTestEngine(t, []string{"O", "O-N-n.person", "O-V-v.cognition", "B"})

	batchUPOS := [][]string{
		{"NOUN", "VERB", "DET"},
		{"PRON"},
	}
	batchLemmas := [][]string{
		{"dog", "run", "the"},
		{"they"},
	}

	mask, err := e.ConstraintMask(batchUPOS, batchLemmas)
	require.NoError(t, err)
	require.True(t, mask.Shape().Equal(tensor.Shape{2, 3, 4}))

	assert.Equal(t, []float32{1, 1, 0, 1}, mask.Row(0, 0), "NOUN keeps N, drops V")
	assert.Equal(t, []float32{1, 0, 1, 1}, mask.Row(0, 1), "VERB keeps V, drops N")
	assert.Equal(t, []float32{1, 0, 0, 1}, mask.Row(0, 2), "DET keeps only role-only labels")
	assert.Equal(t, []float32{1, 0, 0, 1}, mask.Row(1, 0), "PRON keeps only role-only labels")

	// Padding rows past a sequence's real length stay all-disallowed; the
	// decoder never reads them.
	assert.Equal(t, []float32{0, 0, 0, 0}, mask.Row(1, 1))
	assert.Equal(t, []float32{0, 0, 0, 0}, mask.Row(1, 2))
}

func TestConstraintMask_RoleOnlyAlwaysAllowed(t *testing.T) {
	e := newTestEngine(t, []string{"O", "o", "B", "b", "I_", "i_", "I~", "i~"})

	for _, u := range constraint.AllUPOS {
		mask, err := e.ConstraintMask([][]string{{string(u)}}, nil)
		require.NoError(t, err)
		for i, v := range mask.Row(0, 0) {
			assert.Equal(t, float32(1), v, "role-only label %d under %s", i, u)
		}
	}
}

func TestConstraintMask_NonOutsideAlwaysAllowed(t *testing.T) {
	// Labels committed to an expression escape the UPOS check even with a
	// hostile lexcat.
	e := newTestEngine(t, []string{"B-V", "I_-V", "b-N", "i~-P"})

	mask, err := e.ConstraintMask([][]string{{"DET"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1, 1}, mask.Row(0, 0))
}

func TestConstraintMask_UnknownUPOS(t *testing.T) {
	e := newTestEngine(t, []string{"O", "B-V"})

	mask, err := e.ConstraintMask([][]string{{"NOUN", "NOT_A_TAG"}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, constraint.ErrUnknownUPOS)
	assert.Nil(t, mask, "no partial mask may be returned")
}

func TestConstraintMask_InputValidation(t *testing.T) {
	e := newTestEngine(t, []string{"O", "B-V"})

	_, err := e.ConstraintMask(nil, nil)
	require.Error(t, err)

	_, err = e.ConstraintMask([][]string{{}}, nil)
	require.Error(t, err, "batch with no tokens")

	_, err = e.ConstraintMask([][]string{{"NOUN"}}, [][]string{})
	require.Error(t, err, "lemma batch size mismatch")

	_, err = e.ConstraintMask([][]string{{"NOUN"}}, [][]string{{"dog", "cat"}})
	require.Error(t, err, "lemma sequence length mismatch")
}

package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lextag-ml/lextag/internal/constraint"
	"github.com/lextag-ml/lextag/internal/label"
)

func allowed(t *testing.T, from, to label.Role) bool {
	t.Helper()
	ok, err := constraint.IsRoleTransitionAllowed(from, to)
	require.NoError(t, err)
	return ok
}

func TestTransition_StartAndEnd(t *testing.T) {
	// START may only open with O or B.
	for _, r := range label.AllRoles {
		want := r == label.Outside || r == label.Begin
		assert.Equal(t, want, allowed(t, label.Start, r), "START -> %s", r)
	}
	assert.False(t, allowed(t, label.Start, label.End))

	// Only O, I_ and I~ may close the sequence.
	for _, r := range label.AllRoles {
		want := r == label.Outside || r == label.InsideStrong || r == label.InsideWeak
		assert.Equal(t, want, allowed(t, r, label.End), "%s -> END", r)
	}

	// Nothing enters START, nothing leaves END.
	for _, r := range label.AllRoles {
		assert.False(t, allowed(t, r, label.Start), "%s -> START", r)
		assert.False(t, allowed(t, label.End, r), "END -> %s", r)
	}
}

func TestTransition_Pairs(t *testing.T) {
	tests := []struct {
		from label.Role
		to   label.Role
		want bool
	}{
		// B opens gap material or inside spans, never plain outside.
		{label.Begin, label.GapOutside, true},
		{label.Begin, label.GapBegin, true},
		{label.Begin, label.InsideStrong, true},
		{label.Begin, label.InsideWeak, true},
		{label.Begin, label.Outside, false},
		{label.Begin, label.Begin, false},

		// o behaves like B.
		{label.GapOutside, label.GapOutside, true},
		{label.GapOutside, label.GapBegin, true},
		{label.GapOutside, label.InsideStrong, true},
		{label.GapOutside, label.InsideWeak, true},
		{label.GapOutside, label.GapInsideStrong, false},
		{label.GapOutside, label.Outside, false},

		// b must continue into a gap inside span, either variant.
		{label.GapBegin, label.GapInsideStrong, true},
		{label.GapBegin, label.GapInsideWeak, true},
		{label.GapBegin, label.Outside, false},
		{label.GapBegin, label.Begin, false},
		{label.GapBegin, label.InsideStrong, false},

		// O stays outside or opens an expression.
		{label.Outside, label.Outside, true},
		{label.Outside, label.Begin, true},
		{label.Outside, label.GapOutside, false},
		{label.Outside, label.InsideStrong, false},

		// I_ goes anywhere but a gap inside span.
		{label.InsideStrong, label.Outside, true},
		{label.InsideStrong, label.Begin, true},
		{label.InsideStrong, label.InsideStrong, true},
		{label.InsideStrong, label.GapBegin, true},
		{label.InsideStrong, label.GapInsideStrong, false},
		{label.InsideStrong, label.GapInsideWeak, false},

		// I~ matches I_.
		{label.InsideWeak, label.Outside, true},
		{label.InsideWeak, label.GapInsideStrong, false},
		{label.InsideWeak, label.GapInsideWeak, false},

		// i_ goes anywhere but back to top-level O or B.
		{label.GapInsideStrong, label.InsideStrong, true},
		{label.GapInsideStrong, label.GapOutside, true},
		{label.GapInsideStrong, label.GapInsideWeak, true},
		{label.GapInsideStrong, label.Outside, false},
		{label.GapInsideStrong, label.Begin, false},

		// i~ matches i_.
		{label.GapInsideWeak, label.InsideWeak, true},
		{label.GapInsideWeak, label.Outside, false},
		{label.GapInsideWeak, label.Begin, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, allowed(t, tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTransition_InvalidRole(t *testing.T) {
	_, err := constraint.IsRoleTransitionAllowed("Q", label.Outside)
	require.Error(t, err)
	assert.ErrorIs(t, err, label.ErrInvalidRole)
	assert.Contains(t, err.Error(), "from side")
	assert.Contains(t, err.Error(), `"Q"`)

	_, err = constraint.IsRoleTransitionAllowed(label.Outside, "I")
	require.Error(t, err)
	assert.ErrorIs(t, err, label.ErrInvalidRole)
	assert.Contains(t, err.Error(), "to side")
}

func TestAllowedTransitions(t *testing.T) {
	a, err := label.NewAlphabet([]string{
		"O",              // 0
		"O-N-n.person",   // 1
		"B-V",            // 2
		"I_-V",           // 3
		"b",              // 4
		"i_",             // 5
		"o-N-n.artifact", // 6
	})
	require.NoError(t, err)

	transitions, err := constraint.AllowedTransitions(a)
	require.NoError(t, err)

	set := make(map[constraint.Transition]bool, len(transitions))
	for _, tr := range transitions {
		assert.NotEqual(t, a.StartIndex(), tr.To, "no transition may target START")
		assert.NotEqual(t, a.EndIndex(), tr.From, "no transition may originate from END")
		set[tr] = false
	}

	start, end := a.StartIndex(), a.EndIndex()
	expectIn := []constraint.Transition{
		{start, 0},   // START -> O
		{start, 2},   // START -> B-V
		{0, end},     // O -> END
		{3, end},     // I_-V -> END
		{0, 1},       // O -> O-N (same role)
		{1, 2},       // O-N -> B-V
		{2, 3},       // B-V -> I_-V
		{2, 4},       // B-V -> b
		{4, 5},       // b -> i_
		{5, 6},       // i_ -> o-N
		{6, 3},       // o-N -> I_-V
		{3, 0},       // I_-V -> O
	}
	for _, tr := range expectIn {
		_, ok := set[tr]
		assert.True(t, ok, "expected transition %v", tr)
	}

	expectOut := []constraint.Transition{
		{start, 3}, // START -> I_-V
		{start, 4}, // START -> b
		{2, end},   // B-V -> END
		{2, 0},     // B-V -> O
		{4, 0},     // b -> O
		{5, 0},     // i_ -> O
		{5, 2},     // i_ -> B-V
		{3, 5},     // I_-V -> i_
	}
	for _, tr := range expectOut {
		_, ok := set[tr]
		assert.False(t, ok, "unexpected transition %v", tr)
	}

	// Every real label is reachable from START and reaches END through
	// some legal chain; spot-check with full-sequence validation below.
}

func TestAllowedTransitions_InvalidLabelAborts(t *testing.T) {
	a, err := label.NewAlphabet([]string{"O", "Q-N"})
	require.NoError(t, err)

	transitions, err := constraint.AllowedTransitions(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, label.ErrInvalidRole)
	assert.Nil(t, transitions, "no partial transition set may be returned")
	assert.Contains(t, err.Error(), `"Q-N"`)
}

func TestValidateRoleSequence(t *testing.T) {
	valid := []label.Role{
		label.Start, label.Outside, label.Begin, label.GapOutside,
		label.GapBegin, label.GapInsideStrong, label.InsideStrong, label.End,
	}
	require.NoError(t, constraint.ValidateRoleSequence(valid))

	// START, O, B, o, i_, I_, END fails exactly at step 4: o may not be
	// followed by i_ without an intervening b.
	invalid := []label.Role{
		label.Start, label.Outside, label.Begin, label.GapOutside,
		label.GapInsideStrong, label.InsideStrong, label.End,
	}
	err := constraint.ValidateRoleSequence(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 4")
	assert.Contains(t, err.Error(), "o -> i_")
}

func TestCheckLabelSequence(t *testing.T) {
	require.NoError(t, constraint.CheckLabelSequence([]string{
		"O", "B-V", "I_-V", "O-N-n.person",
	}))

	// Ends on B: no legal transition into END.
	err := constraint.CheckLabelSequence([]string{"O", "B-V"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 3")

	// Opens on i_: START cannot reach it.
	err = constraint.CheckLabelSequence([]string{"i_-N"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1")

	err = constraint.CheckLabelSequence([]string{"O", "X-N"})
	require.Error(t, err)
	assert.ErrorIs(t, err, label.ErrInvalidRole)
}

package constraint

import (
	"fmt"

	"github.com/lextag-ml/lextag/internal/label"
)

// Transition is a legal (from, to) pair of alphabet indices. The synthetic
// START and END positions use the alphabet's StartIndex and EndIndex.
type Transition struct {
	From int
	To   int
}

// IsRoleTransitionAllowed reports whether to may follow from under the
// "BbIiOo_~" tagging scheme.
//
// Both roles must belong to the closed role set; anything else returns an
// error (wrapping label.ErrInvalidRole) that names the offending role and
// the side of the transition it appeared on.
func IsRoleTransitionAllowed(from, to label.Role) (bool, error) {
	if _, err := label.ParseRole(string(from)); err != nil {
		return false, fmt.Errorf("from side of transition: %w", err)
	}
	if _, err := label.ParseRole(string(to)); err != nil {
		return false, fmt.Errorf("to side of transition: %w", err)
	}

	// Nothing transitions into START or out of END.
	if to == label.Start || from == label.End {
		return false, nil
	}
	if from == label.Start {
		return to == label.Outside || to == label.Begin, nil
	}
	if to == label.End {
		return from == label.Outside || from == label.InsideStrong || from == label.InsideWeak, nil
	}

	switch {
	// B and o open gap material or continue into a strong/weak inside span.
	case (from == label.Begin || from == label.GapOutside) &&
		(to == label.GapOutside || to == label.GapBegin || to == label.InsideStrong || to == label.InsideWeak):
		return true, nil
	// b must be followed by a gap inside span. Whether that span's
	// strong/weak variant matches the opening expression is not checked;
	// the scheme tracks roles only, not chunk identity.
	case from == label.GapBegin && (to == label.GapInsideStrong || to == label.GapInsideWeak):
		return true, nil
	// O continues outside or opens an expression.
	case from == label.Outside && (to == label.Outside || to == label.Begin):
		return true, nil
	// I_ and I~ continue into anything except a gap inside span, which
	// would need an intervening b.
	case (from == label.InsideStrong || from == label.InsideWeak) &&
		!(to == label.GapInsideStrong || to == label.GapInsideWeak):
		return true, nil
	// i_ and i~ continue into anything except a drop back to O or a fresh
	// top-level B; the enclosing expression is still open.
	case (from == label.GapInsideStrong || from == label.GapInsideWeak) &&
		!(to == label.Outside || to == label.Begin):
		return true, nil
	}
	return false, nil
}

// AllowedTransitions computes the full set of legal (from, to) index pairs
// over the alphabet augmented with its synthetic START and END positions.
//
// Every label's role is validated first; an invalid role aborts the build
// and no partial transition set is returned. The result never contains a
// pair into START or out of END, and is O(n²) in the augmented alphabet
// size, computed once at model construction.
func AllowedTransitions(a *label.Alphabet) ([]Transition, error) {
	roles := make([]label.Role, a.Size()+2)
	for i, l := range a.Labels() {
		r, err := label.ParseRole(label.Split(l).Role)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", l, err)
		}
		roles[i] = r
	}
	roles[a.StartIndex()] = label.Start
	roles[a.EndIndex()] = label.End

	var allowed []Transition
	for i, from := range roles {
		for j, to := range roles {
			ok, err := IsRoleTransitionAllowed(from, to)
			if err != nil {
				return nil, err
			}
			if ok {
				allowed = append(allowed, Transition{From: i, To: j})
			}
		}
	}
	return allowed, nil
}

// ValidateRoleSequence checks every consecutive pair in a full role
// sequence, which should include the synthetic START and END markers if the
// caller wants boundary transitions enforced.
//
// The first offending pair is reported with its 1-based step number, where
// step i is the transition from roles[i-1] to roles[i].
func ValidateRoleSequence(roles []label.Role) error {
	for i := 1; i < len(roles); i++ {
		ok, err := IsRoleTransitionAllowed(roles[i-1], roles[i])
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if !ok {
			return fmt.Errorf("step %d: transition %s -> %s is not allowed", i, roles[i-1], roles[i])
		}
	}
	return nil
}

// CheckLabelSequence validates a predicted lextag sequence, wrapping it in
// START/END before checking. Step numbers in the returned error count from
// 1 at the START -> labels[0] transition.
func CheckLabelSequence(labels []string) error {
	roles := make([]label.Role, 0, len(labels)+2)
	roles = append(roles, label.Start)
	for _, l := range labels {
		r, err := label.ParseRole(label.Split(l).Role)
		if err != nil {
			return fmt.Errorf("label %q: %w", l, err)
		}
		roles = append(roles, r)
	}
	roles = append(roles, label.End)
	return ValidateRoleSequence(roles)
}

package label

import (
	"errors"
	"fmt"
)

// ErrInvalidRole is returned when a role string falls outside the closed
// eight-symbol scheme (plus the synthetic START/END markers).
var ErrInvalidRole = errors.New("invalid role")

// Role is one of the eight boundary symbols of the "BbIiOo_~" tagging
// scheme, or a synthetic sequence marker. Uppercase roles describe tokens at
// the top level of the sentence; lowercase roles describe tokens inside the
// gap of a discontinuous expression. The suffix distinguishes strong ("_")
// from weak ("~") continuations.
type Role string

// The closed role set.
const (
	Outside         Role = "O"  // token belongs to no expression
	Begin           Role = "B"  // first token of an expression
	InsideStrong    Role = "I_" // strong continuation of an expression
	InsideWeak      Role = "I~" // weak continuation of an expression
	GapOutside      Role = "o"  // gap token belonging to no expression
	GapBegin        Role = "b"  // first token of an expression inside a gap
	GapInsideStrong Role = "i_" // strong continuation inside a gap
	GapInsideWeak   Role = "i~" // weak continuation inside a gap

	Start Role = "START" // synthetic sequence start, never predicted
	End   Role = "END"   // synthetic sequence end, never predicted
)

// AllRoles lists the eight predictable boundary roles, excluding the
// synthetic markers.
var AllRoles = []Role{
	Outside, Begin, InsideStrong, InsideWeak,
	GapOutside, GapBegin, GapInsideStrong, GapInsideWeak,
}

var validRoles = map[Role]bool{
	Outside: true, Begin: true, InsideStrong: true, InsideWeak: true,
	GapOutside: true, GapBegin: true, GapInsideStrong: true, GapInsideWeak: true,
	Start: true, End: true,
}

// ParseRole validates a role string against the closed set. Values outside
// the set are rejected at this boundary rather than deeper in the tables.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !validRoles[r] {
		return "", fmt.Errorf("%w %q", ErrInvalidRole, s)
	}
	return r, nil
}

// IsSynthetic reports whether the role is one of the START/END markers.
func (r Role) IsSynthetic() bool {
	return r == Start || r == End
}

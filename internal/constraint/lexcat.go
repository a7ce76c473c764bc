package constraint

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownUPOS is returned when a UPOS tag falls outside the fixed
// 17-tag universal set.
var ErrUnknownUPOS = errors.New("unknown UPOS tag")

// ErrUnknownLexcat is returned when a lexical category falls outside the
// fixed 21-category set.
var ErrUnknownLexcat = errors.New("unknown lexcat")

// UPOS is a universal part-of-speech tag, supplied externally per token.
type UPOS string

// The fixed universal part-of-speech set.
const (
	UPOSAdj   UPOS = "ADJ"
	UPOSAdp   UPOS = "ADP"
	UPOSAdv   UPOS = "ADV"
	UPOSAux   UPOS = "AUX"
	UPOSCconj UPOS = "CCONJ"
	UPOSDet   UPOS = "DET"
	UPOSIntj  UPOS = "INTJ"
	UPOSNoun  UPOS = "NOUN"
	UPOSNum   UPOS = "NUM"
	UPOSPart  UPOS = "PART"
	UPOSPron  UPOS = "PRON"
	UPOSPropn UPOS = "PROPN"
	UPOSPunct UPOS = "PUNCT"
	UPOSSconj UPOS = "SCONJ"
	UPOSSym   UPOS = "SYM"
	UPOSVerb  UPOS = "VERB"
	UPOSX     UPOS = "X"
)

// Lexcat is a lexical category code: a POS-like classification distinct
// from UPOS, used for multiword-expression-aware tagging.
type Lexcat string

// The fixed lexical category set.
const (
	LexcatAdj      Lexcat = "ADJ"
	LexcatAdv      Lexcat = "ADV"
	LexcatAux      Lexcat = "AUX"
	LexcatCconj    Lexcat = "CCONJ"
	LexcatDet      Lexcat = "DET"
	LexcatDisc     Lexcat = "DISC"
	LexcatInf      Lexcat = "INF"
	LexcatInfP     Lexcat = "INF.P"
	LexcatIntj     Lexcat = "INTJ"
	LexcatN        Lexcat = "N"
	LexcatNum      Lexcat = "NUM"
	LexcatP        Lexcat = "P"
	LexcatPP       Lexcat = "PP"
	LexcatPoss     Lexcat = "POSS"
	LexcatPron     Lexcat = "PRON"
	LexcatPronPoss Lexcat = "PRON.POSS"
	LexcatPunct    Lexcat = "PUNCT"
	LexcatSconj    Lexcat = "SCONJ"
	LexcatSym      Lexcat = "SYM"
	LexcatV        Lexcat = "V"
	LexcatX        Lexcat = "X"
)

// AllUPOS lists the 17 universal part-of-speech tags.
var AllUPOS = []UPOS{
	UPOSAdj, UPOSAdp, UPOSAdv, UPOSAux, UPOSCconj, UPOSDet, UPOSIntj,
	UPOSNoun, UPOSNum, UPOSPart, UPOSPron, UPOSPropn, UPOSPunct,
	UPOSSconj, UPOSSym, UPOSVerb, UPOSX,
}

// AllLexcats lists the 21 lexical categories.
var AllLexcats = []Lexcat{
	LexcatAdj, LexcatAdv, LexcatAux, LexcatCconj, LexcatDet, LexcatDisc,
	LexcatInf, LexcatInfP, LexcatIntj, LexcatN, LexcatNum, LexcatP,
	LexcatPP, LexcatPoss, LexcatPron, LexcatPronPoss, LexcatPunct,
	LexcatSconj, LexcatSym, LexcatV, LexcatX,
}

var validUPOS = func() map[UPOS]bool {
	m := make(map[UPOS]bool, len(AllUPOS))
	for _, u := range AllUPOS {
		m[u] = true
	}
	return m
}()

var validLexcats = func() map[Lexcat]bool {
	m := make(map[Lexcat]bool, len(AllLexcats))
	for _, lc := range AllLexcats {
		m[lc] = true
	}
	return m
}()

// ParseUPOS validates a UPOS string against the fixed 17-tag set.
func ParseUPOS(s string) (UPOS, error) {
	u := UPOS(s)
	if !validUPOS[u] {
		return "", fmt.Errorf("%w %q", ErrUnknownUPOS, s)
	}
	return u, nil
}

// ParseLexcat validates a lexcat string against the fixed 21-category set.
func ParseLexcat(s string) (Lexcat, error) {
	lc := Lexcat(s)
	if !validLexcats[lc] {
		return "", fmt.Errorf("%w %q", ErrUnknownLexcat, s)
	}
	return lc, nil
}

type uposLexcat struct {
	upos   UPOS
	lexcat Lexcat
}

// Known spelling mismatches that are nevertheless compatible.
var mismatchOK = map[uposLexcat]bool{
	{UPOSNoun, LexcatN}:     true,
	{UPOSPropn, LexcatN}:    true,
	{UPOSVerb, LexcatV}:     true,
	{UPOSAdp, LexcatP}:      true,
	{UPOSAdv, LexcatP}:      true,
	{UPOSSconj, LexcatP}:    true,
	{UPOSAdp, LexcatDisc}:   true,
	{UPOSAdv, LexcatDisc}:   true,
	{UPOSSconj, LexcatDisc}: true,
	{UPOSPart, LexcatPoss}:  true,
}

// allows is the per-pair compatibility predicate. It is pure: the answer
// depends only on the two tags, never on token context.
func allows(upos UPOS, lexcat Lexcat) bool {
	if strings.HasSuffix(string(lexcat), "!@") {
		// Designated always-compatible sentinel categories.
		return true
	}
	if string(upos) == string(lexcat) {
		return true
	}
	if mismatchOK[uposLexcat{upos, lexcat}] {
		return true
	}
	if strings.HasPrefix(string(lexcat), "INF") {
		if upos == UPOSSconj {
			return true
		}
		// INF with PART is fine only when the lemma is "to"; lemma
		// conditioned pairs are not active.
	}
	// AUX with V is fine only when the lemma is "be"; not active.
	if upos == UPOSPron {
		if lexcat == LexcatPron || lexcat == LexcatPronPoss {
			return true
		}
	}
	if lexcat == LexcatAdv {
		if upos == UPOSAdv || upos == UPOSPart {
			return true
		}
	}
	// ADP with CCONJ is fine only when the lemma is "versus"; not active.
	return false
}

// LexcatSet is a set of lexical categories.
type LexcatSet map[Lexcat]bool

// Compatibility maps every UPOS to the lexical categories an outside-role
// label may carry under it. Built once by BuildCompatibility and treated as
// read-only afterwards.
type Compatibility map[UPOS]LexcatSet

// BuildCompatibility evaluates the compatibility predicate over the full
// UPOS × lexcat product. Every UPOS maps to a non-empty set: at minimum the
// category spelled like the UPOS itself, or a fixed mismatch partner.
func BuildCompatibility() Compatibility {
	table := make(Compatibility, len(AllUPOS))
	for _, upos := range AllUPOS {
		table[upos] = make(LexcatSet)
	}
	for _, lexcat := range AllLexcats {
		for _, upos := range AllUPOS {
			if allows(upos, lexcat) {
				table[upos][lexcat] = true
			}
		}
	}
	return table
}

// Allows reports whether the lexcat is permitted under the UPOS.
func (c Compatibility) Allows(upos UPOS, lexcat Lexcat) bool {
	return c[upos][lexcat]
}

// Dump renders the full table as indented JSON with sorted categories, for
// audit logs and the CLI. The decoder never consumes this form.
func (c Compatibility) Dump() string {
	out := make(map[UPOS][]Lexcat, len(c))
	for upos, lexcats := range c {
		sorted := make([]Lexcat, 0, len(lexcats))
		for lc := range lexcats {
			sorted = append(sorted, lc)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		out[upos] = sorted
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		// Plain string maps cannot fail to marshal.
		panic(err)
	}
	return string(b)
}

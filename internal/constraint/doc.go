// Package constraint implements the rule tables that keep a lextag decoder
// inside the tagging scheme: the "BbIiOo_~" role-transition grammar, the
// UPOS-to-lexcat compatibility table, and the per-token constraint mask
// built from both.
//
// All tables are deterministic, built once, and immutable afterwards; they
// may be shared across any number of goroutines without synchronization.
// Nothing in this package is learned or probabilistic — a downstream
// Viterbi-style decoder consumes the tables as hard constraints.
package constraint

package constraint

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lextag-ml/lextag/internal/label"
	"github.com/lextag-ml/lextag/internal/parallel"
)

// Engine bundles the static constraint tables for one label alphabet: the
// transition set over the augmented alphabet, the UPOS/lexcat compatibility
// table, and a precomputed admissibility row per UPOS.
//
// An Engine is built once at model construction and immutable afterwards;
// concurrent use needs no synchronization.
type Engine struct {
	alphabet    *label.Alphabet
	transitions []Transition
	compat      Compatibility
	uposMasks   map[UPOS][]float32
	logger      *slog.Logger
	par         parallel.Config
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for the compatibility table audit dump.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithParallelism overrides how mask construction fans out across batch
// sequences.
func WithParallelism(cfg parallel.Config) Option {
	return func(e *Engine) {
		e.par = cfg
	}
}

// NewEngine builds all constraint tables for the alphabet. A label whose
// role is outside the closed role set aborts construction; no partial
// engine is ever returned.
func NewEngine(alphabet *label.Alphabet, opts ...Option) (*Engine, error) {
	e := &Engine{
		alphabet: alphabet,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		par:      parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}

	transitions, err := AllowedTransitions(alphabet)
	if err != nil {
		return nil, err
	}
	e.transitions = transitions
	e.compat = BuildCompatibility()
	e.logger.Info("allowed lexcats for each UPOS", "table", e.compat.Dump())
	e.uposMasks = buildUPOSMasks(alphabet, e.compat)

	return e, nil
}

// Alphabet returns the label alphabet the engine was built over.
func (e *Engine) Alphabet() *label.Alphabet {
	return e.alphabet
}

// Transitions returns a copy of the legal (from, to) index pairs over the
// augmented alphabet, for the decoder to prune its search with.
func (e *Engine) Transitions() []Transition {
	out := make([]Transition, len(e.transitions))
	copy(out, e.transitions)
	return out
}

// Compatibility returns the UPOS-to-lexcat table. Treat it as read-only.
func (e *Engine) Compatibility() Compatibility {
	return e.compat
}

// UPOSMask returns a copy of the per-label admissibility row for one UPOS:
// 1 where a label may be predicted for a token with that tag, 0 elsewhere.
func (e *Engine) UPOSMask(upos UPOS) ([]float32, error) {
	row, ok := e.uposMasks[upos]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownUPOS, upos)
	}
	out := make([]float32, len(row))
	copy(out, row)
	return out, nil
}

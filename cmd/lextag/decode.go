package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lextag-ml/lextag/constraint"
	"github.com/lextag-ml/lextag/decode"
	"github.com/lextag-ml/lextag/tensor"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Run constrained Viterbi decoding over scored examples",
	Long: `Reads a JSON batch of examples (from a file or stdin), each carrying
tokens, UPOS tags, optional lemmas, and per-token label scores. Scores are
masked with the UPOS constraints, then decoded under the transition
grammar. Prints one predicted lextag sequence per example.

Input format:

  {
    "examples": [
      {
        "tokens":    ["the", "dog"],
        "upos_tags": ["DET", "NOUN"],
        "lemmas":    ["the", "dog"],
        "logits":    [[...per-label scores...], [...]]
      }
    ]
  }`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDecode(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

type decodeExample struct {
	Tokens   []string    `json:"tokens"`
	UPOSTags []string    `json:"upos_tags"`
	Lemmas   []string    `json:"lemmas"`
	Logits   [][]float32 `json:"logits"`
}

type decodeBatch struct {
	Examples []decodeExample `json:"examples"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	alphabet, err := loadAlphabet(cfg.Labels)
	if err != nil {
		return err
	}

	var engineOpts []constraint.Option
	if logger := newLogger(cmd); logger != nil {
		engineOpts = append(engineOpts, constraint.WithLogger(logger))
	}
	engine, err := constraint.NewEngine(alphabet, engineOpts...)
	if err != nil {
		return err
	}

	var decoderOpts []decode.DecoderOption
	if !cfg.IncludeStartEndTransitions {
		decoderOpts = append(decoderOpts, decode.WithoutStartEndTransitions())
	}
	decoder, err := decode.NewDecoder(alphabet.Size(), engine.Transitions(), decoderOpts...)
	if err != nil {
		return err
	}

	batch, err := readBatch(args)
	if err != nil {
		return err
	}
	logits, lengths, err := batchLogits(batch, alphabet.Size())
	if err != nil {
		return err
	}

	if cfg.UPOSConstraints {
		batchUPOS := make([][]string, len(batch.Examples))
		var batchLemmas [][]string
		if cfg.LemmaConstraints {
			batchLemmas = make([][]string, len(batch.Examples))
		}
		for i, ex := range batch.Examples {
			batchUPOS[i] = ex.UPOSTags
			if batchLemmas != nil {
				batchLemmas[i] = ex.Lemmas
			}
		}
		mask, err := engine.ConstraintMask(batchUPOS, batchLemmas)
		if err != nil {
			return err
		}
		logits, err = decode.ApplyMask(logits, mask)
		if err != nil {
			return err
		}
	}

	paths, err := decoder.Best(logits, lengths)
	if err != nil {
		return err
	}

	for _, path := range paths {
		tags := make([]string, len(path))
		for t, idx := range path {
			l, ok := alphabet.Label(idx)
			if !ok {
				return fmt.Errorf("decoded index %d outside alphabet", idx)
			}
			tags[t] = l
		}
		fmt.Println(strings.Join(tags, " "))
	}
	return nil
}

func readBatch(args []string) (*decodeBatch, error) {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var batch decodeBatch
	if err := json.NewDecoder(in).Decode(&batch); err != nil {
		return nil, fmt.Errorf("parse batch: %w", err)
	}
	if len(batch.Examples) == 0 {
		return nil, fmt.Errorf("batch contains no examples")
	}
	return &batch, nil
}

// batchLogits pads the per-example score matrices into one (batch, maxLen,
// numLabels) tensor and returns the real sequence lengths.
func batchLogits(batch *decodeBatch, numLabels int) (*tensor.Dense, []int, error) {
	maxLen := 0
	lengths := make([]int, len(batch.Examples))
	for i, ex := range batch.Examples {
		if len(ex.Logits) != len(ex.UPOSTags) {
			return nil, nil, fmt.Errorf("example %d: %d score rows for %d tokens",
				i, len(ex.Logits), len(ex.UPOSTags))
		}
		lengths[i] = len(ex.Logits)
		if lengths[i] > maxLen {
			maxLen = lengths[i]
		}
	}
	if maxLen == 0 {
		return nil, nil, fmt.Errorf("batch contains no tokens")
	}

	logits, err := tensor.NewDense(tensor.Shape{len(batch.Examples), maxLen, numLabels})
	if err != nil {
		return nil, nil, err
	}
	for i, ex := range batch.Examples {
		for t, row := range ex.Logits {
			if len(row) != numLabels {
				return nil, nil, fmt.Errorf("example %d token %d: %d scores for %d labels",
					i, t, len(row), numLabels)
			}
			copy(logits.Row(i, t), row)
		}
	}
	return logits, lengths, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lextag-ml/lextag/constraint"
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions",
	Short: "List the legal label transitions for a vocabulary",
	Long: `Builds the full transition set over the label vocabulary plus the
synthetic START and END markers, and prints one "from -> to" pair per
line. This is the set a CRF or Viterbi decoder prunes its search with.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTransitions(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(transitionsCmd)
}

func runTransitions(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	alphabet, err := loadAlphabet(cfg.Labels)
	if err != nil {
		return err
	}
	transitions, err := constraint.AllowedTransitions(alphabet)
	if err != nil {
		return err
	}

	name := func(i int) string {
		switch i {
		case alphabet.StartIndex():
			return "START"
		case alphabet.EndIndex():
			return "END"
		}
		l, _ := alphabet.Label(i)
		return l
	}
	for _, tr := range transitions {
		fmt.Printf("%s -> %s\n", name(tr.From), name(tr.To))
	}
	fmt.Fprintf(os.Stderr, "%d legal transitions over %d labels\n", len(transitions), alphabet.Size())
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lextag-ml/lextag/constraint"
)

var lexcatsCmd = &cobra.Command{
	Use:   "lexcats",
	Short: "Dump the UPOS-to-lexcat compatibility table",
	Long: `Prints, for every universal part-of-speech tag, the lexical categories an
outside-role label may carry under it. This is the audit view of the table
the engine applies per token; the decoder itself never reads this form.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(constraint.BuildCompatibility().Dump())
	},
}

func init() {
	rootCmd.AddCommand(lexcatsCmd)
}

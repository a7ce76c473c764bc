package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lextag-ml/lextag/constraint"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check predicted lextag sequences against the tagging scheme",
	Long: `Reads one space-separated lextag sequence per line (from a file or stdin)
and checks every transition, including the implicit START and END
boundaries. The first illegal step of each bad sequence is reported.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runValidate(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(args []string) (bool, error) {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return false, err
		}
		defer f.Close()
		in = f
	}

	allValid := true
	lineNo := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := constraint.CheckLabelSequence(strings.Fields(line)); err != nil {
			fmt.Printf("line %d: %v\n", lineNo, err)
			allValid = false
			continue
		}
		fmt.Printf("line %d: ok\n", lineNo)
	}
	if err := scanner.Err(); err != nil {
		return false, err
	}
	return allValid, nil
}

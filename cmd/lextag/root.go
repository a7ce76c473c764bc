package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lextag-ml/lextag/internal/config"
	"github.com/lextag-ml/lextag/label"
)

var rootCmd = &cobra.Command{
	Use:   "lextag",
	Short: "Lextag is a constraint engine for STREUSLE-style sequence tagging",
	Long: `Lextag builds the rule tables that keep a lextag decoder inside the
"BbIiOo_~" tagging scheme: legal label transitions, UPOS-to-lexcat
compatibility, and per-token constraint masks.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("labels", "", "Path to the label vocabulary (one lextag per line)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log constraint tables and diagnostics to stderr")
}

// loadConfig merges the config file (if any) with command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if labels, _ := cmd.Flags().GetString("labels"); labels != "" {
		cfg.Labels = labels
	}
	return cfg, nil
}

// newLogger returns a stderr text logger when --verbose is set and nil
// otherwise.
func newLogger(cmd *cobra.Command) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return nil
}

// loadAlphabet reads a label vocabulary file, one lextag per line. Blank
// lines are skipped; line order fixes label indices.
func loadAlphabet(path string) (*label.Alphabet, error) {
	if path == "" {
		return nil, fmt.Errorf("no label vocabulary given (use --labels or a config file)")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels: %w", err)
	}
	defer f.Close()

	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		labels = append(labels, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return label.NewAlphabet(labels)
}

// Command namegen generates batches of names for fictional cultures,
// either by slot-filling culture recipes or by walking a phonetic
// transition model, with global uniqueness enforced across runs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/onomast/internal/config"
	"github.com/talgya/onomast/internal/engine"
)

var (
	cfgPath   string
	cultureID string
	count     int
	dataDir   string
	outputDir string
	statePath string
	seed      int64
	overrides map[string]string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "namegen",
	Short: "Procedural name generation for fictional cultures",
	Long: `namegen invents names and short language fragments for fictional
cultures. Template cultures compose names from per-culture vocabulary
pools; phonetic cultures synthesize words from a transition model
trained on invented-language examples. Every accepted name is committed
to a persistent ledger so no name is ever emitted twice.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "YAML config file (defaults apply when omitted)")
	rootCmd.Flags().StringVar(&cultureID, "culture", "", "culture to generate names for (required)")
	rootCmd.Flags().IntVar(&count, "count", 10, "number of names to generate")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "vocabulary directory (overrides config)")
	rootCmd.Flags().StringVar(&outputDir, "out", "", "output directory (overrides config)")
	rootCmd.Flags().StringVar(&statePath, "state", "", "state database path (overrides config)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	rootCmd.Flags().StringToStringVar(&overrides, "override", nil,
		"pin a template slot, e.g. --override dominion=Fire --override cycle_event='The Long Thaw'")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.MarkFlagRequired("culture")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if statePath != "" {
		cfg.StatePath = statePath
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if count < 1 {
		return fmt.Errorf("count must be >= 1, got %d", count)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	names, err := eng.GenerateBatch(cultureID, count, overrides)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Printf("\nGenerated %s names for %s (%s on record).\n",
		humanize.Comma(int64(len(names))), cultureID, humanize.Comma(int64(eng.Ledger().Len())))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardsmith/cardsmith/internal/config"
	"github.com/cardsmith/cardsmith/internal/logging"
	"github.com/cardsmith/cardsmith/internal/pipeline"
)

func newGenerateCommand() *cobra.Command {
	var (
		input    string
		outDir   string
		langs    []string
		maxTags  int
		seed     int64
		packPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Read a catalogue CSV and write card and caption sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

			// Environment supplies values for flags the user did not set.
			flags := cmd.Flags()
			if !flags.Changed("input") && cfg.Generator.Input != "" {
				input = cfg.Generator.Input
			}
			if !flags.Changed("outdir") {
				outDir = cfg.Generator.OutDir
			}
			if !flags.Changed("lang") {
				langs = cfg.Generator.Langs
			}
			if !flags.Changed("max-tags") {
				maxTags = cfg.Generator.MaxTags
			}
			if !flags.Changed("seed") {
				seed = cfg.Generator.Seed
			}
			if !flags.Changed("pack") && cfg.Generator.Pack != "" {
				packPath = cfg.Generator.Pack
			}

			if input == "" {
				return fmt.Errorf("--input is required (or set CARDSMITH_INPUT)")
			}

			result, err := pipeline.Run(cmd.Context(), pipeline.Options{
				Input:    input,
				OutDir:   outDir,
				Langs:    langs,
				MaxTags:  maxTags,
				Seed:     seed,
				PackPath: packPath,
			}, slog.Default())
			if err != nil {
				return err
			}

			slog.Info("wrote output",
				"outdir", outDir,
				"rows", result.Rows,
				"captions", result.Captions,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "catalogue CSV path (required)")
	cmd.Flags().StringVar(&outDir, "outdir", "out", "output directory, created if absent")
	cmd.Flags().StringSliceVar(&langs, "lang", []string{"en", "fa"}, "comma-separated language codes")
	cmd.Flags().IntVar(&maxTags, "max-tags", 18, "maximum hashtags per record")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible output (0 = time-based)")
	cmd.Flags().StringVar(&packPath, "pack", "", "copy-pack YAML overriding CTA/emoji/hashtag/currency tables")

	return cmd
}

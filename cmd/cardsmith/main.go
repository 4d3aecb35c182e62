package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/cardsmith/cardsmith/internal/core/langs" // Register all languages
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	rootCmd := &cobra.Command{
		Use:   "cardsmith",
		Short: "Generate multilingual product-card copy from a catalogue CSV",
		Long: `Cardsmith reads a product catalogue CSV and emits per-language marketing
copy: card rows for bulk design-template import, social captions, and a
run manifest. The whole run is a single forward pass over the input.`,
	}

	rootCmd.AddCommand(
		newGenerateCommand(),
		newLanguagesCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

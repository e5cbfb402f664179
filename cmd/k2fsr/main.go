package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/k2stream/k2fsr/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "k2fsr",
		Short: "KCipher-2 FSR-A register simulator",
		Long: `k2fsr simulates FSR-A, the first feedback shift register of the
KCipher-2 stream cipher (RFC 7008).

It derives the field multipliers from a profile's polynomial and
exponents, builds the packed alpha lookup table, and steps the
five-word register with the table-driven feedback recurrence.

Field profiles (beta by default) are configurable, so alternate
polynomials can be explored side by side.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewCoefficientsCommand(),
		cli.NewTableCommand(),
		cli.NewRunCommand(),
		cli.NewAnalyzeCommand(),
		cli.NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}

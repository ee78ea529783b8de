package main

import (
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

// configureLogging installs the process logger from the persistent flags.
// Quiet wins over verbose when both are set.
func configureLogging(flags *pflag.FlagSet) {
	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelWarn
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

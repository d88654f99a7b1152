package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/typeline/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "typeline",
	Short: "Typeline plays typewriter text effects from declarative scripts",
	Long:  `Typeline types and deletes text one character at a time at human-feeling speeds, in the terminal or over an HTTP event stream, driven by simple YAML scripts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// newLogger builds the application logger from the persistent flags.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

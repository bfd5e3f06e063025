package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	dir     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "silt",
	Short: "Typed access to document metadata (frontmatter, YAML, JSON)",
	Long: `Silt sifts typed values out of loosely-typed document metadata.
It reads Markdown frontmatter, YAML and JSON documents and answers typed
queries (string, bool, int, time, list) with default-falling-back semantics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// sourceDir resolves the directory to read from: --dir or the CWD.
func sourceDir() string {
	if dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}
	return wd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "d", "", "Source directory (defaults to CWD)")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Watch the source directory for metadata changes",
	Long: `Watch the source directory and print an event line for every
document change matching the glob pattern. Stops on Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		svc, err := silt.Open(sourceDir(),
			silt.WithMustExist(true),
			silt.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Error initializing silt", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, pattern)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		fmt.Println("Watching... (Ctrl-C to stop)")
		for e := range events {
			fmt.Printf("%s %s %s\n", time.Unix(e.Timestamp, 0).Format(time.TimeOnly), e.Type, e.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

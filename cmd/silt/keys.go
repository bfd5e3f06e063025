package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys [id]",
	Short: "List the metadata keys of a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := silt.Open(sourceDir(),
			silt.WithMustExist(true),
			silt.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Error initializing silt", err)
		}

		m, err := svc.Metadata(context.Background(), args[0])
		if err != nil {
			fatal("Error reading document", err)
		}

		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Println(k)
		}
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

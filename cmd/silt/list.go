package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	filterTag string
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List documents in the source directory",
	Long: `List all documents whose ID matches the glob pattern (doublestar
syntax, e.g. "posts/**"). Without a pattern, everything is listed.`,
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

		docs, err := svc.Documents(context.Background(), pattern)
		if err != nil {
			fatal("Error listing documents", err)
		}

		var filtered []silt.Document
		for _, doc := range docs {
			if filterTag != "" {
				tags := silt.GetList[string](doc.Metadata, "tags", nil)
				hasTag := false
				for _, t := range tags {
					if t == filterTag {
						hasTag = true
						break
					}
				}
				if !hasTag {
					continue
				}
			}
			filtered = append(filtered, doc)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, doc := range filtered {
			title := silt.FormatString(doc.Metadata, "title", "", func(s string) string {
				return "- " + s
			})
			fmt.Printf("%s %s\n", doc.ID, title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Filter documents by tag")
}

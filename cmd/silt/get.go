package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

var (
	getAs      string
	getDefault string
)

var getCmd = &cobra.Command{
	Use:   "get [id] [key]",
	Short: "Read a typed metadata value",
	Long: `Read one metadata key of a document, coerced to the requested type.
Missing keys and wrong-shaped values print the default instead of failing,
matching the library's accessor semantics.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, key := args[0], args[1]

		svc, err := silt.Open(sourceDir(),
			silt.WithMustExist(true),
			silt.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Error initializing silt", err)
		}

		m, err := svc.Metadata(context.Background(), id)
		if err != nil {
			fatal("Error reading document", err)
		}

		switch getAs {
		case "string":
			fmt.Println(silt.GetString(m, key, getDefault))
		case "bool":
			def, _ := strconv.ParseBool(getDefault)
			fmt.Println(silt.GetBool(m, key, def))
		case "int":
			def, _ := strconv.Atoi(getDefault)
			fmt.Println(silt.GetInt(m, key, def))
		case "float":
			def, _ := strconv.ParseFloat(getDefault, 64)
			fmt.Println(silt.GetFloat(m, key, def))
		case "time":
			t := silt.GetTime(m, key, time.Time{})
			if t.IsZero() {
				fmt.Println(getDefault)
				return
			}
			fmt.Println(t.Format(time.RFC3339))
		case "list":
			list := silt.GetList[string](m, key, nil)
			for _, item := range list {
				fmt.Println(item)
			}
		case "doc":
			doc := silt.GetDocument(m, key)
			if doc == nil {
				fmt.Println(getDefault)
				return
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(doc); err != nil {
				fatal("Error encoding JSON", err)
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown type %q (want string|bool|int|float|time|list|doc)\n", getAs)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getAs, "as", "string", "Target type: string|bool|int|float|time|list|doc")
	getCmd.Flags().StringVar(&getDefault, "default", "", "Default printed when the key is absent or uncoercible")
}

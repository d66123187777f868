/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/spf13/cobra"
)

var outputMode string

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show a single bookmark as JSON or CSV",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("To show bookmark use following command:\n\twebmark show {code}")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		b, ok := collection.Get(args[0])
		if !ok {
			return &store.UnknownCodeError{Code: args[0]}
		}
		return outputBookmark(os.Stdout, outputMode, b)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&outputMode, "mode", "m", "json", "Output mode: json,csv")
}

func outputBookmark(w io.Writer, mode string, b store.Bookmark) error {
	switch mode {
	case "json":
		return json.NewEncoder(w).Encode(b)
	case "csv":
		cw := csv.NewWriter(w)
		cw.Write([]string{"Code", "URL", "Description"})
		cw.Write([]string{b.Code, b.URL, b.Description})
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown output mode: %s", mode)
	}
}

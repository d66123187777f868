/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bookmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		printBookmarks(os.Stdout, collection)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printBookmarks(w io.Writer, c *store.Collection) {
	if c.Len() == 0 {
		fmt.Fprintln(w, "\tIt's empty here!  :(  ")
		return
	}
	for _, b := range c.All() {
		fmt.Fprintln(w, b)
	}
}

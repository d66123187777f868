/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"errors"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/spf13/cobra"
)

var force bool

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <code> <url> <description>",
	Short: "Add a bookmark",
	Long: `Adds a bookmark under a short code of your choosing.

Adding a code that already exists is an error unless -f is given, in
which case the old entry is overwritten in place.

Example:
webmark add hn https://news.ycombinator.com "Hacker News"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("To add bookmark use following command:\n\twebmark add {code} {url} {description}")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		return collection.Add(store.Bookmark{Code: args[0], URL: args[1], Description: args[2]}, force)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVarP(&force, "force", "f", false, "Override an existing bookmark with the same code")
}

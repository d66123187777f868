/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"errors"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/cli/browser"
	"github.com/spf13/cobra"
)

// openURL is a package variable so tests can intercept the browser side
// effect.
var openURL = browser.OpenURL

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open <code>",
	Short: "Open a bookmark in the default browser",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("To open bookmark use following command:\n\twebmark open {code}")
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
		return openURL(b.URL)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}

/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <code>",
	Short: "Remove a bookmark",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("To remove bookmark use following command:\n\twebmark rm {code}")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		return collection.Remove(args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"errors"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <code>",
	Short: "Edit a bookmark's url and description",
	Long: `Opens a small form to change the url and description of an existing
bookmark. The code is the bookmark's identity and cannot be changed
here; use rm and add for that. The entry keeps its position in the
listing.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("To edit bookmark use following command:\n\twebmark edit {code}")
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

		err = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("URL").Value(&b.URL),
			huh.NewText().Title("Description").Value(&b.Description),
		)).Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		return collection.Add(b, true)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

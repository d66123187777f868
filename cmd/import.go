/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

var importForce bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import bookmarks from a browser bookmarks.html export",
	Long: `Reads a Netscape-format bookmarks file (the format every browser's
"export bookmarks" produces) and adds each link to the collection.

Codes are derived from the link's host, with a numeric suffix when the
host is already taken. Links whose url is already bookmarked are
skipped unless -f is given.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("To import bookmarks use following command:\n\twebmark import {bookmarks.html}")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return errors.Join(fmt.Errorf("unable to parse %s", args[0]), err)
		}

		collection, err := openCollection(cmd)
		if err != nil {
			return err
		}

		taken := map[string]bool{}
		stored := map[string]bool{}
		for _, b := range collection.All() {
			taken[b.Code] = true
			stored[b.URL] = true
		}

		added, skipped := 0, 0
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			if href == "" {
				return
			}
			if stored[href] && !importForce {
				skipped++
				return
			}
			collection.Put(store.Bookmark{
				Code:        deriveCode(href, taken),
				URL:         href,
				Description: strings.TrimSpace(sel.Text()),
			})
			stored[href] = true
			added++
		})

		if added > 0 {
			if err := collection.Flush(); err != nil {
				return err
			}
		}
		fmt.Printf("Imported %d bookmarks (%d skipped)\n", added, skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Import links whose url is already bookmarked")
}

// deriveCode picks a code for an imported url: the host without a www.
// prefix, suffixed with -2, -3, ... while taken. The chosen code is marked
// taken.
func deriveCode(rawURL string, taken map[string]bool) string {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = strings.TrimPrefix(u.Hostname(), "www.")
	}
	if host == "" {
		host = "link"
	}
	code := host
	for i := 2; taken[code]; i++ {
		code = fmt.Sprintf("%s-%d", host, i)
	}
	taken[code] = true
	return code
}

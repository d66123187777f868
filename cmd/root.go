/*
Copyright © 2025 Webmark Authors
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/DmitriyMoseev/webmark/store"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cli/browser"
	"github.com/spf13/cobra"
)

const defaultStoragePath = "~/.webmark"

var storagePath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webmark",
	Short: "A simple bookmark manager from the commandline",
	Long: `Webmark keeps short code -> url bookmarks in a plain text file
(~/.webmark by default, one space-delimited record per line) and opens
them in your default browser. Run it without a subcommand for an
interactive view of your bookmarks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection(cmd)
		if err != nil {
			return err
		}

		t := table.New()
		t.Border(lipgloss.NormalBorder())
		t.Headers("Code", "URL", "Description")

		input := textinput.New()
		input.Placeholder = "Search / Filter"

		m := browseModel{collection: collection, table: t, input: input, currentIndex: 1, mode: NORMAL}
		m = m.updateTable()

		prog := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := prog.Run(); err != nil {
			fmt.Println("Error running program:", err)
			os.Exit(1)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). User-facing failures print
// their message and exit 1, never a stack trace.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage-path", defaultStoragePath, "Location of the bookmark file")
}

// resolveStoragePath applies the precedence flag > WEBMARK_STORAGE_PATH >
// default. The environment variable overrides the default only, never an
// explicitly passed flag.
func resolveStoragePath(flagChanged bool, flagValue string) string {
	path := flagValue
	if !flagChanged {
		if env := os.Getenv("WEBMARK_STORAGE_PATH"); env != "" {
			path = env
		}
	}
	return store.ExpandHome(path)
}

func openCollection(cmd *cobra.Command) (*store.Collection, error) {
	return store.Open(resolveStoragePath(cmd.Flags().Changed("storage-path"), storagePath))
}

type mode string

var (
	NORMAL mode = "NORMAL"
	SEARCH mode = "SEARCH"
)

type browseModel struct {
	collection   *store.Collection
	input        textinput.Model
	table        *table.Table
	rows         []store.Bookmark
	currentIndex int
	width        int
	height       int
	mode         mode
	rowsCount    int
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) updateTable() browseModel {
	bookmarks := filterBookmarks(m.collection.All(), m.input.Value())

	if m.rowsCount != 0 {
		m.table.ClearRows()
		m.table.Data(table.NewStringData())
	}

	m.rows = bookmarks
	m.rowsCount = len(bookmarks)
	m.currentIndex = 1

	for _, b := range bookmarks {
		m.table.Row(b.Code, b.URL, b.Description)
	}

	return m
}

// filterBookmarks keeps the bookmarks whose code, url or description
// contains the query, case-insensitively. An empty query keeps everything.
func filterBookmarks(bookmarks []store.Bookmark, query string) []store.Bookmark {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return bookmarks
	}
	matched := []store.Bookmark{}
	for _, b := range bookmarks {
		haystack := strings.ToLower(b.Code + " " + b.URL + " " + b.Description)
		if strings.Contains(haystack, query) {
			matched = append(matched, b)
		}
	}
	return matched
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.Width(msg.Width).Height(msg.Height - 3)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.mode == NORMAL {
				return m, tea.Quit
			}
		case "esc":
			m.mode = NORMAL
			m.input.Blur()
			m = m.updateTable()
		case "enter":
			switch m.mode {
			case NORMAL:
				if m.currentIndex <= m.rowsCount {
					url := m.rows[m.currentIndex-1].URL
					if err := browser.OpenURL(url); err != nil {
						log.Println("unable to open browser:", err)
					}
				}
			case SEARCH:
				m.mode = NORMAL
				m.input.Blur()
				m = m.updateTable()
			}
		case "i", "/":
			if m.mode == NORMAL {
				m.mode = SEARCH
				cmds = append(cmds, m.input.Focus())
				return m, tea.Batch(cmds...)
			}
		case "j", "down":
			if m.mode == NORMAL && m.currentIndex+1 <= m.rowsCount {
				m.currentIndex += 1
			}
		case "k", "up":
			if m.mode == NORMAL && m.currentIndex-1 != 0 {
				m.currentIndex -= 1
			}
		}
	}

	if m.mode == SEARCH && m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m browseModel) View() string {
	m.table.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == 0:
			return headerStyle
		case row == m.currentIndex && m.mode == NORMAL:
			return selectedStyle
		case row == m.currentIndex && m.mode == SEARCH:
			return inactiveSelectedStyle
		default:
			return lipgloss.NewStyle()
		}
	})

	statusBar := ""
	switch m.mode {
	case NORMAL:
		statusBar = normalModeStyle.Render(" " + string(m.mode) + " ")
	case SEARCH:
		statusBar = searchModeStyle.Render(" " + string(m.mode) + " ")
	}

	statusBar = lipgloss.PlaceHorizontal(m.width, lipgloss.Left, statusBar, lipgloss.WithWhitespaceBackground(statusBackground))

	rendered := lipgloss.PlaceVertical(m.height-2, lipgloss.Top, m.table.Render())

	return lipgloss.JoinVertical(lipgloss.Left, m.input.View(), rendered, statusBar)
}

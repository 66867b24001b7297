package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mirrorkit/mirrorkit/pkg/entries"
	"github.com/mirrorkit/mirrorkit/pkg/inspect"
)

// exploreCommand creates the explore command for interactive browsing.
func (c *CLI) exploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <file>",
		Short: "Browse a document's entries interactively",
		Long: `Explore opens a JSON, TOML, or YAML document in an interactive browser.
Navigate with the arrow keys, descend into containers with enter, and go
back up with backspace.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := loadValue(args[0])
			if err != nil {
				return err
			}

			model := newExploreModel(args[0], value)
			if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
				return err
			}
			return nil
		},
	}

	return cmd
}

// =============================================================================
// ExploreModel - Interactive entry browser
// =============================================================================

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreFrame is one level of the browsing stack: a container's entries
// plus the cursor position within them.
type exploreFrame struct {
	key     string
	entries []entries.Entry
	cursor  int
	offset  int
}

// exploreModel is the bubbletea model for the entry browser.
type exploreModel struct {
	title  string
	stack  []exploreFrame
	height int
}

func newExploreModel(title string, root any) exploreModel {
	return exploreModel{
		title:  title,
		stack:  []exploreFrame{{key: title, entries: entries.Of(root)}},
		height: 15,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := &m.stack[len(m.stack)-1]

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if top.cursor > 0 {
				top.cursor--
				if top.cursor < top.offset {
					top.offset = top.cursor
				}
			}
		case "down", "j":
			if top.cursor < len(top.entries)-1 {
				top.cursor++
				if top.cursor >= top.offset+m.height {
					top.offset = top.cursor - m.height + 1
				}
			}
		case "enter", "l", "right":
			if top.cursor < len(top.entries) {
				e := top.entries[top.cursor]
				sub := entries.Of(e.Value)
				if len(sub) > 0 {
					m.stack = append(m.stack, exploreFrame{key: e.Key.String(), entries: sub})
				}
			}
		case "backspace", "esc", "h", "left":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
			} else {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	top := m.stack[len(m.stack)-1]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.breadcrumb()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ descend  ⌫ back  q quit"))
	b.WriteString("\n\n")

	if len(top.entries) == 0 {
		b.WriteString(listDimStyle.Render("  (no entries)"))
		b.WriteString("\n")
		return b.String()
	}

	end := top.offset + m.height
	if end > len(top.entries) {
		end = len(top.entries)
	}

	for i := top.offset; i < end; i++ {
		e := top.entries[i]

		cursor := "  "
		if i == top.cursor {
			cursor = "▸ "
		}

		var detail string
		if sub := entries.Of(e.Value); len(sub) > 0 {
			detail = StyleType.Render(describe(e.Value))
		} else {
			detail = listDimStyle.Render(inspect.String(e.Value))
		}

		line := fmt.Sprintf("%s%-20s %s", cursor, e.Key.String(), detail)
		if i == top.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", top.cursor+1, len(top.entries))))

	return b.String()
}

// breadcrumb joins the keys on the browsing stack into a path line.
func (m exploreModel) breadcrumb() string {
	parts := make([]string, len(m.stack))
	for i, f := range m.stack {
		parts[i] = f.key
	}
	return strings.Join(parts, " "+iconArrow+" ")
}

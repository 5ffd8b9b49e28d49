package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pypiscope/pkg/pypi"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// packageListModel is the bubbletea model for interactive package selection.
// It scrolls a window of Height rows over the listing; enter selects the
// package under the cursor and quits.
type packageListModel struct {
	Username string
	Packages []pypi.PackageSummary
	Cursor   int
	Selected *pypi.PackageSummary
	Height   int
	Offset   int
}

// newPackageListModel creates a package list model for the given listing.
func newPackageListModel(username string, packages []pypi.PackageSummary) packageListModel {
	return packageListModel{
		Username: username,
		Packages: packages,
		Height:   15,
	}
}

func (m packageListModel) Init() tea.Cmd {
	return nil
}

func (m packageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Packages)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			pkg := m.Packages[m.Cursor]
			m.Selected = &pkg
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 5
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m packageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Packages published by " + m.Username))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ show detail  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Packages))
	for i := m.Offset; i < end; i++ {
		pkg := m.Packages[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		b.WriteString(cursor + style.Render(pkg.Name))
		if pkg.Summary != "" {
			b.WriteString(listDimStyle.Render("  " + pkg.Summary))
		}
		b.WriteString("\n")
	}

	if len(m.Packages) > m.Height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("…"))
	}
	return b.String()
}

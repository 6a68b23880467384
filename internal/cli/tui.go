package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Key Bindings
// =============================================================================

// listKeyMap holds the package browser's key bindings.
type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	Unknown key.Binding
	Quit    key.Binding
}

func defaultListKeyMap() listKeyMap {
	return listKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Unknown: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "toggle unknown"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Unknown, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Home, k.End}, {k.Unknown, k.Quit}}
}

// =============================================================================
// PackageListModel - Interactive package browser
// =============================================================================

// packageRow is one package as shown in the browser.
type packageRow struct {
	Manager  string
	Name     string
	Version  string
	Licenses string
	Unknown  bool
}

// packageRows flattens results into browser rows in report order.
func packageRows(results []adapterReport) []packageRow {
	var rows []packageRow
	for _, res := range results {
		for _, p := range res.Packages {
			rows = append(rows, packageRow{
				Manager:  res.Adapter,
				Name:     p.Name,
				Version:  p.Version,
				Licenses: strings.Join(p.LicenseNames(), licenseSeparator),
				Unknown:  p.HasUnknownLicense(),
			})
		}
	}
	return rows
}

// PackageListModel is the bubbletea model for browsing a license report.
// Pressing "u" toggles between all packages and those without a license.
type PackageListModel struct {
	Rows        []packageRow
	Cursor      int
	Height      int
	Offset      int
	UnknownOnly bool

	keys listKeyMap
	help help.Model
}

// NewPackageListModel creates a new package list model.
func NewPackageListModel(rows []packageRow) PackageListModel {
	return PackageListModel{
		Rows:   rows,
		Height: 15,
		keys:   defaultListKeyMap(),
		help:   help.New(),
	}
}

// visible returns the rows shown under the current filter.
func (m PackageListModel) visible() []packageRow {
	if !m.UnknownOnly {
		return m.Rows
	}
	var out []packageRow
	for _, r := range m.Rows {
		if r.Unknown {
			out = append(out, r)
		}
	}
	return out
}

func (m PackageListModel) Init() tea.Cmd {
	return nil
}

func (m PackageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.visible())
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case key.Matches(msg, m.keys.Down):
			if m.Cursor < n-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case key.Matches(msg, m.keys.Home):
			m.Cursor, m.Offset = 0, 0
		case key.Matches(msg, m.keys.End):
			if n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case key.Matches(msg, m.keys.Unknown):
			m.UnknownOnly = !m.UnknownOnly
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-7, 5)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m PackageListModel) View() string {
	var b strings.Builder

	title := "Dependencies"
	if m.UnknownOnly {
		title = "Dependencies without a license"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")

	rows := m.visible()
	if len(rows) == 0 {
		if m.UnknownOnly {
			b.WriteString(StyleSuccess.Render("  Every package declares a license"))
		} else {
			b.WriteString(listDimStyle.Render("  No packages"))
		}
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(rows))
	cells := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		r := rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		cells = append(cells, []string{cursor, r.Name, r.Version, r.Licenses, r.Manager})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Package", "Version", "Licenses", "Manager").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			idx := m.Offset + row
			if idx >= len(rows) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 4 {
				base = base.Foreground(colorDim)
			} else if rows[idx].Unknown {
				base = base.Foreground(colorYellow)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(rows))))

	return b.String()
}

// browsePackages runs the package browser until the user quits.
func browsePackages(results []adapterReport) error {
	_, err := tea.NewProgram(NewPackageListModel(packageRows(results)), tea.WithAltScreen()).Run()
	return err
}

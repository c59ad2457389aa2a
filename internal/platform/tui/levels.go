package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/levels"
)

// LevelsModel lists the level set with its targets and time budgets.
type LevelsModel struct {
	source    string
	infos     []levels.Info
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewLevelsModel creates a levels listing for infos read from source.
func NewLevelsModel(source string, infos []levels.Info, width, height int) LevelsModel {
	m := LevelsModel{
		source: source,
		infos:  infos,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m *LevelsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Pellets", Width: 8},
		{Title: "Power", Width: 6},
		{Title: "Target", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Status", Width: max(m.width-47, 10)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(LevelRows(m.infos)),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// LevelRows formats level infos as table rows.
func LevelRows(infos []levels.Info) []table.Row {
	rows := make([]table.Row, len(infos))
	for i, info := range infos {
		if info.Err != nil {
			rows[i] = table.Row{fmt.Sprintf("%d", info.Level), "-", "-", "-", info.Clock(), info.Err.Error()}
			continue
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", info.Level),
			fmt.Sprintf("%d", info.Pellets),
			fmt.Sprintf("%d", info.Powers),
			fmt.Sprintf("%d", info.Target),
			info.Clock(),
			"ok",
		}
	}
	return rows
}

// Init initializes the levels model.
func (m LevelsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the levels listing.
func (m LevelsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the levels listing.
func (m LevelsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("LEVELS"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.source, m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.table.View()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelsModel) IsQuitting() bool {
	return m.quitting
}

// RunLevels runs the levels screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunLevels(source string, infos []levels.Info, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewLevelsModel(source, infos, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LevelsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

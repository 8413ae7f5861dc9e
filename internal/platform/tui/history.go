package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rps-arcade/internal/game"
	"github.com/vovakirdan/rps-arcade/internal/rps"
)

// HistoryView lists the rounds of the current session in a table.
type HistoryView struct {
	entries []game.Entry
	table   table.Model
	width   int
	height  int
}

// NewHistoryView creates an empty history view.
func NewHistoryView(width, height int) HistoryView {
	v := HistoryView{width: width, height: height}
	v.table = v.createTable()
	return v
}

func (v *HistoryView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "You", Width: 10},
		{Title: "Computer", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Score", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-8, 3)), // Leave room for title, summary and help
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

// SetEntries replaces the listed rounds; the newest is shown first.
func (v *HistoryView) SetEntries(entries []game.Entry) {
	v.entries = entries
	rows := make([]table.Row, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.N),
			e.Round.Player.String(),
			e.Round.Computer.String(),
			resultText(e.Round.Outcome),
			fmt.Sprintf("%d:%d", e.Player, e.Computer),
		})
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

func resultText(o rps.Outcome) string {
	switch o {
	case rps.Win:
		return "win"
	case rps.Lose:
		return "lose"
	default:
		return "draw"
	}
}

// Len returns the number of listed rounds.
func (v HistoryView) Len() int {
	return len(v.entries)
}

// Resize rebuilds the table for a new terminal size.
func (v *HistoryView) Resize(width, height int) {
	v.width, v.height = width, height
	v.table = v.createTable()
	v.SetEntries(v.entries)
}

// Update scrolls the table.
func (v HistoryView) Update(msg tea.Msg) (HistoryView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the history screen.
func (v HistoryView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ROUND HISTORY", v.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(v.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No rounds played yet.")))
	} else {
		b.WriteString(boxStyle.Render(v.table.View()))
		b.WriteString("\n")

		wins, losses, draws := 0, 0, 0
		for _, e := range v.entries {
			switch e.Round.Outcome {
			case rps.Win:
				wins++
			case rps.Lose:
				losses++
			default:
				draws++
			}
		}
		b.WriteString(fmt.Sprintf("Won %d  Lost %d  Drawn %d", wins, losses, draws))
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render("up/down: scroll  |  h/esc: back to game  |  q: quit"))
	return b.String()
}

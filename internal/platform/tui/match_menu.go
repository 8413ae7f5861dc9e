package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/rps-arcade/internal/config"
)

// MatchMenuModel lets users choose how many wins take the match.
type MatchMenuModel struct {
	presets   []config.MatchPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *config.MatchPreset
	quitting  bool
}

// NewMatchMenuModel creates a match length selector with current preselected.
func NewMatchMenuModel(current config.MatchPreset, width, height int) MatchMenuModel {
	m := MatchMenuModel{
		presets:   config.MatchPresets,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range m.presets {
		if p == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m MatchMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MatchMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MatchMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		p := m.presets[m.cursor]
		m.selected = &p
	}
	return m, nil
}

// View renders the selector.
func (m MatchMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("R O C K   P A P E R   S C I S S O R S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select match length:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-9s %s", cursor, p, p.Describe())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc/Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil while still choosing.
func (m MatchMenuModel) Selected() *config.MatchPreset {
	return m.selected
}

// IsQuitting returns true if the user left the menu without choosing.
func (m MatchMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMatchMenu shows the selector and returns the chosen preset.
// ok is false when the user quit.
func RunMatchMenu(current config.MatchPreset, width, height int) (preset config.MatchPreset, ok bool, err error) {
	p := tea.NewProgram(
		matchMenuRunner{NewMatchMenuModel(current, width, height)},
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	r, isRunner := final.(matchMenuRunner)
	if !isRunner || r.Selected() == nil {
		return "", false, nil
	}
	return *r.Selected(), true, nil
}

// matchMenuRunner quits the program once a preset is chosen.
type matchMenuRunner struct {
	MatchMenuModel
}

func (r matchMenuRunner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.MatchMenuModel.Update(msg)
	r.MatchMenuModel = next.(MatchMenuModel)
	if r.Selected() != nil {
		return r, tea.Quit
	}
	return r, cmd
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

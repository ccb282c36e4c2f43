package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/registry"
	"github.com/vovakirdan/tui-goblins/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorGold.ANSI()))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorFire.ANSI()))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorDim.ANSI()))
)

// MenuItem is a selectable level.
type MenuItem struct {
	LevelID   string
	Title     string
	HighScore int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered levels with their best scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	levels := registry.List()
	items := make([]MenuItem, 0, len(levels))
	for _, l := range levels {
		item := MenuItem{LevelID: l.ID, Title: l.Title}
		if store != nil {
			if high, err := store.HighScore(l.ID); err == nil {
				item.HighScore = high
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G H O S T S   &   G O B L I N S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a level", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No levels installed"), m.width))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		line := fmt.Sprintf("  %-24s", item.Title)
		if item.HighScore > 0 {
			line += menuDimStyle.Render(fmt.Sprintf(" best %d", item.HighScore))
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> ") + strings.TrimPrefix(line, "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

func (m MenuModel) IsQuitting() bool      { return m.quitting }
func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring styled text by its
// printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the level picker and returns the choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.LevelID = m.Selected().LevelID
	default:
		result.Quit = true
	}
	return result
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quick/internal/registry"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the demo picker.
type MenuModel struct {
	items     []registry.DemoInfo
	cursor    int
	width     int
	height    int
	keys      MenuKeyMap
	help      help.Model
	quitting  bool
	selected  *registry.DemoInfo // set when the user picks a demo
	openSaves bool               // set when the user asks for the save browser
}

// NewMenuModel creates a menu listing every registered demo.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Saves):
		m.openSaves = true
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
	b.WriteString(centerText(titleStyle.Render("Q U I C K"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a demo", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No demos registered.", m.width))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %s", item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers text within width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	DemoID     string
	WantsSaves bool
	Quit       bool
}

// Result reports what the user chose.
func (m MenuModel) Result() MenuResult {
	switch {
	case m.openSaves:
		return MenuResult{WantsSaves: true}
	case m.selected != nil:
		return MenuResult{DemoID: m.selected.ID}
	default:
		return MenuResult{Quit: true}
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}

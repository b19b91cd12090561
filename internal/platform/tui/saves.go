package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quick/internal/storage"
)

// SavesKeyMap defines the key bindings for the save browser.
type SavesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SavesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SavesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultSavesKeyMap returns default key bindings.
func DefaultSavesKeyMap() SavesKeyMap {
	return SavesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete slot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SavesModel is the Bubble Tea model for browsing and clearing save slots.
type SavesModel struct {
	store     *storage.Store
	entries   []storage.Entry
	table     table.Model
	help      help.Model
	keys      SavesKeyMap
	width     int
	height    int
	err       error
	quitting  bool
	goingBack bool
}

// NewSavesModel creates a save browser over store, which may be nil.
func NewSavesModel(store *storage.Store, width, height int) SavesModel {
	m := SavesModel{
		store:  store,
		keys:   DefaultSavesKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *SavesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Slot", Width: 24},
		{Title: "Size", Width: 8},
		{Title: "Updated", Width: 18},
	}
	if avail := m.width - 4 - 8 - 18 - 6; avail > columns[0].Width {
		columns[0].Width = min(avail, 48)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // room for title and help
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

// load reads the slot list and refreshes the table rows.
func (m *SavesModel) load() {
	m.entries = nil
	if m.store != nil {
		m.entries, m.err = m.store.Entries()
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.Key,
			fmt.Sprintf("%dB", e.Size),
			e.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoBottom()
	}
}

// Init initializes the save browser.
func (m SavesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the save browser.
func (m SavesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Delete):
			if m.store != nil && len(m.entries) > 0 {
				m.err = m.store.Delete(m.entries[m.table.Cursor()].Key)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the save browser.
func (m SavesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("SAVE SLOTS", m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(box.Render("Error: " + m.err.Error()))
	case len(m.entries) == 0:
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(box.Render(empty.Render("No saves yet.\nPlay a demo to create one!")))
	default:
		b.WriteString(box.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunSaves runs the save browser.
// Returns true if user wants to go back to the menu, false if quitting.
func RunSaves(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewSavesModel(store, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(SavesModel)
	if !ok {
		return false, nil
	}
	return m.goingBack, nil
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quick/internal/engine"
	"github.com/vovakirdan/quick/internal/input"
	"github.com/vovakirdan/quick/internal/render"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model that hosts one engine.
type Model struct {
	engine   *engine.Engine
	keyboard *input.Keyboard
	mouse    *input.Mouse
	surface  *render.CellSurface
	keys     KeyMap
	help     help.Model

	id       string // used for screenshot names
	shotDir  string
	width    int
	height   int
	status   string
	quitting bool
	err      error
}

// NewModel creates a model for e. The keyboard and mouse must be the devices
// registered with the engine's input manager; either may be nil.
func NewModel(id string, e *engine.Engine, kb *input.Keyboard, mouse *input.Mouse) Model {
	var game input.KeyMap
	if kb != nil {
		game = kb.Keys()
	}
	shots := ""
	if home, err := os.UserHomeDir(); err == nil {
		shots = filepath.Join(home, ".quick", "screenshots")
	}

	return Model{
		engine:   e,
		keyboard: kb,
		mouse:    mouse,
		surface:  render.NewCellSurface(int(e.Width()), int(e.Height())),
		keys:     DefaultKeyMap(game),
		help:     help.New(),
		id:       id,
		shotDir:  shots,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine.FrameTime())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey runs host keys and forwards everything else to the keyboard.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Mute):
		m.engine.Mute()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	if m.keyboard != nil {
		m.keyboard.Press(msg)
	}
	return m, nil
}

// handleMouse maps terminal cells to surface pixels; each cell is two
// pixels tall and the pointer sits on the upper one.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if m.mouse == nil || tea.MouseEvent(msg).IsWheel() {
		return
	}
	x, y := float64(msg.X), float64(msg.Y*2)
	switch msg.Action {
	case tea.MouseActionPress:
		m.mouse.Set(true, x, y)
	case tea.MouseActionRelease:
		m.mouse.Set(false, x, y)
	default:
		m.mouse.Move(x, y)
	}
}

// handleTick runs one engine tick and schedules the next one, shortened by
// the time this tick took.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := time.Now()
	if err := m.engine.Tick(m.surface); err != nil {
		m.err = err
		m.engine.Logger().Error("tick failed", "error", err)
		return m, tea.Quit
	}
	return m, tickCmd(m.engine.NextDelay(time.Since(start)))
}

// saveScreenshot writes the current frame as a PNG and returns a status
// line.
func (m Model) saveScreenshot() string {
	if m.shotDir == "" {
		return "screenshot: no home directory"
	}
	img := render.NewImageSurface(m.surface.Width(), m.surface.Height())
	for y := range m.surface.Height() {
		for x := range m.surface.Width() {
			if c := m.surface.Cell(x, y); c.Set {
				img.FillRect(x, y, 1, 1, c.Color)
			}
		}
	}

	name := fmt.Sprintf("%s_%s.png", m.id, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := img.SavePNG(path); err != nil {
		m.engine.Logger().Warn("screenshot failed", "path", path, "error", err)
		return "screenshot failed"
	}
	m.engine.Logger().Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the surface and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.surface.Width(), (m.surface.Height()+1)/2+1
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(RenderSurface(m.surface))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("  ")
	}
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Err returns the error that stopped the engine, if any.
func (m Model) Err() error {
	return m.err
}

// Run hosts e in the terminal until the user quits or a tick fails.
func Run(id string, e *engine.Engine, kb *input.Keyboard, mouse *input.Mouse) error {
	model := NewModel(id, e, kb, mouse)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

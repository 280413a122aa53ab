package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tensio/internal/config"
	"github.com/vovakirdan/tensio/internal/core"
	"github.com/vovakirdan/tensio/internal/games/tensio"
)

// helpRows is the terminal height reserved under the playfield.
const helpRows = 1

// Model is the Bubble Tea model hosting one Tensio controller.
type Model struct {
	ctrl   *tensio.Controller
	canvas *core.Canvas
	keys   KeyMap
	help   help.Model

	fps        int
	maxW, maxH int
	width      int // terminal columns
	height     int // terminal rows

	gen      int  // current frame loop
	blurred  bool // terminal reported focus loss
	quitting bool
}

// NewModel creates a model for a terminal of width×height cells. Call
// Start before handing it to a program.
func NewModel(ctrl *tensio.Controller, cfg config.Config, width, height int) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := Model{
		ctrl:   ctrl,
		keys:   NewKeyMap(cfg.Keys),
		help:   h,
		fps:    cfg.Display.FPS,
		maxW:   cfg.Display.MaxWidth,
		maxH:   cfg.Display.MaxHeight,
		width:  width,
		height: height,
	}
	if m.fps <= 0 {
		m.fps = config.Default().Display.FPS
	}
	cols, rows := m.fieldSize()
	m.canvas = core.NewCanvas(core.NewScreen(cols, rows), tensio.FieldWidth, tensio.FieldHeight)
	return m
}

// Start shows the controller on the model's canvas. It fails with
// tensio.ErrNoSurface when the terminal is too small to draw anything.
func (m *Model) Start() error {
	if err := m.ctrl.Show(m.canvas); err != nil {
		return err
	}
	m.gen++
	return nil
}

// fieldSize fits the 8:3 playfield into the terminal. Cells are about
// twice as tall as they are wide, so the grid itself is 16:3.
func (m Model) fieldSize() (cols, rows int) {
	cols = m.width
	rows = m.height - helpRows
	if m.maxW > 0 {
		cols = min(cols, m.maxW)
	}
	if m.maxH > 0 {
		rows = min(rows, m.maxH)
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}

	if cols*3 <= rows*16 {
		rows = cols * 3 / 16
	} else {
		cols = rows * 16 / 3
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return cols, rows
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	if !m.ctrl.Running() {
		return nil
	}
	return frameCmd(m.fps, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.dispatch(core.ActionActivate)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.blurred = false
		cmd := m.resume()
		return m, cmd

	case tea.BlurMsg:
		m.blurred = true
		m.ctrl.Hide()
		return m, nil

	case FrameMsg:
		if msg.Gen != m.gen || !m.ctrl.Running() {
			return m, nil
		}
		m.ctrl.Frame(msg.Time)
		return m, frameCmd(m.fps, m.gen)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m.dispatch(m.keys.Action(msg))
}

// dispatch applies a semantic input to the controller.
func (m Model) dispatch(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionExit:
		m.ctrl.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionActivate:
		m.ctrl.Activate()
	}
	return m, nil
}

// handleResize rescales the canvas to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	cols, rows := m.fieldSize()
	m.canvas.Resize(cols, rows)
	if m.canvas.Empty() {
		m.ctrl.Hide()
		return m, nil
	}
	m.ctrl.Draw()
	cmd := m.resume()
	return m, cmd
}

// resume restarts a stopped frame loop unless the terminal is unfocused or
// too small.
func (m *Model) resume() tea.Cmd {
	if m.blurred || m.quitting || m.ctrl.Running() {
		return nil
	}
	if err := m.Start(); err != nil {
		return nil
	}
	return frameCmd(m.fps, m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if !m.ctrl.Running() {
		footer = pausedStyle.Render("paused") + "  " + footer
	}

	if m.canvas.Empty() {
		return "terminal too small\n" + footer
	}

	body := RenderScreen(m.canvas.Screen()) + "\n" + footer
	if m.width > 0 {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

// Run starts the Bubble Tea program for a terminal of width×height cells
// and blocks until the player quits.
func Run(ctrl *tensio.Controller, cfg config.Config, width, height int) error {
	model := NewModel(ctrl, cfg, width, height)
	if err := model.Start(); err != nil {
		return err
	}
	defer ctrl.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}

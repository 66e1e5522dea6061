package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/viz"
)

// Model is an interactive viewer for a computed frame: rotate and zoom the
// camera, toggle the field mode, and retrace on every scene change. The
// frame is recomputed only on such changes, never per keypress that merely
// moves the camera.
type Model struct {
	snap   scene.Snapshot
	params scene.Params
	frame  *scene.Frame
	cam    *viz.Camera

	width, height int
}

func New(snap scene.Snapshot, params scene.Params) Model {
	return Model{
		snap:   snap,
		params: params,
		frame:  scene.Compute(snap, params),
		cam:    viz.NewCamera(),
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const step = 0.15
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.cam.Rotate(-step, 0)
	case "right", "l":
		m.cam.Rotate(step, 0)
	case "up", "k":
		m.cam.Rotate(0, -step)
	case "down", "j":
		m.cam.Rotate(0, step)
	case "+", "=":
		m.cam.ZoomIn()
	case "-", "_":
		m.cam.ZoomOut()
	case "m":
		if m.snap.Mode == field.Electric {
			m.snap.Mode = field.Gravity
		} else {
			m.snap.Mode = field.Electric
		}
		m.frame = scene.Compute(m.snap, m.params)
	case "r":
		m.params.Seed++
		m.frame = scene.Compute(m.snap, m.params)
	}
	return m, nil
}

func (m Model) View() string {
	h := m.height - 2
	if h < 4 {
		h = 4
	}
	canvas := viz.NewCanvas(m.width, h)
	viz.Render(canvas, m.cam, m.frame, m.snap.Sources, m.snap.Mode)

	status := fmt.Sprintf(" %s | sources %d | lines %d | samples %d",
		m.snap.Mode, len(m.snap.Sources), len(m.frame.Lines), len(m.frame.Samples))
	if m.frame.Equilibrium.Found() {
		e := m.frame.Equilibrium
		status += fmt.Sprintf(" | eq (%.2f, %.2f, %.2f) %s", e.Pos.X, e.Pos.Y, e.Pos.Z, e.Status)
	}
	hints := viz.Dim.Render(" arrows rotate · +/- zoom · m mode · r reseed · q quit")

	return canvas.String() + viz.StatusBar.Render(status) + "\n" + hints
}

// Package term hosts a sprig registry in a terminal using Bubble Tea.
//
// Terminal cells are the surface units: a widget at RectLTRB(2, 1, 20, 4)
// covers columns 2–19 and rows 1–3. Mouse positions are reported at cell
// centers, so edge exclusion works the same as in a window.
package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/sprig"
)

// Model is a Bubble Tea model driving a sprig registry. Mouse and key
// messages become sprig input events; every View is a paint request.
type Model struct {
	driver  *sprig.Driver
	surface *Surface
	lastErr error
}

// NewModel creates a model for reg with an initial 80×24 grid; the first
// WindowSizeMsg resizes it.
func NewModel(reg *sprig.Registry) *Model {
	m := &Model{surface: NewSurface(80, 24)}
	m.driver = sprig.NewDriver(reg, m.surface)
	m.driver.SetErrorHandler(sprig.ErrorHandlerFunc(func(err error) {
		m.lastErr = err
	}))
	return m
}

// Surface returns the cell surface painted by View.
func (m *Model) Surface() *Surface { return m.surface }

// Driver returns the driver fed by Update.
func (m *Model) Driver() *sprig.Driver { return m.driver }

// Err returns the most recent frame or resize failure, if any.
func (m *Model) Err() error { return m.lastErr }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update translates one Bubble Tea message into sprig input events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.driver.Closed() {
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		_ = m.driver.Handle(sprig.ResizeEvent(msg.Width, msg.Height))

	case tea.MouseMsg:
		x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5
		switch msg.Action {
		case tea.MouseActionMotion:
			_ = m.driver.Handle(sprig.MoveEvent(x, y))
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				break
			}
			_ = m.driver.Handle(sprig.MoveEvent(x, y))
			_ = m.driver.Handle(sprig.PressEvent(x, y))
		case tea.MouseActionRelease:
			_ = m.driver.Handle(sprig.MoveEvent(x, y))
			_ = m.driver.Handle(sprig.ReleaseEvent())
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			_ = m.driver.Handle(sprig.TeardownEvent())
			return m, tea.Quit
		}
		for _, ev := range keyEvents(msg) {
			_ = m.driver.Handle(ev)
		}
	}
	return m, nil
}

// keyEvents maps a key message to sprig events. Backspace produces a
// key-down followed by a backspace character, the way window systems
// deliver it.
func keyEvents(msg tea.KeyMsg) []sprig.InputEvent {
	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]sprig.InputEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, sprig.CharEvent(r))
		}
		return evs
	case tea.KeySpace:
		return []sprig.InputEvent{sprig.CharEvent(' ')}
	case tea.KeyBackspace:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyBackspace), sprig.CharEvent(sprig.CharBackspace)}
	case tea.KeyDelete:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyDelete)}
	case tea.KeyEnter:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyEnter)}
	case tea.KeyTab:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyTab)}
	case tea.KeyEsc:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyEscape)}
	case tea.KeyLeft:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyArrowLeft)}
	case tea.KeyRight:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyArrowRight)}
	case tea.KeyUp:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyArrowUp)}
	case tea.KeyDown:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyArrowDown)}
	case tea.KeyHome:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyHome)}
	case tea.KeyEnd:
		return []sprig.InputEvent{sprig.KeyEvent(sprig.KeyEnd)}
	}
	return nil
}

// View paints the registry and returns the styled grid.
func (m *Model) View() string {
	if m.driver.Closed() {
		return ""
	}
	if err := m.driver.Paint(); err != nil {
		return m.surface.Render() + "\n" + err.Error()
	}
	return m.surface.Render()
}

// Run starts a full-screen Bubble Tea program for reg with mouse tracking
// and blocks until the user quits with ctrl+c. The registry is torn down
// before Run returns.
func Run(reg *sprig.Registry) error {
	m := NewModel(reg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	if !m.driver.Closed() {
		_ = m.driver.Handle(sprig.TeardownEvent())
	}
	return err
}

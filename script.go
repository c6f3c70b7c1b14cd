package sprig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScriptStep is a single action in a script.
type ScriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// Script is a parsed sequence of input actions. It drives a Game frame by
// frame through a ScriptRunner, or a Driver headlessly through Events.
type Script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// LoadScript parses a YAML script:
//
//	steps:
//	  - {action: click, x: 40, y: 35}
//	  - {action: type, text: hi}
//	  - {action: key, key: backspace}
//	  - {action: screenshot, label: after-edit}
//
// Actions: move, press, release, click, drag, type, key, resize, paint,
// wait, screenshot, quit.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &s, nil
}

func (st ScriptStep) validate() error {
	switch st.Action {
	case "move", "press", "release", "click", "drag", "type", "paint",
		"wait", "screenshot", "quit":
		return nil
	case "key":
		if _, ok := ParseKey(st.Key); !ok || st.Key == "unknown" {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	case "resize":
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("invalid size %dx%d", st.Width, st.Height)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// Events flattens the script into input events for Driver.Replay. Screenshot
// steps become paint requests, quit becomes teardown and wait is skipped.
func (s *Script) Events() []InputEvent {
	var out []InputEvent
	for _, st := range s.Steps {
		switch st.Action {
		case "move":
			out = append(out, MoveEvent(st.X, st.Y))
		case "press":
			out = append(out, MoveEvent(st.X, st.Y), PressEvent(st.X, st.Y))
		case "release":
			out = append(out, ReleaseEvent())
		case "click":
			out = append(out, MoveEvent(st.X, st.Y), PressEvent(st.X, st.Y), ReleaseEvent())
		case "drag":
			out = append(out, MoveEvent(st.X, st.Y), PressEvent(st.X, st.Y),
				MoveEvent(st.ToX, st.ToY), ReleaseEvent())
		case "type":
			for _, ch := range st.Text {
				out = append(out, CharEvent(ch))
			}
		case "key":
			k, _ := ParseKey(st.Key)
			out = append(out, KeyEvent(k))
		case "resize":
			out = append(out, ResizeEvent(st.Width, st.Height))
		case "paint", "screenshot":
			out = append(out, PaintEvent())
		case "quit":
			out = append(out, TeardownEvent())
		}
	}
	return out
}

// ScriptRunner sequences a Script across frames of a Game. Attach it with
// Game.SetScriptRunner.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// NewScriptRunner returns a runner positioned at the first step.
func NewScriptRunner(s *Script) *ScriptRunner {
	return &ScriptRunner{steps: s.Steps}
}

// SetScriptRunner attaches a runner. Its step method is called from
// Game.Update before input is processed each frame.
func (g *Game) SetScriptRunner(r *ScriptRunner) {
	g.runner = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		g.InjectMove(st.X, st.Y)
	case "press":
		g.InjectPress(st.X, st.Y)
	case "release":
		g.InjectRelease()
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		g.InjectDrag(st.X, st.Y, st.ToX, st.ToY, frames)
	case "type":
		g.InjectText(st.Text)
	case "key":
		k, _ := ParseKey(st.Key)
		g.InjectKey(k)
	case "resize":
		g.injectQueue = append(g.injectQueue, ResizeEvent(st.Width, st.Height))
	case "screenshot":
		g.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		g.Quit()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}

package sprig

import (
	"strings"
	"testing"
)

const reverseScript = `
steps:
  - {action: click, x: 85, y: 35}
  - {action: type, text: hi}
  - {action: wait, frames: 2}
  - {action: screenshot, label: typed}
  - {action: quit}
`

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(reverseScript))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Steps) != 5 {
		t.Fatalf("steps = %d, want 5", len(s.Steps))
	}
	if s.Steps[0].Action != "click" || s.Steps[0].X != 85 || s.Steps[3].Label != "typed" {
		t.Errorf("steps = %+v", s.Steps)
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "steps: [", "parse script"},
		{"empty", "steps: []", "no steps"},
		{"unknown action", "steps: [{action: jump}]", `unknown action "jump"`},
		{"unknown key", "steps: [{action: key, key: f13}]", `unknown key "f13"`},
		{"unknown key name", "steps: [{action: key, key: unknown}]", "unknown key"},
		{"bad resize", "steps: [{action: resize, width: 0, height: 10}]", "invalid size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestScriptEvents(t *testing.T) {
	s, err := LoadScript([]byte(reverseScript))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, ev := range s.Events() {
		got = append(got, ev.String())
	}
	want := "move(85,35) press(85,35) release char('h') char('i') paint teardown"
	if strings.Join(got, " ") != want {
		t.Errorf("events = %s\nwant     %s", strings.Join(got, " "), want)
	}
}

func TestScriptEvents_ReplayReverse(t *testing.T) {
	s, err := LoadScript([]byte(`
steps:
  - {action: click, x: 85, y: 35}
  - {action: type, text: abc}
  - {action: key, key: backspace}
  - {action: paint}
`))
	if err != nil {
		t.Fatal(err)
	}
	reg, input, output := reverseUI()
	rs := NewRecordingSurface(600, 600)
	if err := NewDriver(reg, rs).Replay(s.Events()); err != nil {
		t.Fatal(err)
	}
	if input.Text() != "ab" {
		t.Errorf("input = %q, want ab", input.Text())
	}
	if got, _ := rs.TextIn(output.Area()); got != "ba" {
		t.Errorf("label painted %q, want ba", got)
	}
}

func TestScriptRunner(t *testing.T) {
	s, err := LoadScript([]byte(reverseScript))
	if err != nil {
		t.Fatal(err)
	}
	reg, input, _ := reverseUI()
	g := headlessGame(reg)
	r := NewScriptRunner(s)
	g.SetScriptRunner(r)

	frame := func() {
		r.step(g)
		g.processInjectedInput()
	}

	// click: move, press, release
	for i := 0; i < 3; i++ {
		frame()
	}
	if !input.IsFocused() {
		t.Fatal("click should focus the text box")
	}
	// type: two characters
	frame()
	frame()
	if input.Text() != "hi" {
		t.Fatalf("Text = %q", input.Text())
	}
	// wait two frames, then screenshot, then quit
	frame()
	frame()
	frame()
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "typed" {
		t.Errorf("screenshot queue = %v", g.screenshotQueue)
	}
	frame()
	if !g.quit {
		t.Error("quit step should request quit")
	}
	if !r.Done() {
		t.Error("runner should be done after the last step")
	}
}

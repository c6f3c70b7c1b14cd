// Package sprig is a minimal retained-mode widget toolkit for [Ebitengine].
//
// Sprig keeps an ordered [Registry] of widgets, turns raw pointer and
// keyboard input into hover, click and focus transitions, and repaints every
// widget on each paint request.
//
// # Quick start
//
//	reg := sprig.NewRegistry()
//	input := sprig.NewTextBox(reg, sprig.RectLTRB(20, 20, 150, 50))
//	output := sprig.NewLabel(reg, sprig.RectLTRB(20, 60, 150, 85), "")
//	input.WhenChange(func() { output.SetText(reverse(input.Text())) })
//
//	cfg, err := sprig.LoadRunConfig("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := sprig.Run(reg, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Dispatch rules
//
// Registration order is paint order and focus-scan order. A widget's
// rectangle excludes its edges. A press inside a widget clicks and focuses
// it and blurs every other focused widget; the click callback fires on the
// following release, wherever the pointer is. Keyboard input goes to the
// first focused widget only.
//
// # Hosts
//
// [Run] and [Game] host a registry in an Ebitengine window. The term package
// hosts one in a terminal through Bubble Tea. Any other host can feed
// [InputEvent] values to a [Driver] and supply its own [Surface].
//
// [Ebitengine]: https://ebitengine.org
package sprig

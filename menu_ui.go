package main

import "github.com/ebitenui/ebitenui"

// NewMenuUI builds the main menu shown before and between sessions.
func NewMenuUI(g *Game) *ebitenui.UI {
	w, h := g.FieldSize()
	panel := newPanel(w/2, h/3)
	panel.AddChild(newLabel("ARMAGEDDON"))
	panel.AddChild(newLabel("Move with WASD, fire with Space, Esc pauses"))
	panel.AddChild(newButton("Click to Begin", g.startSession))
	panel.AddChild(newButton("Quit", func() {
		g.quit = true
	}))
	return centered(panel)
}

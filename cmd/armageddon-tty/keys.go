package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/armageddon/system"
)

// Terminals report key presses and repeats but never releases, so a press
// counts as held for a few frames and auto-repeat keeps it alive.
const keyHoldFrames = 8

type action int

const (
	actionLeft action = iota
	actionRight
	actionUp
	actionDown
	actionFire
	actionQuit
	actionCount
)

type heldKeys struct {
	hold   int
	frames [actionCount]int
}

func newHeldKeys(hold int) *heldKeys {
	return &heldKeys{hold: hold}
}

func (k *heldKeys) press(a action) {
	k.frames[a] = k.hold
}

func (k *heldKeys) held(a action) bool {
	return k.frames[a] > 0
}

// tick ages every held key by one frame.
func (k *heldKeys) tick() {
	for i := range k.frames {
		if k.frames[i] > 0 {
			k.frames[i]--
		}
	}
}

func (k *heldKeys) input() system.Input {
	return system.Input{
		Left:  k.held(actionLeft),
		Right: k.held(actionRight),
		Up:    k.held(actionUp),
		Down:  k.held(actionDown),
		Fire:  k.held(actionFire),
		Quit:  k.held(actionQuit),
	}
}

func actionFor(ev *tcell.EventKey) (action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft, true
	case tcell.KeyRight:
		return actionRight, true
	case tcell.KeyUp:
		return actionUp, true
	case tcell.KeyDown:
		return actionDown, true
	case tcell.KeyEscape:
		return actionQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return actionLeft, true
		case 'd', 'D', 'l':
			return actionRight, true
		case 'w', 'W', 'k':
			return actionUp, true
		case 's', 'S', 'j':
			return actionDown, true
		case ' ':
			return actionFire, true
		case 'q', 'Q':
			return actionQuit, true
		}
	}
	return 0, false
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dotmaze/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// directions are mutually exclusive within one frame.
var directions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// MapKey translates a key message to an action.
// Returns the action and whether it's a quit request. Keys without a
// binding map to ActionAny so they can still dismiss messages.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case " ", "p":
		return core.ActionPause, false
	}

	return core.ActionAny, false
}

// MapKeyToFrame updates an input frame based on a key message.
// The most recent direction within a frame wins.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isDirection(action) {
		for _, d := range directions {
			delete(frame.Actions, d)
		}
	}
	frame.Set(action)
	return isQuit
}

func isDirection(a core.Action) bool {
	for _, d := range directions {
		if a == d {
			return true
		}
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

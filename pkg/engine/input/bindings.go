package input

import (
	"fmt"
	"sort"
	"strings"
)

// Action represents a high-level intent in the preview window.
type Action int

const (
	ActionNone Action = iota

	ActionQuit
	ActionZoomIn    // Zoom in (increase tile size)
	ActionZoomOut   // Zoom out (decrease tile size)
	ActionZoomReset // Back to the default tile size
	ActionToggleActors
)

// Bindings maps device codes (e.g. "escape", "numpad_add") to actions.
// Multiple codes may point to the same Action.
type Bindings map[string]Action

// DefaultBindings returns a fresh copy of the built-in key map
func DefaultBindings() Bindings {
	return Bindings{
		// Quit
		"escape": ActionQuit,
		"q":      ActionQuit,

		// Zoom (fixed bindings, not rebindable)
		"=":               ActionZoomIn,
		"numpad_add":      ActionZoomIn,
		"-":               ActionZoomOut,
		"numpad_subtract": ActionZoomOut,
		"0":               ActionZoomReset,
		"numpad_0":        ActionZoomReset,

		"a": ActionToggleActors,
	}
}

// reserved codes keep their binding regardless of Bind calls
var reserved = map[string]bool{
	"escape":          true,
	"=":               true,
	"numpad_add":      true,
	"-":               true,
	"numpad_subtract": true,
	"0":               true,
	"numpad_0":        true,
}

// Lookup returns the action bound to code, or ActionNone.
func (b Bindings) Lookup(code string) Action {
	if act, ok := b[code]; ok {
		return act
	}
	return ActionNone
}

// Bind replaces all non-reserved codes of action with a single code.
// An empty code just clears them.
func (b Bindings) Bind(action Action, code string) {
	for c, a := range b {
		if a == action && !reserved[c] {
			delete(b, c)
		}
	}
	if code != "" && !reserved[code] {
		b[code] = action
	}
}

// ByAction returns the bindings grouped by action.
func (b Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b {
		result[act] = append(result[act], code)
	}
	// Stable ordering for help output.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// actionIDs are the names accepted by ParseAction
var actionIDs = map[Action]string{
	ActionQuit:         "quit",
	ActionZoomIn:       "zoom-in",
	ActionZoomOut:      "zoom-out",
	ActionZoomReset:    "zoom-reset",
	ActionToggleActors: "toggle-actors",
}

// Actions returns every bindable action in help order
func Actions() []Action {
	return []Action{ActionQuit, ActionZoomIn, ActionZoomOut, ActionZoomReset, ActionToggleActors}
}

// ParseAction returns the action with the given id, e.g. "toggle-actors"
func ParseAction(id string) (Action, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for act, name := range actionIDs {
		if name == id {
			return act, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", id)
}

// Describe lists the bindings one action per line, e.g. "Quit: escape, q".
// Actions without a code are left out.
func (b Bindings) Describe() []string {
	byAction := b.ByAction()
	var lines []string
	for _, act := range Actions() {
		codes := byAction[act]
		if len(codes) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", ActionName(act), strings.Join(codes, ", ")))
	}
	return lines
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Reset Zoom"
	case ActionToggleActors:
		return "Toggle Actors"
	default:
		return "None"
	}
}

package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mazestalker/pkg/engine/input"
)

// keyCodes translates Ebiten keys to binding codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyA: "a", ebiten.KeyB: "b", ebiten.KeyC: "c", ebiten.KeyD: "d",
	ebiten.KeyE: "e", ebiten.KeyF: "f", ebiten.KeyG: "g", ebiten.KeyH: "h",
	ebiten.KeyI: "i", ebiten.KeyJ: "j", ebiten.KeyK: "k", ebiten.KeyL: "l",
	ebiten.KeyM: "m", ebiten.KeyN: "n", ebiten.KeyO: "o", ebiten.KeyP: "p",
	ebiten.KeyQ: "q", ebiten.KeyR: "r", ebiten.KeyS: "s", ebiten.KeyT: "t",
	ebiten.KeyU: "u", ebiten.KeyV: "v", ebiten.KeyW: "w", ebiten.KeyX: "x",
	ebiten.KeyY: "y", ebiten.KeyZ: "z",

	ebiten.KeyEscape:         "escape",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.Key0:              "0",
	ebiten.KeyNumpad0:        "numpad_0",
}

// HasKey reports whether the window can produce the binding code
func HasKey(code string) bool {
	for _, c := range keyCodes {
		if c == code {
			return true
		}
	}
	return false
}

// pressedActions returns the actions whose keys went down this tick
func (e *EbitenRenderer) pressedActions() []input.Action {
	var actions []input.Action
	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if act := e.bindings.Lookup(code); act != input.ActionNone {
			actions = append(actions, act)
		}
	}
	return actions
}

// apply performs one action. It reports false when the window should close.
func (e *EbitenRenderer) apply(act input.Action) bool {
	switch act {
	case input.ActionQuit:
		return false
	case input.ActionZoomIn:
		e.setTileSize(e.tileSize + tileSizeStep)
	case input.ActionZoomOut:
		e.setTileSize(e.tileSize - tileSizeStep)
	case input.ActionZoomReset:
		e.setTileSize(defaultTileSize)
	case input.ActionToggleActors:
		e.ShowActors = !e.ShowActors
	}
	return true
}

func (e *EbitenRenderer) setTileSize(size int) {
	size = max(minTileSize, min(maxTileSize, size))
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.resetPieces()
	if e.game != nil {
		ebiten.SetWindowSize(e.screenSize())
	}
}

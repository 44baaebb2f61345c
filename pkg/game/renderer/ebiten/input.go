package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "daybreak/pkg/engine/input"
	"daybreak/pkg/game/gameplay"
	"daybreak/pkg/game/state"
)

// keyCodes maps special keys to input codes. Letters and digits are
// derived in keyCode.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeySpace:       "space",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyGraveAccent: "`",
	ebiten.KeyF1:          "f1",
	ebiten.KeyF2:          "f2",
	ebiten.KeyF3:          "f3",
	ebiten.KeyF4:          "f4",
}

// repeatKeys are movement keys that repeat while held.
var repeatKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
}

// keyCode converts an ebiten key into an input code.
func keyCode(k ebiten.Key) (string, bool) {
	if code, ok := keyCodes[k]; ok {
		return code, true
	}
	name := k.String()
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		if k == ebiten.KeyC && ebiten.IsKeyPressed(ebiten.KeyControl) {
			return "ctrl_c", true
		}
		return strings.ToLower(name), true
	case len(name) == len("Digit0") && strings.HasPrefix(name, "Digit"):
		return name[len("Digit"):], true
	}
	return "", false
}

// shouldRepeatKey reports whether a held key repeats this tick: every
// keyRepeatInterval ticks once keyRepeatInitialDelay has passed. The
// initial press is handled as a normal key press.
func shouldRepeatKey(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d > keyRepeatInitialDelay && (d-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// handleInput forwards this tick's key presses to gameplay.
func (e *EbitenRenderer) handleInput(g *state.Game) {
	if g.ConsoleOpen {
		e.handleConsoleInput(g)
		return
	}

	for _, k := range repeatKeys {
		if shouldRepeatKey(k) {
			e.send(g, engineinput.DeviceKeyboard, k)
		}
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		e.send(g, engineinput.DeviceKeyboard, k)
		// The key that opened the console must not be typed into it.
		if g.ConsoleOpen {
			return
		}
	}
	e.handleGamepad(g)
}

func (e *EbitenRenderer) send(g *state.Game, dev engineinput.Device, k ebiten.Key) {
	code, ok := keyCode(k)
	if !ok {
		return
	}
	gameplay.ProcessKey(g, engineinput.RawInput{Device: dev, Code: code})
}

// handleConsoleInput types characters into the console line.
func (e *EbitenRenderer) handleConsoleInput(g *state.Game) {
	for _, r := range ebiten.AppendInputChars(nil) {
		switch r {
		case ' ':
			gameplay.ConsoleKey(g, "space")
		default:
			gameplay.ConsoleKey(g, string(r))
		}
		if !g.ConsoleOpen {
			return
		}
	}
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyBackspace, ebiten.KeyEscape} {
		if inpututil.IsKeyJustPressed(k) {
			code, _ := keyCode(k)
			gameplay.ConsoleKey(g, code)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		gameplay.ConsoleKey(g, "ctrl_c")
	}
}

// gamepadCodes maps standard-layout buttons to input codes.
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightLeft:   "gamepad_x",
	ebiten.StandardGamepadButtonRightTop:    "gamepad_y",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

// handleGamepad checks controllers with a standard layout.
func (e *EbitenRenderer) handleGamepad(g *state.Game) {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				gameplay.ProcessKey(g, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code})
			}
		}
	}
}

// handleZoom handles =/- for window scale adjustment
func (e *EbitenRenderer) handleZoom() {
	if e.game != nil && e.game.ConsoleOpen {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		e.setScale(e.scale + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		e.setScale(e.scale - 1)
	}
}

func (e *EbitenRenderer) setScale(s int) {
	s = clampScale(s)
	if s == e.scale {
		return
	}
	e.scale = s
	e.invalidateFontCache()
	ebiten.SetWindowSize(baseWidth*s, baseHeight*s)
	if e.OnScale != nil {
		e.OnScale(s)
	}
}

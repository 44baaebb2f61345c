package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight

	// Interaction
	ActionInteract        // Talk to an NPC in range (Q)
	ActionGrab            // Pick up the object under the crosshair (E)
	ActionAdvanceDialogue // Skip typing / next line (Space)

	// Meta / UI
	ActionToggleAutoRun
	ActionConsole
	ActionQuit

	// Developer scrub keys (F1-F4), only mapped when debug bindings are on
	ActionDebugSunrise
	ActionDebugDay
	ActionDebugSunset
	ActionDebugNight
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "q", "f1", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Both hosts report key-down edges only, so every RawInput is already
// debounced; the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement
		"w":           ActionMoveForward,
		"arrow_up":    ActionMoveForward,
		"s":           ActionMoveBack,
		"arrow_down":  ActionMoveBack,
		"a":           ActionMoveLeft,
		"arrow_left":  ActionMoveLeft,
		"d":           ActionMoveRight,
		"arrow_right": ActionMoveRight,

		// Interaction
		"q":     ActionInteract,
		"e":     ActionGrab,
		"space": ActionAdvanceDialogue,

		// Meta
		"t":      ActionToggleAutoRun,
		"`":      ActionConsole,
		"escape": ActionQuit,
		"ctrl_c": ActionQuit,

		// Developer scrub keys
		"f1": ActionDebugSunrise,
		"f2": ActionDebugDay,
		"f3": ActionDebugSunset,
		"f4": ActionDebugNight,

		// Controller/gamepad specific bindings
		"gamepad_dpad_up":    ActionMoveForward,
		"gamepad_dpad_down":  ActionMoveBack,
		"gamepad_dpad_left":  ActionMoveLeft,
		"gamepad_dpad_right": ActionMoveRight,
		"gamepad_a":          ActionAdvanceDialogue,
		"gamepad_x":          ActionInteract,
		"gamepad_y":          ActionGrab,
		"gamepad_start":      ActionQuit,
	}
}

var (
	bindings      = defaultBindings()
	debugBindings bool
)

// ResetBindings restores the stock bindings and turns debug bindings off.
func ResetBindings() {
	bindings = defaultBindings()
	debugBindings = false
}

// SetDebugBindings enables or disables the developer scrub actions. When
// disabled their keys map to ActionNone.
func SetDebugBindings(on bool) {
	debugBindings = on
}

// DebugBindings reports whether the developer scrub actions are mapped.
func DebugBindings() bool {
	return debugBindings
}

// IsDebugAction reports whether a is one of the developer scrub actions.
func IsDebugAction(a Action) bool {
	return a >= ActionDebugSunrise && a <= ActionDebugNight
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone}
	}
	if IsDebugAction(act) && !debugBindings {
		return Intent{Action: ActionNone}
	}
	return Intent{Action: act}
}

// Resolve runs a raw event through every layer.
func Resolve(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

var actionNames = map[Action]string{
	ActionMoveForward:     "Move Forward",
	ActionMoveBack:        "Move Back",
	ActionMoveLeft:        "Move Left",
	ActionMoveRight:       "Move Right",
	ActionInteract:        "Interact",
	ActionGrab:            "Grab",
	ActionAdvanceDialogue: "Advance Dialogue",
	ActionToggleAutoRun:   "Toggle Auto Run",
	ActionConsole:         "Console",
	ActionQuit:            "Quit",
	ActionDebugSunrise:    "Debug Sunrise",
	ActionDebugDay:        "Debug Day",
	ActionDebugSunset:     "Debug Sunset",
	ActionDebugNight:      "Debug Night",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ParseAction looks an action up by name, ignoring case, spaces and
// underscores ("advance_dialogue", "Advance Dialogue" and "advancedialogue"
// all match).
func ParseAction(name string) (Action, bool) {
	want := squash(name)
	for act, n := range actionNames {
		if squash(n) == want {
			return act, true
		}
	}
	return ActionNone, false
}

func squash(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// reservedCodes can never be rebound.
var reservedCodes = map[string]bool{
	"escape": true,
	"ctrl_c": true,
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	code = strings.ToLower(code)
	for c, a := range bindings {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}

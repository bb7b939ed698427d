package viewer

import (
	"maps"
	"slices"
	"strings"
)

// Command is a user action, independent of the input backend.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdToggleGrid
	CmdToggleFill
	CmdToggleHUD
	CmdForward
	CmdBack
	CmdStrafeLeft
	CmdStrafeRight
	CmdDescribe
	CmdReset
)

var commandNames = [...]string{
	CmdNone:        "none",
	CmdQuit:        "quit",
	CmdToggleGrid:  "toggle-grid",
	CmdToggleFill:  "toggle-fill",
	CmdToggleHUD:   "toggle-hud",
	CmdForward:     "forward",
	CmdBack:        "back",
	CmdStrafeLeft:  "strafe-left",
	CmdStrafeRight: "strafe-right",
	CmdDescribe:    "describe",
	CmdReset:       "reset",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// keyBindings maps lower-case key names to commands. Names follow the
// terminal backend ("escape", "up"); the window backend translates its
// key codes to the same names.
var keyBindings = map[string]Command{
	"escape": CmdQuit,
	"esc":    CmdQuit,
	"ctrl+c": CmdQuit,
	"g":      CmdToggleGrid,
	"f":      CmdToggleFill,
	"x":      CmdToggleFill,
	"h":      CmdToggleHUD,
	"?":      CmdToggleHUD,
	"w":      CmdForward,
	"up":     CmdForward,
	"s":      CmdBack,
	"down":   CmdBack,
	"a":      CmdStrafeLeft,
	"left":   CmdStrafeLeft,
	"d":      CmdStrafeRight,
	"right":  CmdStrafeRight,
	"i":      CmdDescribe,
	"r":      CmdReset,
}

// KeyCommand returns the command bound to a key name, or CmdNone.
func KeyCommand(name string) Command {
	return keyBindings[strings.ToLower(name)]
}

// KeyNames returns every bound key name in sorted order.
func KeyNames() []string {
	return slices.Sorted(maps.Keys(keyBindings))
}

// Movement reports whether c moves the camera.
func (c Command) Movement() bool {
	return c >= CmdForward && c <= CmdStrafeRight
}

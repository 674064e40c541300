package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Control is a driving control held by one player
type Control uint8

const (
	ControlNone Control = iota
	ControlLeft
	ControlRight
	ControlAccelerate
	ControlBrake
	ControlFire
	controlCount
)

// Command is a one-shot session action
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandRestart
	CommandNextTrack
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandPause:
		return "pause"
	case CommandRestart:
		return "restart"
	case CommandNextTrack:
		return "next-track"
	default:
		return "none"
	}
}

// Binding maps a key to a player control or a command
type Binding struct {
	Player  int
	Control Control
	Command Command
}

// KeyTable maps keys to bindings
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Binding

	// Rune bindings, matched case-insensitively
	Runes map[rune]Binding
}

// DefaultKeyTable returns player 1 on WASD and Space, player 2 on the arrows and Enter
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Binding{
			tcell.KeyUp:     {Player: 1, Control: ControlAccelerate},
			tcell.KeyDown:   {Player: 1, Control: ControlBrake},
			tcell.KeyLeft:   {Player: 1, Control: ControlLeft},
			tcell.KeyRight:  {Player: 1, Control: ControlRight},
			tcell.KeyEnter:  {Player: 1, Control: ControlFire},
			tcell.KeyEscape: {Command: CommandPause},
			tcell.KeyCtrlC:  {Command: CommandQuit},
		},
		Runes: map[rune]Binding{
			'w': {Player: 0, Control: ControlAccelerate},
			's': {Player: 0, Control: ControlBrake},
			'a': {Player: 0, Control: ControlLeft},
			'd': {Player: 0, Control: ControlRight},
			' ': {Player: 0, Control: ControlFire},
			'q': {Command: CommandQuit},
			'r': {Command: CommandRestart},
			'n': {Command: CommandNextTrack},
		},
	}
}

// Lookup returns the binding of a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := kt.Runes[unicode.ToLower(ev.Rune())]
		return b, ok
	}
	b, ok := kt.Keys[ev.Key()]
	return b, ok
}

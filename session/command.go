package session

import (
	"fmt"

	"github.com/plus3/tetrion/engine"
)

// Command is a game command that can be queued on a session
type Command uint8

const (
	CommandSpawn Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveDown
	CommandSoftDrop
	CommandRotateLeft
	CommandRotateRight
	CommandFirmDrop
	CommandHardDrop
	CommandLock
)

var commandNames = [...]string{
	CommandSpawn:       "spawn",
	CommandMoveLeft:    "left",
	CommandMoveRight:   "right",
	CommandMoveDown:    "down",
	CommandSoftDrop:    "soft-drop",
	CommandRotateLeft:  "rotate-left",
	CommandRotateRight: "rotate-right",
	CommandFirmDrop:    "firm-drop",
	CommandHardDrop:    "hard-drop",
	CommandLock:        "lock",
}

// PlayerCommands are the commands that act on a falling piece
var PlayerCommands = []Command{
	CommandMoveLeft, CommandMoveRight, CommandMoveDown, CommandSoftDrop,
	CommandRotateLeft, CommandRotateRight, CommandFirmDrop, CommandHardDrop, CommandLock,
}

var commandFuncs = [...]func(engine.Tetrion) engine.Tetrion{
	CommandSpawn:       engine.Tetrion.Spawn,
	CommandMoveLeft:    engine.Tetrion.MoveLeft,
	CommandMoveRight:   engine.Tetrion.MoveRight,
	CommandMoveDown:    engine.Tetrion.MoveDown,
	CommandSoftDrop:    engine.Tetrion.SoftDrop,
	CommandRotateLeft:  engine.Tetrion.RotateLeft,
	CommandRotateRight: engine.Tetrion.RotateRight,
	CommandFirmDrop:    engine.Tetrion.FirmDrop,
	CommandHardDrop:    engine.Tetrion.HardDrop,
	CommandLock:        engine.Tetrion.Lock,
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand returns the command with the given name
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return Command(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// ParseCommands parses a sequence of command names
func ParseCommands(names ...string) ([]Command, error) {
	commands := make([]Command, 0, len(names))
	for _, name := range names {
		c, err := ParseCommand(name)
		if err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}
	return commands, nil
}

func (c Command) apply(game engine.Tetrion) engine.Tetrion {
	return commandFuncs[c](game)
}

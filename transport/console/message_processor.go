package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	commandPlace = "place"
	commandReset = "reset"
	commandShow  = "show"
	commandHelp  = "help"
	commandQuit  = "quit"
)

var (
	errEmptyLine       = errors.New("empty line")
	errInvalidArgument = errors.New("invalid argument")
)

var aliases = map[string]string{
	commandPlace: commandPlace,
	"p":          commandPlace,
	commandReset: commandReset,
	"r":          commandReset,
	commandShow:  commandShow,
	"s":          commandShow,
	commandHelp:  commandHelp,
	"h":          commandHelp,
	"?":          commandHelp,
	commandQuit:  commandQuit,
	"q":          commandQuit,
	"exit":       commandQuit,
}

// Command is one parsed input line.
type Command struct {
	Name   string
	Action entity.Action
}

// ParseCommand - parses "place <row> <col>", "reset", "show", "help" or "quit" (and their short forms).
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, errEmptyLine
	}

	name, ok := aliases[fields[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, fields[0])
	}

	args := fields[1:]

	switch name {
	case commandPlace:
		place, err := parsePlace(args)
		if err != nil {
			return nil, err
		}

		return &Command{Name: name, Action: place}, nil
	case commandReset:
		return &Command{Name: name, Action: entity.Reset{}}, nil
	default:
		return &Command{Name: name}, nil
	}
}

func parsePlace(args []string) (entity.Place, error) {
	if len(args) != 2 {
		return entity.Place{}, fmt.Errorf("%w: place takes <row> <col>", errInvalidArgument)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return entity.Place{}, fmt.Errorf("%w: row %q", errInvalidArgument, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return entity.Place{}, fmt.Errorf("%w: col %q", errInvalidArgument, args[1])
	}

	return entity.Place{Row: row, Col: col}, nil
}

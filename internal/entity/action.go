package entity

import "fmt"

const (
	ActionPlace = "place"
	ActionReset = "reset"
)

// Action is one of Place or Reset.
type Action interface {
	Name() string
	isAction()
}

// Place puts the mark of the player to move into (Row, Col).
type Place struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Reset starts a new game.
type Reset struct{}

func (that Place) Name() string { return ActionPlace }

func (that Place) String() string {
	return fmt.Sprintf("%s(%d,%d)", ActionPlace, that.Row, that.Col)
}

func (Place) isAction() {}

func (that Reset) Name() string { return ActionReset }

func (that Reset) String() string { return ActionReset }

func (Reset) isAction() {}

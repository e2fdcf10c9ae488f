package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrUnknownDrawPolicy = errors.New("unknown draw policy")

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DrawPolicy decides what a full board without a winner turns into.
type DrawPolicy int

const (
	// DrawReset starts a new game straight away.
	DrawReset DrawPolicy = iota
	// DrawPhase keeps the full board in PhaseDraw until a reset.
	DrawPhase
)

const (
	drawPolicyReset = "reset"
	drawPolicyPhase = "phase"
)

// ParseDrawPolicy - maps a config value to a DrawPolicy.
func ParseDrawPolicy(value string) (DrawPolicy, error) {
	switch value {
	case drawPolicyReset, "":
		return DrawReset, nil
	case drawPolicyPhase:
		return DrawPhase, nil
	default:
		return DrawReset, fmt.Errorf("%w: %q", ErrUnknownDrawPolicy, value)
	}
}

func (that DrawPolicy) String() string {
	if that == DrawPhase {
		return drawPolicyPhase
	}
	return drawPolicyReset
}

// GameController turns a state and an action into the next state. It keeps no game state.
type GameController struct {
	drawPolicy DrawPolicy
}

type Option func(*GameController)

func WithDrawPolicy(policy DrawPolicy) Option {
	return func(that *GameController) {
		that.drawPolicy = policy
	}
}

func NewGameController(opts ...Option) *GameController {
	controller := &GameController{drawPolicy: DrawReset}
	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

var defaultController = NewGameController()

// InitialState - empty board, X to move.
func InitialState() entity.GameState {
	return entity.GameState{
		Board: entity.Board{},
		Turn:  entity.PlayerX,
		Phase: entity.PhaseInProgress,
	}
}

// Apply - applies action with the default draw policy.
func Apply(state entity.GameState, action entity.Action) (entity.GameState, error) {
	return defaultController.Apply(state, action)
}

// Apply - returns the state that follows action.
// Placing on an occupied cell or after the game is decided returns state unchanged with no error.
// Coordinates outside the board return state unchanged with apperror.ErrInvalidCell.
func (that *GameController) Apply(state entity.GameState, action entity.Action) (entity.GameState, error) {
	switch act := action.(type) {
	case entity.Reset:
		return InitialState(), nil
	case entity.Place:
		return that.place(state, act)
	case nil:
		return state, fmt.Errorf("%w: nil", apperror.ErrUnknownAction)
	default:
		return state, fmt.Errorf("%w: %s", apperror.ErrUnknownAction, action.Name())
	}
}

func (that *GameController) place(state entity.GameState, move entity.Place) (entity.GameState, error) {
	cell, ok := entity.CellIndex(move.Row, move.Col)
	if !ok {
		return state, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if !state.IsInProgress() || !state.Board[cell].IsEmpty() {
		return state, nil
	}

	next := state
	next.Board[cell] = state.Turn

	switch {
	case IsWin(next.Board):
		next.Phase = entity.PhaseWon
	case IsDraw(next.Board):
		if that.drawPolicy == DrawPhase {
			next.Phase = entity.PhaseDraw
			return next, nil
		}
		return InitialState(), nil
	default:
		next.Turn = state.Turn.Next()
	}

	return next, nil
}

// IsWin - true when any line holds three equal marks. Empty lines never count.
func IsWin(board entity.Board) bool {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return true
		}
	}

	return false
}

// IsDraw - true when there is no winner and every cell is taken.
func IsDraw(board entity.Board) bool {
	return !IsWin(board) && board.IsFull()
}

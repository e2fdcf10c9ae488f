package entity

import (
	"strings"
)

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	// PhaseDraw is only reachable when the engine is told to keep drawn boards.
	PhaseDraw Phase = "draw"
)

const BoardSize = 3

// Board is the 3x3 grid in row-major order.
type Board [BoardSize * BoardSize]Mark

// GameState is a snapshot of one game. It is a plain value: copying it copies the board.
type GameState struct {
	Board Board `json:"board"`
	Turn  Mark  `json:"turn"`
	Phase Phase `json:"phase"`
}

// Next - returns the opponent's mark.
func (that Mark) Next() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// CellIndex - maps (row, col) to a board index, ok is false when outside the grid.
func CellIndex(row, col int) (int, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0, false
	}

	return row*BoardSize + col, true
}

func (that Board) Cell(row, col int) Mark {
	idx, ok := CellIndex(row, col)
	if !ok {
		return EmptyCell
	}

	return that[idx]
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// String - renders the board as three text rows, empty cells as dots.
func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}

			cell := that[row*BoardSize+col]
			if cell.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(cell))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that GameState) IsInProgress() bool {
	return that.Phase == PhaseInProgress
}

func (that GameState) IsWon() bool {
	return that.Phase == PhaseWon
}

func (that GameState) IsDraw() bool {
	return that.Phase == PhaseDraw
}

// IsFinished - reports whether only a reset is accepted.
func (that GameState) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

// Status - the line shown above the grid.
func (that GameState) Status() string {
	switch that.Phase {
	case PhaseWon:
		return string(that.Turn) + " won!"
	case PhaseDraw:
		return "Draw"
	default:
		return "Next: " + string(that.Turn)
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_Next(t *testing.T) {
	t.Run("X is followed by O", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Next())
	})

	t.Run("O is followed by X", func(t *testing.T) {
		assert.Equal(t, PlayerX, PlayerO.Next())
	})
}

func TestCellIndex(t *testing.T) {
	t.Run("Maps coordinates in row-major order", func(t *testing.T) {
		// When: mapping every coordinate of the grid
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				idx, ok := CellIndex(row, col)

				// Then: the index is row*3+col
				require.True(t, ok)
				assert.Equal(t, row*3+col, idx)
			}
		}
	})

	t.Run("Rejects coordinates outside the grid", func(t *testing.T) {
		for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
			_, ok := CellIndex(rc[0], rc[1])
			assert.False(t, ok, "row %d col %d", rc[0], rc[1])
		}
	})
}

func TestBoard(t *testing.T) {
	t.Run("Cell reads the row-major slot", func(t *testing.T) {
		// Given: a board with marks in the corners of the first row
		board := Board{PlayerX, EmptyCell, PlayerO}

		// Then: Cell resolves them by coordinates
		assert.Equal(t, PlayerX, board.Cell(0, 0))
		assert.Equal(t, PlayerO, board.Cell(0, 2))
		assert.Equal(t, EmptyCell, board.Cell(2, 2))
		assert.Equal(t, EmptyCell, board.Cell(5, 5))
	})

	t.Run("IsFull", func(t *testing.T) {
		full := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}
		assert.True(t, full.IsFull())

		partial := full
		partial[4] = EmptyCell
		assert.False(t, partial.IsFull())
		assert.True(t, full.IsFull(), "copy must not share the board")
	})

	t.Run("String renders three rows", func(t *testing.T) {
		// Given: a partially played board
		board := Board{
			PlayerX, EmptyCell, EmptyCell,
			EmptyCell, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, PlayerX,
		}

		// Then: empty cells render as dots
		assert.Equal(t, "X|.|.\n.|O|.\n.|.|X\n", board.String())
	})
}

func TestGameState_Status(t *testing.T) {
	t.Run("In progress shows the next player", func(t *testing.T) {
		state := GameState{Turn: PlayerO, Phase: PhaseInProgress}

		assert.Equal(t, "Next: O", state.Status())
		assert.True(t, state.IsInProgress())
		assert.False(t, state.IsFinished())
	})

	t.Run("Won shows the winner", func(t *testing.T) {
		state := GameState{Turn: PlayerX, Phase: PhaseWon}

		assert.Equal(t, "X won!", state.Status())
		assert.True(t, state.IsFinished())
	})

	t.Run("Draw", func(t *testing.T) {
		state := GameState{Turn: PlayerO, Phase: PhaseDraw}

		assert.Equal(t, "Draw", state.Status())
		assert.True(t, state.IsFinished())
	})
}

func TestActions(t *testing.T) {
	var place Action = Place{Row: 1, Col: 2}
	var reset Action = Reset{}

	assert.Equal(t, ActionPlace, place.Name())
	assert.Equal(t, ActionReset, reset.Name())
	assert.Equal(t, "place(1,2)", Place{Row: 1, Col: 2}.String())
}

package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const helpText = `commands:
  place <row> <col>  (p)  put the next mark, rows and columns are 0-2
  reset              (r)  start over
  show               (s)  print the current board
  help               (h)  show this text
  quit               (q)  leave
`

func (that *Server) handlePlace(ctx context.Context, cmd *Command, out io.Writer) error {
	return that.dispatch(ctx, cmd.Action, out)
}

func (that *Server) handleReset(ctx context.Context, cmd *Command, out io.Writer) error {
	return that.dispatch(ctx, cmd.Action, out)
}

func (that *Server) handleShow(ctx context.Context, _ *Command, out io.Writer) error {
	session, err := that.uGame.GetSession(ctx, that.sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	return render(out, session.State)
}

func (that *Server) handleHelp(_ context.Context, _ *Command, out io.Writer) error {
	return writeHelp(out)
}

func (that *Server) handleQuit(_ context.Context, _ *Command, out io.Writer) error {
	if _, err := fmt.Fprintln(out, "bye"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return errQuit
}

func (that *Server) dispatch(ctx context.Context, action entity.Action, out io.Writer) error {
	session, err := that.uGame.Dispatch(ctx, that.sessionID, action)
	if errors.Is(err, apperror.ErrInvalidCell) {
		return writeError(out, err)
	}

	if err != nil {
		return fmt.Errorf("failed to dispatch %s: %w", action.Name(), err)
	}

	return render(out, session.State)
}

// render - writes the status line followed by the grid.
func render(out io.Writer, state entity.GameState) error {
	if _, err := fmt.Fprintf(out, "%s\n%s", state.Status(), state.Board); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func writeHelp(out io.Writer) error {
	if _, err := io.WriteString(out, helpText); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func writeError(out io.Writer, cause error) error {
	if _, err := fmt.Fprintf(out, "error: %v\n", cause); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

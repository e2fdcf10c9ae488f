package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxLineBytes = 1024

var (
	errQuit        = errors.New("quit")
	errLineTooLong = errors.New("line too long")
)

type uGame interface {
	NewSession(ctx context.Context) (*entity.Session, error)
	Dispatch(ctx context.Context, id string, action entity.Action) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	EndSession(ctx context.Context, id string) error
}

type inputLine struct {
	text string
	err  error
}

type handler func(ctx context.Context, cmd *Command, out io.Writer) error

// Server drives one game session from line commands and renders every state it gets back.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	sessionID string
	handlers  map[string]handler
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		handlers: make(map[string]handler),
	}

	server.handlers[commandPlace] = server.handlePlace
	server.handlers[commandReset] = server.handleReset
	server.handlers[commandShow] = server.handleShow
	server.handlers[commandHelp] = server.handleHelp
	server.handlers[commandQuit] = server.handleQuit

	return server
}

// Start - opens a session and processes commands from in until quit, EOF or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session, err := that.uGame.NewSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	that.sessionID = session.ID
	log = log.With("sessionID", session.ID)

	defer func() {
		// the caller's ctx may already be cancelled here
		if endErr := that.uGame.EndSession(context.WithoutCancel(ctx), that.sessionID); endErr != nil {
			log.Error("failed to end session", "error", endErr)
		}
	}()

	if err = writeHelp(out); err != nil {
		return err
	}

	if err = render(out, session.State); err != nil {
		return err
	}

	lines := readLines(ctx, in)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving console")
			return nil
		case line, ok := <-lines:
			if !ok {
				log.Info("input closed")
				return nil
			}

			if errors.Is(line.err, errLineTooLong) {
				if err = writeError(out, line.err); err != nil {
					return err
				}
				continue
			}

			if line.err != nil {
				return fmt.Errorf("failed to read input: %w", line.err)
			}

			err = that.process(ctx, line.text, out)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

func (that *Server) process(ctx context.Context, line string, out io.Writer) error {
	cmd, err := ParseCommand(line)
	if errors.Is(err, errEmptyLine) {
		return nil
	}

	if err != nil {
		that.logger.Debug("bad input", "line", line, "error", err)
		return writeError(out, err)
	}

	return that.handlers[cmd.Name](ctx, cmd, out)
}

// readLines - pumps lines from in until EOF, a read failure or ctx is done.
// Lines longer than maxLineBytes are skipped and reported as errLineTooLong.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)

	send := func(line inputLine) bool {
		select {
		case lines <- line:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(lines)

		reader := bufio.NewReaderSize(in, maxLineBytes)
		for {
			text, err := readLine(reader)
			if errors.Is(err, io.EOF) {
				if text != "" {
					send(inputLine{text: text})
				}
				return
			}

			if !send(inputLine{text: text, err: err}) {
				return
			}

			if err != nil && !errors.Is(err, errLineTooLong) {
				return
			}
		}
	}()

	return lines
}

func readLine(reader *bufio.Reader) (string, error) {
	chunk, err := reader.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return strings.TrimRight(string(chunk), "\r\n"), err
	}

	// drop the rest of the line
	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = reader.ReadSlice('\n')
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return "", fmt.Errorf("%w: over %d bytes", errLineTooLong, maxLineBytes)
}

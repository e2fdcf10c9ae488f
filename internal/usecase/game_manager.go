package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

type gameController interface {
	Apply(state entity.GameState, action entity.Action) (entity.GameState, error)
}

// GameManager owns the game state of every session and feeds actions to the controller one at a time.
type GameManager struct {
	logger *slog.Logger

	gameRepo       gameRepo
	gameController gameController

	locksMutex sync.Mutex
	locks      map[string]*sessionLock
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, gameController gameController) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),

		gameRepo:       gameRepo,
		gameController: gameController,

		locks: make(map[string]*sessionLock),
	}
}

func (that *GameManager) NewSession(ctx context.Context) (*entity.Session, error) {
	id, err := pkg.GenerateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	session := entity.NewSession(id, tictactoe.InitialState())
	if err = that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "sessionID", id)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// Dispatch - applies action to the session's current state and stores the result.
// Calls for the same session are serialized.
func (that *GameManager) Dispatch(ctx context.Context, id string, action entity.Action) (*entity.Session, error) {
	log := that.logger.With("method", "Dispatch", "sessionID", id, "action", fmt.Sprint(action))

	unlock := that.lock(id)
	defer unlock()

	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	next, err := that.gameController.Apply(session.State, action)
	if err != nil {
		log.Warn("action rejected", "error", err)
		return session, fmt.Errorf("failed to apply %s: %w", actionName(action), err)
	}

	if next == session.State {
		log.Debug("action ignored", "phase", next.Phase, "turn", next.Turn)
		return session, nil
	}

	updated := entity.NewSession(id, next)
	if err = that.gameRepo.CreateOrUpdate(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	log.Info("action applied", "phase", next.Phase, "turn", next.Turn)

	return updated, nil
}

func (that *GameManager) EndSession(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

// lock - holds the session's mutex; the entry is dropped once nobody holds or waits on it.
func (that *GameManager) lock(id string) func() {
	that.locksMutex.Lock()
	entry, ok := that.locks[id]
	if !ok {
		entry = &sessionLock{}
		that.locks[id] = entry
	}
	entry.refs++
	that.locksMutex.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.locksMutex.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, id)
		}
		that.locksMutex.Unlock()
	}
}

func actionName(action entity.Action) string {
	if action == nil {
		return "nil action"
	}

	return action.Name()
}

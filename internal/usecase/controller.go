package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/catalog"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
	"github.com/rocketscienceinc/wordwheel-backend/internal/grid"
	"github.com/rocketscienceinc/wordwheel-backend/internal/wheel"
)

var ErrAlreadyStarted = errors.New("session already started")

type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateActive     State = "active"
	StateCompleting State = "completing"
	StateAdvancing  State = "advancing"
	StateClosed     State = "closed"
)

type levelGenerator interface {
	GenerateLevel(ctx context.Context, theme entity.Theme, id int) (*entity.Level, error)
}

type hintProvider interface {
	Hint(ctx context.Context, word string) (string, error)
}

type sessionSaver interface {
	Save(ctx context.Context, user *entity.User) error
}

type Config struct {
	HintCost        int
	LevelReward     int
	AdvanceDelay    time.Duration
	ProviderTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		HintCost:        25,
		LevelReward:     50,
		AdvanceDelay:    1500 * time.Millisecond,
		ProviderTimeout: 10 * time.Second,
	}
}

// LevelController owns one player's session: the active level, the wheel gesture,
// the coin economy and the progression from level to level.
type LevelController struct {
	logger    *slog.Logger
	generator levelGenerator
	hints     hintProvider
	sessions  sessionSaver
	observer  Observer
	config    Config

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	emitMu sync.Mutex

	state       State
	user        *entity.User
	level       *entity.Level
	wheel       *wheel.Wheel
	loads       tokenSource
	hintTokens  tokenSource
	hintPending bool
	advance     *time.Timer

	events    []Event
	userDirty bool
}

func NewLevelController(
	logger *slog.Logger,
	generator levelGenerator,
	hints hintProvider,
	sessions sessionSaver,
	observer Observer,
	config Config,
) *LevelController {
	ctx, cancel := context.WithCancel(context.Background())

	if observer == nil {
		observer = ObserverFunc(func(Event) {})
	}

	return &LevelController{
		logger:    logger.With("component", "level_controller"),
		generator: generator,
		hints:     hints,
		sessions:  sessions,
		observer:  observer,
		config:    config,

		ctx:    ctx,
		cancel: cancel,

		state: StateIdle,
		wheel: wheel.New(nil),
	}
}

// Start - takes over the user record handed over on login and loads its current level.
func (that *LevelController) Start(user *entity.User) error {
	that.mu.Lock()
	defer that.unlock()

	switch that.state {
	case StateClosed:
		return apperror.ErrSessionClosed
	case StateIdle:
	default:
		return ErrAlreadyStarted
	}

	that.user = user.Clone()
	that.user.CurrentLevelIndex = max(that.user.CurrentLevelIndex, 0)
	that.logger = that.logger.With("username", user.Username)
	that.load(that.user.CurrentLevelIndex)

	return nil
}

// Close tears down all level state. Results still in flight are discarded on arrival.
func (that *LevelController) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state == StateClosed {
		return
	}

	that.state = StateClosed
	that.cancel()

	if that.advance != nil {
		that.advance.Stop()
		that.advance = nil
	}

	that.loads.Invalidate()
	that.hintTokens.Invalidate()
	that.hintPending = false
	that.level = nil
	that.wheel.Reset(nil)
	that.events = nil
	that.userDirty = false

	that.logger.Info("session closed")
}

func (that *LevelController) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

// User - returns a copy of the session record, nil before Start.
func (that *LevelController) User() *entity.User {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.user == nil {
		return nil
	}

	return that.user.Clone()
}

func (that *LevelController) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

func (that *LevelController) snapshot() Snapshot {
	snapshot := Snapshot{
		State:       that.state,
		Letters:     that.wheel.Letters(),
		Selected:    that.wheel.Selected(),
		CurrentWord: that.wheel.CurrentWord(),
		Path:        that.wheel.Path(),
		HintPending: that.hintPending,
	}

	if that.user != nil {
		snapshot.User = that.user.Clone()
	}

	if that.level != nil {
		snapshot.Level = that.level.Clone()

		if built, err := grid.Build(that.level.Words); err == nil {
			snapshot.Grid = built
		} else {
			that.logger.Error("failed to build grid", "error", err)
		}
	}

	return snapshot
}

// load enters Loading for the level at the global index. Catalog levels resolve
// immediately, later ones are generated in the background.
func (that *LevelController) load(index int) {
	that.state = StateLoading
	that.level = nil
	that.wheel.Reset(nil)
	that.hintTokens.Invalidate()
	that.hintPending = false

	token := that.loads.Next()
	that.queue(EventLevelLoading, LoadingPayload{Index: index})

	if level, ok := catalog.Level(index); ok {
		that.activate(level)

		return
	}

	go func() {
		level := that.generate(index)

		that.mu.Lock()
		defer that.unlock()

		if that.state == StateClosed || !that.loads.IsCurrent(token) {
			that.logger.Debug("discarding stale level", "index", index)

			return
		}

		that.activate(level)
	}()
}

// generate asks the generator for the level and falls back to the catalog on any failure.
func (that *LevelController) generate(index int) *entity.Level {
	log := that.logger.With("method", "generate", "index", index)

	theme, id := entity.ThemeForIndex(index), index+1

	ctx, cancel := context.WithTimeout(that.ctx, that.config.ProviderTimeout)
	defer cancel()

	level, err := that.generator.GenerateLevel(ctx, theme, id)
	if err == nil {
		if level == nil {
			err = fmt.Errorf("%w: empty level", apperror.ErrInvalidLevel)
		} else {
			err = grid.Validate(level, grid.GeneratedRules)
		}
	}

	if err != nil {
		log.Warn("failed to generate level, using catalog fallback", "error", err)

		return catalog.Fallback(index)
	}

	level = level.Clone()
	level.ID = id
	level.Theme = theme

	return level
}

func (that *LevelController) activate(level *entity.Level) {
	that.level = level
	that.wheel.Reset(level.Letters)
	that.state = StateActive

	that.logger.Info("level loaded", "id", level.ID, "name", level.Name, "words", len(level.Words))
	that.queue(EventLevelLoaded, that.snapshot())
}

func (that *LevelController) queue(eventType EventType, payload any) {
	that.events = append(that.events, Event{Type: eventType, Payload: payload})
}

func (that *LevelController) userChanged() {
	that.userDirty = true
	that.queue(EventUserUpdated, that.user.Clone())
}

// unlock releases the state lock, then delivers queued events and saves the user
// record in order, so observers never run under the state lock.
func (that *LevelController) unlock() {
	events := that.events
	that.events = nil

	var user *entity.User
	if that.userDirty && that.user != nil {
		user = that.user.Clone()
	}
	that.userDirty = false

	that.emitMu.Lock()
	that.mu.Unlock()
	defer that.emitMu.Unlock()

	if user != nil && that.sessions != nil {
		if err := that.sessions.Save(that.ctx, user); err != nil {
			that.logger.Error("failed to save session", "error", err)
		}
	}

	for _, event := range events {
		that.observer.Notify(event)
	}
}

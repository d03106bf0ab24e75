package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/blockfall/internal/bag"
	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/piece"
	"github.com/samdwyer/blockfall/internal/telemetry"
)

// session is everything that restarts together. Restart replaces it whole.
type session struct {
	id     string
	board  *board.Board
	piece  *piece.Piece
	supply *bag.Bag
	score  int
	lines  int
	pieces int // Pieces locked so far
	state  State
}

// Engine is the single owner of a play session.
// It is not safe for concurrent use; one driver goroutine feeds it commands.
type Engine struct {
	s      *session
	rng    *rand.Rand
	tracer trace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to shuffle every bag.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithTracer sets the tracer used for engine spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// New creates an engine with a fresh running session.
func New(ctx context.Context, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.tracer == nil {
		e.tracer = telemetry.Tracer("engine")
	}

	e.s = e.newSession(ctx)
	return e
}

// newSession builds an empty board and bag and spawns the first draw.
func (e *Engine) newSession(ctx context.Context) *session {
	_, span := e.tracer.Start(ctx, "engine.session.start")
	defer span.End()

	supply := bag.New(e.rng)
	first := supply.Next()
	s := &session{
		id:     uuid.NewString(),
		board:  board.New(),
		piece:  piece.Spawn(first),
		supply: supply,
		state:  StateRunning,
	}

	next, _ := supply.Peek()
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("piece.first", first.String()),
		attribute.String("piece.next", next.String()),
	)
	return s
}

// Apply executes one command. Commands the current state does not accept are
// ignored and return a zero Result.
func (e *Engine) Apply(ctx context.Context, cmd Command) Result {
	switch cmd {
	case CmdTogglePause:
		e.togglePause()
		return Result{}
	case CmdRestart:
		if e.s.state == StateGameOver {
			e.restart(ctx)
		}
		return Result{}
	}

	if e.s.state != StateRunning {
		return Result{}
	}

	switch cmd {
	case CmdMoveLeft:
		return e.shift(-1)
	case CmdMoveRight:
		return e.shift(1)
	case CmdRotate:
		e.s.piece.Rotate()
		return Result{Moved: true}
	case CmdSoftDrop, CmdTick:
		return e.fall(ctx)
	default:
		return Result{}
	}
}

// MoveLeft shifts the active piece one column left.
func (e *Engine) MoveLeft(ctx context.Context) Result { return e.Apply(ctx, CmdMoveLeft) }

// MoveRight shifts the active piece one column right.
func (e *Engine) MoveRight(ctx context.Context) Result { return e.Apply(ctx, CmdMoveRight) }

// SoftDrop moves the active piece down one row, locking it if it cannot fall.
func (e *Engine) SoftDrop(ctx context.Context) Result { return e.Apply(ctx, CmdSoftDrop) }

// Rotate turns the active piece a quarter turn.
func (e *Engine) Rotate(ctx context.Context) Result { return e.Apply(ctx, CmdRotate) }

// TogglePause switches between running and paused.
func (e *Engine) TogglePause(ctx context.Context) Result { return e.Apply(ctx, CmdTogglePause) }

// Restart starts a new session after game over.
func (e *Engine) Restart(ctx context.Context) Result { return e.Apply(ctx, CmdRestart) }

// Tick is the automatic fall step.
func (e *Engine) Tick(ctx context.Context) Result { return e.Apply(ctx, CmdTick) }

// togglePause flips between running and paused; game over is unaffected.
func (e *Engine) togglePause() {
	switch e.s.state {
	case StateRunning:
		e.s.state = StatePaused
	case StatePaused:
		e.s.state = StateRunning
	}
}

// restart replaces the session with a fresh one.
func (e *Engine) restart(ctx context.Context) {
	ctx, span := e.tracer.Start(ctx, "engine.restart")
	defer span.End()

	span.SetAttributes(
		attribute.String("session.previous", e.s.id),
		attribute.Int("score.final", e.s.score),
	)
	e.s = e.newSession(ctx)
}

// shift moves the active piece sideways.
func (e *Engine) shift(dx int) Result {
	return Result{Moved: e.s.piece.TryMove(dx, 0, e.s.board) == piece.Moved}
}

// fall moves the active piece down, running the lock sequence when it lands.
func (e *Engine) fall(ctx context.Context) Result {
	switch e.s.piece.TryMove(0, -1, e.s.board) {
	case piece.Moved:
		return Result{Moved: true}
	case piece.ShouldLock:
		return e.lock(ctx)
	default:
		return Result{}
	}
}

// lock commits the active piece, then either ends the game or clears rows,
// scores them and spawns the next piece.
func (e *Engine) lock(ctx context.Context) Result {
	_, span := e.tracer.Start(ctx, "engine.lock")
	defer span.End()

	s := e.s
	shape := s.piece.Shape
	gameOver, err := s.piece.Lock(s.board)
	s.pieces++

	result := Result{Locked: true, LockErr: err}
	if err != nil {
		span.RecordError(err)
	}

	if gameOver {
		s.state = StateGameOver
		result.GameOver = true
	} else {
		result.RowsCleared = s.board.ClearFullRows()
		s.score += result.RowsCleared
		s.lines += result.RowsCleared
		s.piece = piece.Spawn(s.supply.Next())
	}

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("piece.shape", shape.String()),
		attribute.Int("rows_cleared", result.RowsCleared),
		attribute.Int("score", s.score),
		attribute.Int("lines", s.lines),
		attribute.Int("pieces", s.pieces),
		attribute.Bool("game_over", gameOver),
	)
	return result
}

package tensio

import (
	"errors"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tensio/internal/core"
)

var (
	// ErrNoSurface is returned by Show when there is nothing to draw on.
	ErrNoSurface = errors.New("tensio: drawing surface unavailable")

	// ErrClosed is returned by Show after Close.
	ErrClosed = errors.New("tensio: controller closed")
)

// Controller owns the live session. It turns frame timestamps into clamped
// steps, routes the activate input by phase, and persists new high scores.
// A Controller is not safe for concurrent use; it is driven from a single
// event loop.
type Controller struct {
	store   HighScoreStore
	rng     Rand
	logger  *log.Logger
	sprites SpriteSet

	session *Session
	surface Surface
	runID   string

	last    time.Time
	hasLast bool
	running bool
	closed  bool
}

// NewController creates a controller with a fresh session in PhaseStart.
// store may be nil, in which case nothing is persisted.
func NewController(store HighScoreStore, rng Rand, logger *log.Logger) *Controller {
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		store:   store,
		rng:     rng,
		logger:  logger,
		sprites: DefaultSprites(),
		session: CreateSession(store),
	}
}

// Session returns the current session. The pointer changes on restart.
func (c *Controller) Session() *Session {
	return c.session
}

// Running reports whether the frame source should keep delivering frames.
func (c *Controller) Running() bool {
	return c.running
}

// Show attaches dst and starts the frame loop.
func (c *Controller) Show(dst Surface) error {
	if c.closed {
		return ErrClosed
	}
	if dst == nil || dst.Width() <= 0 || dst.Height() <= 0 {
		return ErrNoSurface
	}
	if e, ok := dst.(interface{ Empty() bool }); ok && e.Empty() {
		return ErrNoSurface
	}

	c.surface = dst
	c.running = true
	c.hasLast = false
	c.Draw()
	return nil
}

// Hide stops the frame loop. The first frame after the next Show carries
// no elapsed time, so a long absence never turns into one big step.
func (c *Controller) Hide() {
	c.running = false
	c.hasLast = false
}

// Close stops the loop and detaches the surface. It is safe to call twice.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.Hide()
	c.surface = nil
	c.logger.Debug("controller closed", "run", c.runID, "phase", c.session.Phase)
}

// Frame handles one display refresh at timestamp ts.
func (c *Controller) Frame(ts time.Time) {
	if !c.running {
		return
	}
	if c.hasLast {
		c.Tick(ts.Sub(c.last).Seconds())
	}
	c.last = ts
	c.hasLast = true
	c.Draw()
}

// Tick advances the playing session by dt seconds, clamped to MaxFrameStep.
// The step is split into equal sub-steps no longer than MaxSubStep. Each
// sub-step moves, resolves collisions and then ramps speed and score; a
// death ends the tick before the world advances.
func (c *Controller) Tick(dt float64) Outcome {
	var out Outcome
	s := c.session
	if s.Phase != PhasePlaying {
		return out
	}
	dt = core.ClampF(dt, 0, MaxFrameStep)
	if dt == 0 {
		return out
	}

	n := int(math.Ceil(dt/MaxSubStep - 1e-9))
	step := dt / float64(n)
	for i := 0; i < n; i++ {
		move(s, step, c.rng)
		r := Resolve(s)
		out.Landed = out.Landed || r.Landed
		out.Picked += r.Picked
		if r.Died {
			out.Died = true
			out.NewHighScore = r.NewHighScore
			break
		}
		advanceWorld(s, step)
	}
	if !out.Died {
		return out
	}

	c.logger.Info("run ended",
		"run", c.runID,
		"score", s.Score,
		"distance", int(s.Distance),
		"collected", s.Collected,
		"elapsed", time.Duration(s.Elapsed*float64(time.Second)).Round(time.Millisecond),
	)
	if out.NewHighScore {
		c.logger.Info("new high score", "run", c.runID, "score", s.HighScore)
		if c.store != nil {
			if err := c.store.SaveHighScore(s.HighScore); err != nil {
				c.logger.Warn("could not save high score", "error", err)
			}
		}
	}
	return out
}

// Activate is the single game input: start, jump or restart depending on
// the phase.
func (c *Controller) Activate() {
	if c.closed {
		return
	}

	switch c.session.Phase {
	case PhasePlaying:
		Jump(c.session)
	case PhaseStart, PhaseDead:
		c.session = c.freshSession()
		c.session.Begin()
		c.runID = uuid.NewString()
		c.hasLast = false
		c.logger.Debug("run started", "run", c.runID, "high_score", c.session.HighScore)
	}
}

// freshSession builds a new session that keeps the best known high score.
func (c *Controller) freshSession() *Session {
	s := CreateSession(c.store)
	if c.session != nil && c.session.HighScore > s.HighScore {
		s.HighScore = c.session.HighScore
	}
	return s
}

// Draw renders the current session onto the attached surface.
func (c *Controller) Draw() {
	if c.surface == nil {
		return
	}
	RenderWith(c.surface, c.session, c.sprites)
}

package tensio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tensio/internal/core"
)

func newShownController(t *testing.T, store HighScoreStore) (*Controller, *core.Canvas) {
	t.Helper()
	c := NewController(store, NewRand(1), nil)
	canvas := newTestCanvas()
	require.NoError(t, c.Show(canvas))
	return c, canvas
}

// killPlayer puts a rack right in front of the runner.
func killPlayer(c *Controller) Outcome {
	s := c.Session()
	s.Obstacles = append(s.Obstacles, Obstacle{X: PlayerX + 10, Width: 30, Height: 56, Kind: ObstacleRack})
	return c.Tick(0.001)
}

func TestControllerStartsInStartPhase(t *testing.T) {
	c := NewController(&memStore{high: 12}, nil, nil)

	assert.Equal(t, PhaseStart, c.Session().Phase)
	assert.Equal(t, 12, c.Session().HighScore)
	assert.False(t, c.Running())
}

func TestControllerShowRequiresSurface(t *testing.T) {
	c := NewController(nil, NewRand(1), nil)

	assert.ErrorIs(t, c.Show(nil), ErrNoSurface)
	assert.False(t, c.Running())

	empty := core.NewCanvas(core.NewScreen(0, 0), FieldWidth, FieldHeight)
	assert.ErrorIs(t, c.Show(empty), ErrNoSurface)
	assert.False(t, c.Running())

	c.Frame(time.Now())
	assert.Equal(t, PhaseStart, c.Session().Phase)
}

func TestControllerShowDrawsStartScreen(t *testing.T) {
	_, canvas := newShownController(t, nil)

	assert.Contains(t, canvas.Screen().String(), "T E N S I O")
}

func TestControllerActivateTransitions(t *testing.T) {
	store := &memStore{}
	c, _ := newShownController(t, store)

	c.Activate()
	require.Equal(t, PhasePlaying, c.Session().Phase)
	assert.True(t, c.Session().Player.Grounded)

	c.Activate()
	assert.False(t, c.Session().Player.Grounded, "activate while playing jumps")
	assert.Equal(t, JumpVelocity, c.Session().Player.VY)

	c.Activate()
	assert.Equal(t, JumpVelocity, c.Session().Player.VY, "no double jump")
}

func TestControllerFirstFrameHasNoDelta(t *testing.T) {
	c, _ := newShownController(t, nil)
	c.Activate()
	t0 := time.Unix(1000, 0)

	c.Frame(t0)
	assert.Zero(t, c.Session().Elapsed)

	c.Frame(t0.Add(16 * time.Millisecond))
	assert.InDelta(t, 0.016, c.Session().Elapsed, 1e-9)
}

func TestControllerClampsLongFrames(t *testing.T) {
	c, _ := newShownController(t, nil)
	c.Activate()
	t0 := time.Unix(1000, 0)

	c.Frame(t0)
	c.Frame(t0.Add(5 * time.Second))

	assert.InDelta(t, MaxFrameStep, c.Session().Elapsed, 1e-9)
}

func TestControllerBackwardsClockIsIgnored(t *testing.T) {
	c, _ := newShownController(t, nil)
	c.Activate()
	t0 := time.Unix(1000, 0)

	c.Frame(t0)
	c.Frame(t0.Add(-time.Second))

	assert.Zero(t, c.Session().Elapsed)
}

func TestControllerHideStopsFrames(t *testing.T) {
	c, canvas := newShownController(t, nil)
	c.Activate()
	t0 := time.Unix(1000, 0)
	c.Frame(t0)

	c.Hide()
	assert.False(t, c.Running())
	c.Frame(t0.Add(10 * time.Millisecond))
	assert.Zero(t, c.Session().Elapsed)

	require.NoError(t, c.Show(canvas))
	c.Frame(t0.Add(time.Hour))
	assert.Zero(t, c.Session().Elapsed, "first frame after re-show has no delta")

	c.Frame(t0.Add(time.Hour + 10*time.Millisecond))
	assert.InDelta(t, 0.010, c.Session().Elapsed, 1e-9)
}

func TestControllerDeathPersistsNewHighScore(t *testing.T) {
	store := &memStore{high: 5}
	c, canvas := newShownController(t, store)
	c.Activate()
	c.Session().Score = 20

	out := killPlayer(c)

	require.True(t, out.Died)
	assert.Equal(t, PhaseDead, c.Session().Phase)
	assert.True(t, c.Session().IsNewHighScore)
	assert.Equal(t, []int{20}, store.saves)
	assert.Equal(t, 20, store.high)

	c.Draw()
	assert.Contains(t, canvas.Screen().String(), "NEW HIGH SCORE!")
}

func TestControllerDeathBelowRecordDoesNotPersist(t *testing.T) {
	store := &memStore{high: 50}
	c, _ := newShownController(t, store)
	c.Activate()
	c.Session().Score = 20

	out := killPlayer(c)

	require.True(t, out.Died)
	assert.False(t, c.Session().IsNewHighScore)
	assert.Empty(t, store.saves)
	assert.Equal(t, 50, store.high)
}

func TestControllerDeadSessionIsFrozen(t *testing.T) {
	c, _ := newShownController(t, nil)
	c.Activate()
	killPlayer(c)
	s := c.Session()
	before := snapshot(s)

	c.Tick(0.05)
	c.Frame(time.Now())
	c.Frame(time.Now().Add(time.Second))

	assert.Equal(t, before, *s)
}

func TestControllerLandsAtLowFrameRates(t *testing.T) {
	kinds := []ObstacleKind{ObstacleSwitch, ObstacleServer, ObstacleUPS, ObstacleRack}
	steps := map[string]float64{"30fps": 1.0 / 30, "clamped": MaxFrameStep}

	for _, kind := range kinds {
		for name, dt := range steps {
			t.Run(kind.String()+"/"+name, func(t *testing.T) {
				c := NewController(nil, NewRand(1), nil)
				c.Activate()
				s := c.Session()

				w, h := kind.Size()
				s.Obstacles = append(s.Obstacles, Obstacle{X: PlayerX + 8, Width: w, Height: h, Kind: kind})
				// Feet 2 px above the top, falling as fast as after a full jump.
				s.Player.Y = GroundLevel - h - 2
				s.Player.VY = 540
				s.Player.Grounded = false

				out := c.Tick(dt)

				require.False(t, out.Died, "a fall onto the top must not kill")
				assert.True(t, out.Landed)
				assert.Equal(t, PhasePlaying, s.Phase)
				assert.True(t, s.Player.Grounded)
				assert.Equal(t, GroundLevel-h, s.Player.Y)
			})
		}
	}
}

func TestControllerTickSplitsIntoSubSteps(t *testing.T) {
	c, _ := newShownController(t, nil)
	c.Activate()
	s := c.Session()
	require.True(t, Jump(s))

	c.Tick(MaxFrameStep)

	// Three sub-steps of MaxFrameStep/3 under semi-implicit Euler.
	step := MaxFrameStep / 3
	vy, y := JumpVelocity, GroundLevel
	for i := 0; i < 3; i++ {
		vy += Gravity * step
		y += vy * step
	}
	assert.InDelta(t, vy, s.Player.VY, 1e-9)
	assert.InDelta(t, y, s.Player.Y, 1e-9)
	assert.InDelta(t, MaxFrameStep, s.Elapsed, 1e-9)
}

func TestControllerDeathFrameDoesNotAdvanceWorld(t *testing.T) {
	c, _ := newShownController(t, nil)
	c.Activate()
	s := c.Session()

	out := c.Tick(0.04)
	require.False(t, out.Died)
	distance, elapsed, score := s.Distance, s.Elapsed, s.Score

	out = killPlayer(c)

	require.True(t, out.Died)
	assert.Equal(t, distance, s.Distance)
	assert.Equal(t, elapsed, s.Elapsed)
	assert.Equal(t, score, s.Score)
}

func TestControllerRestart(t *testing.T) {
	store := &memStore{high: 5}
	c, _ := newShownController(t, store)
	c.Activate()

	for i := 0; i < 120; i++ {
		c.Tick(frame)
	}
	c.Session().Score = 30
	c.Session().Speed = 400
	c.Session().Collectibles = append(c.Session().Collectibles, Collectible{X: 500, Y: 100})
	killPlayer(c)
	require.Equal(t, PhaseDead, c.Session().Phase)
	dead := c.Session()

	c.Activate()

	s := c.Session()
	require.NotSame(t, dead, s)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Empty(t, s.Obstacles)
	assert.Empty(t, s.Collectibles)
	assert.Equal(t, BaseSpeed, s.Speed)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.IsNewHighScore)
	assert.Equal(t, 30, s.HighScore)
}

func TestControllerRestartKeepsHighScoreWhenSaveFails(t *testing.T) {
	store := &memStore{high: 5, err: errDiskFull}
	c, _ := newShownController(t, store)
	c.Activate()
	c.Session().Score = 30

	killPlayer(c)
	require.Equal(t, []int{30}, store.saves)
	assert.Equal(t, 5, store.high)

	c.Activate()
	assert.Equal(t, 30, c.Session().HighScore)
}

func TestControllerClose(t *testing.T) {
	c, canvas := newShownController(t, nil)

	c.Close()
	c.Close()

	assert.False(t, c.Running())
	c.Activate()
	assert.Equal(t, PhaseStart, c.Session().Phase)
	assert.ErrorIs(t, c.Show(canvas), ErrClosed)
}

func TestControllerDeterminism(t *testing.T) {
	run := func() (int, float64) {
		c := NewController(nil, NewRand(12345), nil)
		c.Activate()
		for i := 0; i < 2000 && c.Session().Phase == PhasePlaying; i++ {
			if i%40 == 0 {
				c.Activate()
			}
			c.Tick(frame)
		}
		return c.Session().Score, c.Session().Distance
	}

	score1, dist1 := run()
	score2, dist2 := run()

	assert.Equal(t, score1, score2)
	assert.Equal(t, dist1, dist2)
}

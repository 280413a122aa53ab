// Package tensio implements the Tensio endless runner: a fixed-ruleset
// simulation with gravity, jumping, obstacles that can be landed on,
// collectibles, speed ramping and a persisted high score.
//
// All update functions take the *Session they mutate explicitly. The
// Controller is the only owner of a live session.
package tensio

import (
	"github.com/vovakirdan/tensio/internal/core"
)

// Phase is the session lifecycle stage.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseDead
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the runner. Y is the top of the sprite.
type Player struct {
	X          float64
	Y          float64
	VY         float64 // vertical velocity, px/s (negative = up)
	Grounded   bool
	Frame      int     // run cycle frame, 0..RunFrames-1
	FrameTimer float64 // seconds accumulated in the current frame
}

// Box returns the full sprite box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// Obstacle stands on the ground line and scrolls left.
type Obstacle struct {
	X      float64
	Width  float64
	Height float64
	Kind   ObstacleKind
}

// Top returns the y of the obstacle's upper surface.
func (o Obstacle) Top() float64 {
	return GroundLine - o.Height
}

// Box returns the full sprite box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Top(), o.Width, o.Height)
}

// Collectible is a floating pickup. X and Y are its centre.
type Collectible struct {
	X         float64
	Y         float64
	Collected bool
}

// Box returns the pickup box centred on the collectible.
func (c Collectible) Box() core.Box {
	return core.NewBox(c.X-CollectibleSize/2, c.Y-CollectibleSize/2, CollectibleSize, CollectibleSize)
}

// Session is the authoritative snapshot of one play-through.
type Session struct {
	Phase          Phase
	Player         Player
	Score          int
	HighScore      int
	IsNewHighScore bool
	Speed          float64 // px/s
	Distance       float64 // px travelled
	Collected      int     // collectibles picked up this session
	Elapsed        float64 // seconds spent playing

	Obstacles    []Obstacle
	Collectibles []Collectible

	BackgroundOffset float64
	GroundOffset     float64

	NextObstacleIn    float64 // seconds until the next obstacle spawn
	NextCollectibleIn float64 // seconds until the next collectible spawn
}

// NewSession returns a fresh session in PhaseStart.
func NewSession(highScore int) *Session {
	if highScore < 0 {
		highScore = 0
	}
	return &Session{
		Phase: PhaseStart,
		Player: Player{
			X:        PlayerX,
			Y:        GroundLevel,
			Grounded: true,
		},
		HighScore:         highScore,
		Speed:             BaseSpeed,
		Obstacles:         make([]Obstacle, 0, 8),
		Collectibles:      make([]Collectible, 0, 4),
		NextObstacleIn:    FirstObstacleDelay,
		NextCollectibleIn: FirstCollectibleDelay,
	}
}

// CreateSession builds a fresh session with the high score read from store.
func CreateSession(store HighScoreStore) *Session {
	high := 0
	if store != nil {
		high = store.LoadHighScore()
	}
	return NewSession(high)
}

// Begin moves a session from start to playing.
func (s *Session) Begin() bool {
	if s.Phase != PhaseStart {
		return false
	}
	s.Phase = PhasePlaying
	return true
}

// HighScoreStore is the persistence collaborator for the high score.
// LoadHighScore never fails; unreadable data counts as no high score.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int) error
}

package tensio

import (
	"math"
)

// Advance moves the session forward by dt seconds: player motion, obstacle
// support, animation, scrolling, spawning and the world speed/score ramp.
// dt must already be clamped by the caller. Sessions that are not playing
// are left untouched.
func Advance(s *Session, dt float64, rng Rand) {
	if s.Phase != PhasePlaying || dt <= 0 {
		return
	}
	move(s, dt, rng)
	advanceWorld(s, dt)
}

// move is Advance without the speed, distance and score ramp. The
// controller runs collisions between the two halves.
func move(s *Session, dt float64, rng Rand) {
	movePlayer(s, dt)
	checkSupport(s)
	animate(&s.Player, dt)
	scroll(s, dt)
	spawn(s, dt, rng)
}

// Jump starts a jump if the player is standing on something.
// Returns false (and does nothing) while airborne.
func Jump(s *Session) bool {
	if s.Phase != PhasePlaying || !s.Player.Grounded {
		return false
	}
	s.Player.VY = JumpVelocity
	s.Player.Grounded = false
	return true
}

func movePlayer(s *Session, dt float64) {
	p := &s.Player
	if p.Grounded {
		return
	}

	p.VY += Gravity * dt
	p.Y += p.VY * dt

	if p.Y >= GroundLevel {
		p.Y = GroundLevel
		p.VY = 0
		p.Grounded = true
	}
}

// checkSupport drops a player standing on an obstacle once the obstacle no
// longer lies under the player's centre.
func checkSupport(s *Session) {
	p := &s.Player
	if !p.Grounded || p.Y >= GroundLevel {
		return
	}

	center := p.Box().CenterX()
	for _, o := range s.Obstacles {
		if center < o.X || center > o.X+o.Width {
			continue
		}
		if math.Abs(p.Y-(GroundLevel-o.Height)) <= SupportTolerance {
			return
		}
	}
	p.Grounded = false
}

func animate(p *Player, dt float64) {
	if !p.Grounded {
		p.Frame = 0
		p.FrameTimer = 0
		return
	}
	p.FrameTimer += dt
	for p.FrameTimer >= RunFrameDuration {
		p.FrameTimer -= RunFrameDuration
		p.Frame = (p.Frame + 1) % RunFrames
	}
}

func scroll(s *Session, dt float64) {
	dx := s.Speed * dt

	obstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.X -= dx
		if o.X+o.Width >= -OffscreenMargin {
			obstacles = append(obstacles, o)
		}
	}
	s.Obstacles = obstacles

	collectibles := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		c.X -= dx
		if c.Collected || c.X+CollectibleSize/2 < -OffscreenMargin {
			continue
		}
		collectibles = append(collectibles, c)
	}
	s.Collectibles = collectibles

	s.BackgroundOffset = math.Mod(s.BackgroundOffset+dx*BackgroundParallax, SkylineTileWidth)
	s.GroundOffset = math.Mod(s.GroundOffset+dx, GroundTileWidth)
}

func spawn(s *Session, dt float64, rng Rand) {
	s.NextObstacleIn -= dt
	if s.NextObstacleIn <= 0 {
		SpawnObstacle(s, rng)
	}

	s.NextCollectibleIn -= dt
	if s.NextCollectibleIn <= 0 {
		SpawnCollectible(s, rng)
	}
}

func advanceWorld(s *Session, dt float64) {
	s.Elapsed += dt
	s.Speed = math.Min(s.Speed+SpeedAccel*dt, MaxSpeed)
	s.Distance += s.Speed * dt

	earned := int(math.Floor(s.Distance/DistancePerPoint)) + CollectibleBonus*s.Collected
	if earned > s.Score {
		s.Score = earned
	}
}

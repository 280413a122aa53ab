package tensio

import (
	"github.com/vovakirdan/tensio/internal/core"
)

// Outcome reports what Resolve did during one frame.
type Outcome struct {
	Landed       bool // player came to rest on an obstacle top
	Died         bool // session moved to PhaseDead
	NewHighScore bool // the death beat the stored high score
	Picked       int  // collectibles picked up
}

// Overlaps is the AABB predicate used for every collision test.
// Boxes that only share an edge do not overlap.
func Overlaps(a, b core.Box) bool {
	return a.Intersects(b)
}

// Resolve tests the player against obstacles and collectibles.
//
// A falling player whose feet penetrate an obstacle top by at most
// LandingThreshold lands on it. Any other obstacle contact kills the player;
// obstacle checks stop at the first death. Collectibles are checked
// independently and award CollectibleBonus each.
func Resolve(s *Session) Outcome {
	var out Outcome
	if s.Phase != PhasePlaying {
		return out
	}

	resolveObstacles(s, &out)
	if out.Died {
		return out
	}
	resolveCollectibles(s, &out)
	return out
}

func resolveObstacles(s *Session, out *Outcome) {
	p := &s.Player
	for _, o := range s.Obstacles {
		hit := o.Box().Inset(HitboxInset)
		body := p.Box().Inset(HitboxInset)
		if !Overlaps(body, hit) {
			continue
		}

		penetration := body.Bottom() - hit.Y
		if p.VY >= 0 && penetration <= LandingThreshold {
			p.Y = GroundLevel - o.Height
			p.VY = 0
			p.Grounded = true
			out.Landed = true
			continue
		}

		die(s, out)
		return
	}
}

func die(s *Session, out *Outcome) {
	s.Phase = PhaseDead
	out.Died = true
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		s.IsNewHighScore = true
		out.NewHighScore = true
	}
}

func resolveCollectibles(s *Session, out *Outcome) {
	body := s.Player.Box().Inset(HitboxInset)

	kept := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		if !c.Collected && Overlaps(body, c.Box()) {
			c.Collected = true
			s.Score += CollectibleBonus
			s.Collected++
			out.Picked++
		}
		if !c.Collected {
			kept = append(kept, c)
		}
	}
	s.Collectibles = kept
}

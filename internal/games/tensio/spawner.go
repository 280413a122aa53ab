package tensio

// ObstacleKind selects an obstacle's size and sprite. It has no effect on
// behavior.
type ObstacleKind int

const (
	ObstacleSwitch ObstacleKind = iota // low and wide
	ObstacleServer
	ObstacleUPS
	ObstacleRack // tallest

	obstacleKindCount
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSwitch:
		return "switch"
	case ObstacleServer:
		return "server"
	case ObstacleUPS:
		return "ups"
	case ObstacleRack:
		return "rack"
	default:
		return "unknown"
	}
}

// obstacleSizes is indexed by ObstacleKind: width, height.
var obstacleSizes = [obstacleKindCount][2]float64{
	ObstacleSwitch: {44, 24},
	ObstacleServer: {26, 40},
	ObstacleUPS:    {34, 32},
	ObstacleRack:   {30, 56},
}

// Size returns the width and height of obstacles of this kind.
func (k ObstacleKind) Size() (w, h float64) {
	if k < 0 || k >= obstacleKindCount {
		k = ObstacleSwitch
	}
	sz := obstacleSizes[k]
	return sz[0], sz[1]
}

// SpawnObstacle appends one obstacle just past the right edge of the field
// and schedules the next one. The base interval is scaled by
// BaseSpeed/Speed so gaps stay roughly constant on screen.
func SpawnObstacle(s *Session, rng Rand) {
	kind := ObstacleKind(rng.Intn(int(obstacleKindCount)))
	w, h := kind.Size()
	s.Obstacles = append(s.Obstacles, Obstacle{
		X:      FieldWidth,
		Width:  w,
		Height: h,
		Kind:   kind,
	})

	speed := s.Speed
	if speed < BaseSpeed {
		speed = BaseSpeed
	}
	s.NextObstacleIn = uniform(rng, ObstacleIntervalMin, ObstacleIntervalMax) * BaseSpeed / speed
}

// SpawnCollectible appends one collectible at a random height tier just past
// the right edge and schedules the next one independently of speed.
func SpawnCollectible(s *Session, rng Rand) {
	tier := CollectibleTiers[rng.Intn(len(CollectibleTiers))]
	s.Collectibles = append(s.Collectibles, Collectible{
		X: FieldWidth + CollectibleSize/2,
		Y: GroundLine - tier,
	})
	s.NextCollectibleIn = uniform(rng, CollectibleIntervalMin, CollectibleIntervalMax)
}

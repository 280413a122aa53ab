package tensio

// Field geometry, in logical pixels. Origin is top-left, y grows downward.
const (
	FieldWidth  = 640.0
	FieldHeight = 240.0
	GroundLine  = 220.0 // y of the running surface

	PlayerX      = 64.0
	PlayerWidth  = 32.0
	PlayerHeight = 40.0

	// GroundLevel is the player's resting Y (top of sprite) on the ground.
	GroundLevel = GroundLine - PlayerHeight
)

// Motion.
const (
	Gravity      = 1800.0 // px/s²
	JumpVelocity = -620.0 // px/s, negative is up

	BaseSpeed  = 240.0 // px/s
	MaxSpeed   = 600.0
	SpeedAccel = 6.0 // px/s per second

	// MaxFrameStep bounds the time one frame may simulate, in seconds.
	MaxFrameStep = 0.050

	// MaxSubStep bounds a single physics step. At this size a fall from
	// the jump apex moves the player less than LandingThreshold per step.
	MaxSubStep = 1.0 / 60
)

// Collision. These values are tuned by hand; the collision fixtures depend
// on them exactly.
const (
	HitboxInset      = 4.0
	LandingThreshold = 12.0
	SupportTolerance = 1.0
)

// Animation.
const (
	RunFrames        = 4
	RunFrameDuration = 0.1 // seconds per run frame
)

// Spawning.
const (
	ObstacleIntervalMin    = 1.1 // seconds at BaseSpeed
	ObstacleIntervalMax    = 2.4
	CollectibleIntervalMin = 2.5
	CollectibleIntervalMax = 5.0

	FirstObstacleDelay    = 1.0
	FirstCollectibleDelay = 2.0

	OffscreenMargin = 20.0
)

// Collectibles.
const (
	CollectibleSize  = 16.0
	CollectibleBonus = 10
)

// CollectibleTiers are the centre heights of collectibles above GroundLine.
var CollectibleTiers = [3]float64{36, 84, 132}

// Scoring.
const (
	DistancePerPoint = 100.0
)

// Scenery.
const (
	BackgroundParallax = 0.25
	GroundTileWidth    = 32.0
	SkylineTileWidth   = 160.0
)

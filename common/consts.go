package common

// Play field.
const (
	ScreenWidth  = 1237
	ScreenHeight = 810
	TPS          = 60
)

// Player and sling.
const (
	PlayerRadius        = 25.0
	PlayerMaxHP         = 3
	PlayerInvincibility = 60
	EllipseRound        = PlayerRadius * 2

	SlingResistance = 5.0
	SlingMaxCount   = 15
	ReadyDistance   = 200.0

	MaxProjectiles   = 3
	ProjectileRadius = EllipseRound / 2
	HitPadding       = EllipseRound
)

// Enemy bullets.
const (
	MaxBullets      = 800
	BulletSafetyGap = 100
	BulletRadius    = 10.0
)

// Sling physics.
const (
	Force      = 0.2
	Spring     = 1.0
	Mass       = 1.0
	NearlyZero = 1e-6
	NearlyInf  = 1 / NearlyZero
)

// Boss cycle.
const (
	BossCycle        = 900
	BossEnragedHP    = 60
	HitDisplayFrames = 90
)

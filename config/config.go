package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed        float64 // Horizontal speed while a direction is held
	JumpVelocity float64 // Vertical speed set by a jump (negative is up)

	// Stomping
	StompTolerance    float64 // Pixels below an enemy's centre that still count as a stomp
	StompBounceFactor float64 // Fraction of JumpVelocity applied after a stomp

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Speed            float64
	StartDirection   float64
	CollisionWidth   float64
	CollisionHeight  float64
	IgnoreGroundTurn bool // Skip direction reversal when only touching ground tiles
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 // Added to vertical speed every frame, no terminal velocity
}

// Block is a floating block placed in the level
type Block struct {
	X, Y float64
}

// Spawn is a world position where an entity starts
type Spawn struct {
	X, Y float64
}

// LevelConfig describes the single built-in level
type LevelConfig struct {
	Width        float64
	TileSize     float64
	GroundHeight float64
	Blocks       []Block
	PlayerSpawn  Spawn
	EnemySpawns  []Spawn
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ViewportWidth float64
}

// EffectsConfig contains purely visual effect timings
type EffectsConfig struct {
	HitFlashSeconds float32 // How long the player flashes white after being hit
}

// DebugConfig contains debug options
type DebugConfig struct {
	ShowOverlay bool // Draw collision outlines and the HUD line
	Verbose     bool // Log at debug level
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Level LevelConfig
var Camera CameraConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	SkyBlue     = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	GroundBrown = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	BlockBrown  = color.RGBA{R: 160, G: 82, B: 45, A: 255}
	PlayerRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	EnemyGreen  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	HUDText     = color.RGBA{R: 20, G: 20, B: 40, A: 255}
	DebugSolid  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DebugPlayer = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	DebugEnemy  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Direction constants for enemy movement
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  600,
		Height: 400,
		TPS:    60,
		Title:  "AC'S HOLDING SMB3",
	}

	Physics = PhysicsConfig{
		Gravity: 0.8,
	}

	Player = PlayerConfig{
		Speed:        5,
		JumpVelocity: -15,

		StompTolerance:    10,
		StompBounceFactor: 0.5,

		CollisionWidth:  40,
		CollisionHeight: 40,
	}

	Enemy = EnemyConfig{
		Speed:            2,
		StartDirection:   DirectionRight,
		CollisionWidth:   40,
		CollisionHeight:  40,
		IgnoreGroundTurn: false,
	}

	groundTop := float64(C.Height) - 40

	Level = LevelConfig{
		Width:        2000,
		TileSize:     40,
		GroundHeight: 40,
		Blocks: []Block{
			{X: 300, Y: float64(C.Height) - 150},
			{X: 340, Y: float64(C.Height) - 150},
			{X: 600, Y: float64(C.Height) - 200},
			{X: 800, Y: float64(C.Height) - 250},
			{X: 1000, Y: float64(C.Height) - 150},
		},
		PlayerSpawn: Spawn{X: 100, Y: groundTop - Player.CollisionHeight},
		EnemySpawns: []Spawn{
			{X: 400, Y: groundTop - Enemy.CollisionHeight},
		},
	}

	Camera = CameraConfig{
		ViewportWidth: float64(C.Width),
	}

	Effects = EffectsConfig{
		HitFlashSeconds: 0.4,
	}

	Debug = DebugConfig{
		ShowOverlay: false,
		Verbose:     false,
	}
}

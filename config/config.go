package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only draw layer; entities are drawn by dedicated renderers.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Size
	BaseWidth  float64
	BaseHeight float64

	// Inflation
	InflationSpeed       float64 // rate units per second
	MinInflationRate     float64
	MaxInflationRate     float64
	MaxScale             float64 // size multiplier at MaxInflationRate
	DefaultInflationRate float64 // used when a level does not set inflationRate
	AirDrainRate         float64 // air gauge units per second while growing
	AnchorX              float64 // resize offset factor applied to the size delta
	AnchorY              float64

	// Derived body limits
	MinMass        float64
	MaxMass        float64
	MinGravity     float64
	MaxGravity     float64
	MinRestitution float64
	MaxRestitution float64
	RestitutionDiv float64

	// Jump
	JumpVelocity  float64
	JumpHighTime  float64 // seconds of hold that still add height
	JumpHighAccel float64

	// Movement
	AccelGround    float64
	AccelAir       float64
	AccelDeflation float64
	FrictionGround float64
	FrictionAir    float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	TickRate         int
	Gravity          float64 // px/s^2 before the player's gravity scale
	MaxSpeed         float64 // per axis clamp
	MinBounceSpeed   float64 // bounces slower than this come to rest
	SpaceCellSize    int
	ImpactEpsilon    float64
	GroundProbeDepth float64
}

// LevelConfig describes where levels live and how they are named
type LevelConfig struct {
	Dir              string
	IdentifierFormat string // fmt verb receives the level index
	CollisionLayer   string
	EntityGroup      string
	FirstLevel       int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Speed  float64 // fraction of the distance closed per second
	MinVel float64 // px/s floor so the camera never crawls
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	FontSize   float64
	AirColor   color.RGBA
	DeathColor color.RGBA
}

// PaletteConfig colors entities when no sprite art is present
type PaletteConfig struct {
	Background color.RGBA
	Solid      color.RGBA
	Player     color.RGBA
	Crowned    color.RGBA
	Door       color.RGBA
	Spikes     color.RGBA
	Button     color.RGBA
	Inflator   color.RGBA
	Crown      color.RGBA
}

// TransitionConfig contains the level fade-in settings
type TransitionConfig struct {
	FadeInSeconds float64
}

// DebugConfig contains debug switches (can be overridden by CLI flags)
type DebugConfig struct {
	DrawGrid bool
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// Global configuration instances
var (
	C          Config
	Player     PlayerConfig
	Physics    PhysicsConfig
	Level      LevelConfig
	Camera     CameraConfig
	HUD        HUDConfig
	Palette    PaletteConfig
	Transition TransitionConfig
	Debug      DebugConfig
)

func init() {
	C = Config{
		Title:  "Balloon Game",
		Width:  512,
		Height: 512,
	}

	Player = PlayerConfig{
		BaseWidth:  32,
		BaseHeight: 32,

		InflationSpeed:       1.2,
		MinInflationRate:     1.6,
		MaxInflationRate:     8.0,
		MaxScale:             8.0,
		DefaultInflationRate: 2.8,
		AirDrainRate:         0.5,
		AnchorX:              -0.5, // grow around the geometric centre
		AnchorY:              -0.5,

		MinMass:        0.1,
		MaxMass:        1.0,
		MinGravity:     0.3,
		MaxGravity:     1.0,
		MinRestitution: 0.1,
		MaxRestitution: 2.0,
		RestitutionDiv: 10.0,

		JumpVelocity:  200.0,
		JumpHighTime:  0.08,
		JumpHighAccel: 780.0,

		AccelGround:    600.0,
		AccelAir:       300.0,
		AccelDeflation: 900.0,
		FrictionGround: 2.0,
		FrictionAir:    2.0,
	}

	Physics = PhysicsConfig{
		TickRate:         60,
		Gravity:          400.0,
		MaxSpeed:         800.0,
		MinBounceSpeed:   20.0,
		SpaceCellSize:    32,
		ImpactEpsilon:    0.001,
		GroundProbeDepth: 1.0,
	}

	Level = LevelConfig{
		Dir:              "levels",
		IdentifierFormat: "Level_%d",
		CollisionLayer:   "Collision",
		EntityGroup:      "Entities",
		FirstLevel:       0,
	}

	Camera = CameraConfig{
		Speed:  3.0,
		MinVel: 5.0,
	}

	HUD = HUDConfig{
		Margin:     8,
		LineHeight: 30,
		FontSize:   24,
		AirColor:   color.RGBA{R: 0x42, G: 0xbf, B: 0xe8, A: 0xff},
		DeathColor: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}

	Palette = PaletteConfig{
		Background: color.RGBA{R: 0x1d, G: 0x1f, B: 0x2b, A: 0xff},
		Solid:      color.RGBA{R: 0x5b, G: 0x6e, B: 0xe1, A: 0xff},
		Player:     color.RGBA{R: 0xe8, G: 0x5d, B: 0x75, A: 0xff},
		Crowned:    color.RGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff},
		Door:       color.RGBA{R: 0x37, G: 0x94, B: 0x6e, A: 0xff},
		Spikes:     color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
		Button:     color.RGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
		Inflator:   color.RGBA{R: 0x42, G: 0xbf, B: 0xe8, A: 0xff},
		Crown:      color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	}

	Transition = TransitionConfig{
		FadeInSeconds: 0.4,
	}

	Debug = DebugConfig{
		DrawGrid: false,
	}
}

// TickSeconds is the fixed simulation step.
func TickSeconds() float64 {
	return 1.0 / float64(Physics.TickRate)
}

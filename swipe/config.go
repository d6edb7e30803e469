package swipe

import (
	"image/color"
	"time"

	"honnef.co/go/swipeback/f32color"

	"gioui.org/unit"
)

// Config holds the tunables of a Controller. Sizes and speeds are in
// device-independent pixels and are converted with the unit.Metric passed
// to New.
type Config struct {
	// EdgeMask selects the edges that can start a swipe.
	EdgeMask EdgeMask
	// EdgeSize is the width of the band along each edge in which a press
	// starts a swipe.
	EdgeSize unit.Dp
	// MinFlingVelocity is the speed, in dp per second, above which a
	// release counts as a fling and overrides the panel's position.
	MinFlingVelocity unit.Dp
	// SettleSpeed is the speed, in dp per second, at which a released panel
	// moves toward its target.
	SettleSpeed unit.Dp
	// VelocityWindow is how much pointer history is used to estimate the
	// release velocity.
	VelocityWindow time.Duration
	// ScrimColor is the color of the scrim at progress 0.
	ScrimColor color.NRGBA
	Enabled    bool
}

const (
	DefaultEdgeSize         unit.Dp = 20
	DefaultMinFlingVelocity unit.Dp = 400
	DefaultSettleSpeed      unit.Dp = 1500
)

// DefaultScrimColor is 0x99000000 in ARGB notation.
var DefaultScrimColor = f32color.ARGB(0x99000000)

func DefaultConfig() Config {
	return Config{
		EdgeMask:         EdgeAll,
		EdgeSize:         DefaultEdgeSize,
		MinFlingVelocity: DefaultMinFlingVelocity,
		SettleSpeed:      DefaultSettleSpeed,
		VelocityWindow:   DefaultVelocityWindow,
		ScrimColor:       DefaultScrimColor,
		Enabled:          true,
	}
}

// withDefaults replaces non-positive sizes and speeds with their defaults.
// The edge mask, scrim color and Enabled are taken as given.
func (cfg Config) withDefaults() Config {
	if cfg.EdgeSize <= 0 {
		cfg.EdgeSize = DefaultEdgeSize
	}
	if cfg.MinFlingVelocity <= 0 {
		cfg.MinFlingVelocity = DefaultMinFlingVelocity
	}
	if cfg.SettleSpeed <= 0 {
		cfg.SettleSpeed = DefaultSettleSpeed
	}
	if cfg.VelocityWindow <= 0 {
		cfg.VelocityWindow = DefaultVelocityWindow
	}
	return cfg
}

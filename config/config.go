// Package config loads swipe-back settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"honnef.co/go/swipeback/f32color"
	"honnef.co/go/swipeback/swipe"

	"gioui.org/unit"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a swipe.Config. Zero values fall back to the
// defaults.
type File struct {
	// Edges lists the edges that can start a swipe, by name ("left",
	// "right", "bottom"). A nil list enables all edges; an empty one
	// enables none.
	Edges []string `toml:"edges" yaml:"edges"`
	// EdgeSize is in dp.
	EdgeSize float32 `toml:"edge_size" yaml:"edge_size"`
	// MinFlingVelocity is in dp per second.
	MinFlingVelocity float32 `toml:"min_fling_velocity" yaml:"min_fling_velocity"`
	// SettleSpeed is in dp per second.
	SettleSpeed float32 `toml:"settle_speed" yaml:"settle_speed"`
	// VelocityWindow is a duration such as "100ms".
	VelocityWindow string `toml:"velocity_window" yaml:"velocity_window"`
	// ScrimColor is in 0xAARRGGBB notation.
	ScrimColor string `toml:"scrim_color" yaml:"scrim_color"`
	// Disabled turns off swiping.
	Disabled bool `toml:"disabled" yaml:"disabled"`
	// ShadowWidth is the thickness of edge shadows, in dp.
	ShadowWidth float32 `toml:"shadow_width" yaml:"shadow_width"`
}

var ErrUnknownFormat = errors.New("unknown config file format")

// Load reads the file at path, choosing the decoder by its extension.
func Load(path string) (File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return File{}, fmt.Errorf("couldn't decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("couldn't read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("couldn't decode %s: %w", path, err)
		}
	default:
		return File{}, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if _, err := f.Swipe(); err != nil {
		return File{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return f, nil
}

// Swipe converts f to a swipe.Config.
func (f File) Swipe() (swipe.Config, error) {
	cfg := swipe.DefaultConfig()
	if f.Edges != nil {
		var mask swipe.EdgeMask
		for _, name := range f.Edges {
			e, ok := swipe.ParseEdge(name)
			if !ok {
				return swipe.Config{}, fmt.Errorf("unknown edge %q", name)
			}
			mask |= swipe.EdgeMask(e)
		}
		cfg.EdgeMask = mask
	}

	sizes := []struct {
		name string
		v    float32
		dst  *unit.Dp
	}{
		{"edge_size", f.EdgeSize, &cfg.EdgeSize},
		{"min_fling_velocity", f.MinFlingVelocity, &cfg.MinFlingVelocity},
		{"settle_speed", f.SettleSpeed, &cfg.SettleSpeed},
	}
	for _, s := range sizes {
		if s.v < 0 {
			return swipe.Config{}, fmt.Errorf("%s must not be negative, got %v", s.name, s.v)
		}
		if s.v > 0 {
			*s.dst = unit.Dp(s.v)
		}
	}
	if f.ShadowWidth < 0 {
		return swipe.Config{}, fmt.Errorf("shadow_width must not be negative, got %v", f.ShadowWidth)
	}

	if f.VelocityWindow != "" {
		d, err := time.ParseDuration(f.VelocityWindow)
		if err != nil {
			return swipe.Config{}, fmt.Errorf("velocity_window: %w", err)
		}
		if d <= 0 {
			return swipe.Config{}, fmt.Errorf("velocity_window must be positive, got %s", d)
		}
		cfg.VelocityWindow = d
	}

	if f.ScrimColor != "" {
		s := strings.TrimPrefix(strings.TrimPrefix(f.ScrimColor, "0x"), "#")
		if len(s) != 8 {
			return swipe.Config{}, fmt.Errorf("scrim_color %q isn't of the form 0xAARRGGBB", f.ScrimColor)
		}
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return swipe.Config{}, fmt.Errorf("scrim_color %q isn't of the form 0xAARRGGBB", f.ScrimColor)
		}
		cfg.ScrimColor = f32color.ARGB(uint32(v))
	}

	cfg.Enabled = !f.Disabled
	return cfg, nil
}

// DefaultPath returns the location of the config file in the user's
// configuration directory.
func DefaultPath() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "swipeback", "config.toml")
}

func xdgOrFallback(xdg string, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
	}
	return fallback
}

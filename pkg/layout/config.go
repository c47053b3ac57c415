package layout

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cloudtopo/topograph/pkg/errors"
)

// Config holds the tuning constants for the layout passes. All distances are
// in pixels. The zero value is not usable; start from [DefaultConfig] or
// [LoadConfig].
type Config struct {
	// Padding is the interior margin between a container's border and its
	// children, and the margin added around children when sizing containers.
	Padding float64 `toml:"padding"`

	// SiblingGap is the horizontal spacing between adjacent siblings laid
	// out in a row inside their parent.
	SiblingGap float64 `toml:"sibling_gap"`

	// BandGap is the vertical spacing between adjacent layer bands.
	BandGap float64 `toml:"band_gap"`

	// MinGap is the vertical clearance inserted between sibling containers
	// by the collision resolver on top of the removed overlap.
	MinGap float64 `toml:"min_gap"`

	// MaxCollisionPasses caps the collision resolver's fixed-point
	// iteration so pathological inputs still terminate.
	MaxCollisionPasses int `toml:"max_collision_passes"`

	// NearEdgeThreshold is the distance below which the validator reports
	// an edge segment as passing near an unrelated node's box.
	NearEdgeThreshold float64 `toml:"near_edge_threshold"`

	// ExternalGap is the horizontal clearance between the rightmost
	// container edge and the strip of parentless leaf nodes.
	ExternalGap float64 `toml:"external_gap"`

	// DefaultContainerWidth and DefaultContainerHeight are the floor sizes
	// a childless container keeps after sizing. They guarantee container
	// boxes never degenerate to zero area.
	DefaultContainerWidth  float64 `toml:"default_container_width"`
	DefaultContainerHeight float64 `toml:"default_container_height"`
}

// DefaultConfig returns the layout constants used when no config file is
// supplied. The values mirror the spacing of the hand-tuned diagrams this
// engine replaces.
func DefaultConfig() Config {
	return Config{
		Padding:                40,
		SiblingGap:             20,
		BandGap:                60,
		MinGap:                 20,
		MaxCollisionPasses:     10,
		NearEdgeThreshold:      24,
		ExternalGap:            80,
		DefaultContainerWidth:  100,
		DefaultContainerHeight: 100,
	}
}

// LoadConfig reads a TOML layout config from path. Keys absent from the file
// keep their [DefaultConfig] values, so a config file only needs to name the
// constants it overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Padding < 0 || c.SiblingGap < 0 || c.BandGap < 0 || c.MinGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing constants must be non-negative")
	}
	if c.MaxCollisionPasses < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_collision_passes must be at least 1")
	}
	if c.DefaultContainerWidth <= 0 || c.DefaultContainerHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "default container size must be positive")
	}
	return nil
}

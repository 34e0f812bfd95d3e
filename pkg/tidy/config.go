package tidy

import (
	"github.com/matzehuels/tidytree/pkg/errors"
)

// Default configuration values.
const (
	DefaultMaxDepth          = 100
	DefaultLevelSeparation   = 40.0
	DefaultSiblingSeparation = 20.0
	DefaultSubtreeSeparation = 20.0
	DefaultTopXAdjustment    = 0.0
	DefaultTopYAdjustment    = 20.0
)

// Config controls spacing and depth of a layout.
type Config struct {
	// MaxDepth is the deepest level (root = 0) that is threaded, apportioned
	// and positioned. Zero or less means no limit.
	MaxDepth int `json:"max_depth" toml:"max_depth"`

	// LevelSeparation is the vertical gap between a level's tallest node
	// and the next level.
	LevelSeparation float64 `json:"level_separation" toml:"level_separation"`

	// SiblingSeparation is the horizontal gap between adjacent siblings.
	SiblingSeparation float64 `json:"sibling_separation" toml:"sibling_separation"`

	// SubtreeSeparation is the minimum horizontal gap between neighboring
	// subtrees that are not siblings.
	SubtreeSeparation float64 `json:"subtree_separation" toml:"subtree_separation"`

	// TopXAdjustment and TopYAdjustment offset the whole tree.
	TopXAdjustment float64 `json:"top_x_adjustment" toml:"top_x_adjustment"`
	TopYAdjustment float64 `json:"top_y_adjustment" toml:"top_y_adjustment"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		MaxDepth:          DefaultMaxDepth,
		LevelSeparation:   DefaultLevelSeparation,
		SiblingSeparation: DefaultSiblingSeparation,
		SubtreeSeparation: DefaultSubtreeSeparation,
		TopXAdjustment:    DefaultTopXAdjustment,
		TopYAdjustment:    DefaultTopYAdjustment,
	}
}

// Validate rejects configurations that the layout does not define: negative
// separations and a negative depth cap. [Layout] itself never validates.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max depth must not be negative (got %d)", c.MaxDepth)
	}
	seps := []struct {
		name  string
		value float64
	}{
		{"level separation", c.LevelSeparation},
		{"sibling separation", c.SiblingSeparation},
		{"subtree separation", c.SubtreeSeparation},
	}
	for _, s := range seps {
		if s.value < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative (got %g)", s.name, s.value)
		}
	}
	return nil
}

// depthLimit returns MaxDepth with "no limit" resolved to a concrete bound.
func (c Config) depthLimit() int {
	if c.MaxDepth <= 0 {
		return int(^uint(0) >> 1)
	}
	return c.MaxDepth
}

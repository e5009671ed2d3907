package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/idursun/lazyview/internal/lazy"
)

// Config is the user-facing configuration of the demo application and the
// coordinator defaults it constructs.
type Config struct {
	Limiter  LimiterConfig  `toml:"limiter"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// LimiterConfig selects the global rate-limiting policy. Mode is "throttle"
// or "debounce"; anything else falls back to throttle.
type LimiterConfig struct {
	Mode       string `toml:"mode"`
	IntervalMs int    `toml:"interval_ms"`
}

// DefaultsConfig holds per-element defaults applied at registration.
type DefaultsConfig struct {
	Height int        `toml:"height"`
	Offset [2]float64 `toml:"offset"`
	Resize bool       `toml:"resize"`
	Scroll bool       `toml:"scroll"`
}

func Default() *Config {
	return &Config{
		Limiter:  LimiterConfig{Mode: "throttle", IntervalMs: int(lazy.DefaultInterval / time.Millisecond)},
		Defaults: DefaultsConfig{Height: lazy.DefaultHeight, Scroll: true},
	}
}

// Load reads path. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Interval returns the configured rate-limit interval.
func (l LimiterConfig) Interval() time.Duration {
	if l.IntervalMs <= 0 {
		return lazy.DefaultInterval
	}
	return time.Duration(l.IntervalMs) * time.Millisecond
}

// CoordinatorOptions translates the limiter section into coordinator
// options.
func (c *Config) CoordinatorOptions() []lazy.Option {
	if c.Limiter.Mode == "debounce" {
		return []lazy.Option{lazy.WithDebounce(c.Limiter.Interval())}
	}
	return []lazy.Option{lazy.WithThrottle(c.Limiter.Interval())}
}

// ElementOptions translates the defaults section into element options.
func (c *Config) ElementOptions() []lazy.ElementOption {
	opts := []lazy.ElementOption{
		lazy.Height(float64(c.Defaults.Height)),
		lazy.WithOffsets(c.Defaults.Offset[0], c.Defaults.Offset[1]),
	}
	if c.Defaults.Resize {
		opts = append(opts, lazy.OnResize())
	}
	if !c.Defaults.Scroll {
		opts = append(opts, lazy.NoScroll())
	}
	return opts
}

// Package config holds the demo settings: step count, tick interval, loop
// policy, hit radius and export options. Values come from defaults, then an
// optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/chaikin/chaikin"
)

// Defaults
const (
	DefaultMaxSteps        = 6
	DefaultStepInterval    = 1000 * time.Millisecond
	DefaultHitRadius       = 2.0
	DefaultMessageDuration = 2 * time.Second
	DefaultExportDir       = "."
	DefaultExportScale     = 4
)

// Limits enforced by Validate
const (
	MaxStepsLimit   = 12
	MinStepInterval = 10 * time.Millisecond
	MaxExportScale  = 16
)

var (
	ErrInvalidSteps    = errors.New("max_steps out of range")
	ErrInvalidInterval = errors.New("step_interval too short")
	ErrInvalidRadius   = errors.New("hit_radius must be positive")
	ErrInvalidScale    = errors.New("export_scale out of range")
	ErrInvalidDuration = errors.New("message_duration must not be negative")
	ErrUnknownSetting  = errors.New("unknown setting")
)

// Config is the full set of tunables for one demo session
type Config struct {
	MaxSteps        int           `yaml:"max_steps"`
	StepInterval    time.Duration `yaml:"step_interval"`
	LoopPolicy      string        `yaml:"loop_policy"`
	HitRadius       float64       `yaml:"hit_radius"`
	MessageDuration time.Duration `yaml:"message_duration"`
	Sound           bool          `yaml:"sound"`
	ExportDir       string        `yaml:"export_dir"`
	ExportScale     int           `yaml:"export_scale"`
	StartClosed     bool          `yaml:"start_closed"`
}

// Default returns the reference configuration: 6 steps at one second each
func Default() *Config {
	return &Config{
		MaxSteps:        DefaultMaxSteps,
		StepInterval:    DefaultStepInterval,
		LoopPolicy:      chaikin.LoopWrap.String(),
		HitRadius:       DefaultHitRadius,
		MessageDuration: DefaultMessageDuration,
		ExportDir:       DefaultExportDir,
		ExportScale:     DefaultExportScale,
	}
}

// Load reads a YAML file over the defaults
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Decode(data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode merges YAML data into c
func (c *Config) Decode(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Encode renders c as YAML
func (c *Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}

// Policy returns the parsed loop policy
func (c *Config) Policy() (chaikin.LoopPolicy, error) {
	return chaikin.ParseLoopPolicy(c.LoopPolicy)
}

// Validate checks every field and reports the first problem found
func (c *Config) Validate() error {
	if c.MaxSteps < 0 || c.MaxSteps > MaxStepsLimit {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidSteps, c.MaxSteps, MaxStepsLimit)
	}
	if c.StepInterval < MinStepInterval {
		return fmt.Errorf("%w: %v < %v", ErrInvalidInterval, c.StepInterval, MinStepInterval)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("loop_policy: %w", err)
	}
	if !(c.HitRadius > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, c.HitRadius)
	}
	if c.MessageDuration < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, c.MessageDuration)
	}
	if c.ExportScale < 1 || c.ExportScale > MaxExportScale {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidScale, c.ExportScale, MaxExportScale)
	}
	return nil
}

// Override sets a single field from its flag name and textual value
// Flag names match the YAML keys with dashes, e.g. "max-steps".
func (c *Config) Override(name, value string) error {
	var err error
	switch name {
	case "max-steps":
		c.MaxSteps, err = cast.ToIntE(value)
	case "step-interval":
		c.StepInterval, err = cast.ToDurationE(value)
	case "loop-policy":
		c.LoopPolicy = value
	case "hit-radius":
		c.HitRadius, err = cast.ToFloat64E(value)
	case "message-duration":
		c.MessageDuration, err = cast.ToDurationE(value)
	case "sound":
		c.Sound, err = cast.ToBoolE(value)
	case "export-dir":
		c.ExportDir = value
	case "export-scale":
		c.ExportScale, err = cast.ToIntE(value)
	case "closed":
		c.StartClosed, err = cast.ToBoolE(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	if err != nil {
		return fmt.Errorf("-%s=%q: %w", name, value, err)
	}
	return nil
}

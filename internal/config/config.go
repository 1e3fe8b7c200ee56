package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"time"
	_ "time/tzdata" // timezone names resolve on hosts without zoneinfo

	"gopkg.in/yaml.v3"

	"github.com/star/scoped/internal/launch"
)

// ErrUnknownVehicle is returned when a vehicle name is not in the catalogue.
var ErrUnknownVehicle = errors.New("unknown vehicle")

// Config is the CLI configuration.
type Config struct {
	Model           ModelConfig        `yaml:"model"`
	Vehicles        map[string]Vehicle `yaml:"vehicles"`
	Timezone        string             `yaml:"timezone"`
	MetricsTextfile string             `yaml:"metrics_textfile"`
}

// ModelConfig mirrors launch.Model in YAML form.
type ModelConfig struct {
	SpecificImpulse    float64 `yaml:"isp_s"`
	ThrustToWeight     float64 `yaml:"thrust_to_weight"`
	StructuralFraction float64 `yaml:"structural_fraction"`
	AscentLosses       float64 `yaml:"ascent_losses_mps"`
}

// Vehicle is a catalogue entry.
type Vehicle struct {
	Description string        `yaml:"description"`
	Thrust      float64       `yaml:"thrust_n"`
	Model       ModelOverride `yaml:"model"`
}

// ModelOverride holds per-vehicle model fields. Unset fields inherit the
// default model; an explicit 0 is kept.
type ModelOverride struct {
	SpecificImpulse    *float64 `yaml:"isp_s"`
	ThrustToWeight     *float64 `yaml:"thrust_to_weight"`
	StructuralFraction *float64 `yaml:"structural_fraction"`
	AscentLosses       *float64 `yaml:"ascent_losses_mps"`
}

// Model converts c to a launch.Model.
func (c ModelConfig) Model() launch.Model {
	return launch.Model{
		SpecificImpulse:    c.SpecificImpulse,
		ThrustToWeight:     c.ThrustToWeight,
		StructuralFraction: c.StructuralFraction,
		AscentLosses:       c.AscentLosses,
	}
}

// apply returns base with the fields set in o replaced.
func (o ModelOverride) apply(base ModelConfig) ModelConfig {
	if o.SpecificImpulse != nil {
		base.SpecificImpulse = *o.SpecificImpulse
	}
	if o.ThrustToWeight != nil {
		base.ThrustToWeight = *o.ThrustToWeight
	}
	if o.StructuralFraction != nil {
		base.StructuralFraction = *o.StructuralFraction
	}
	if o.AscentLosses != nil {
		base.AscentLosses = *o.AscentLosses
	}
	return base
}

func floatPtr(v float64) *float64 { return &v }

// Default returns the built-in configuration.
func Default() Config {
	m := launch.DefaultModel
	return Config{
		Model: ModelConfig{
			SpecificImpulse:    m.SpecificImpulse,
			ThrustToWeight:     m.ThrustToWeight,
			StructuralFraction: m.StructuralFraction,
			AscentLosses:       m.AscentLosses,
		},
		Vehicles: map[string]Vehicle{
			"falcon9": {
				Description: "Falcon 9 Block 5, nine Merlin 1D at sea level",
				Thrust:      7.607e6,
			},
			"falconheavy": {
				Description: "Falcon Heavy, 27 Merlin 1D at sea level",
				Thrust:      22.819e6,
			},
			"electron": {
				Description: "Electron, nine Rutherford engines",
				Thrust:      224e3,
				Model: ModelOverride{
					SpecificImpulse: floatPtr(340),
				},
			},
		},
		Timezone: "UTC",
	}
}

// Load reads a YAML config from path on top of Default. Unknown fields are
// rejected. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the default model, every vehicle and the timezone.
func (c Config) Validate() error {
	if err := c.Model.Model().Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	for name, v := range c.Vehicles {
		if v.Thrust < 0 {
			return fmt.Errorf("vehicle %q: %w: thrust must be non-negative", name, launch.ErrInvalidInput)
		}
		if err := v.Model.apply(c.Model).Model().Validate(); err != nil {
			return fmt.Errorf("vehicle %q: %w", name, err)
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone. Empty means UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Vehicle returns the named vehicle's liftoff thrust and its model, with unset
// model fields taken from the default model.
func (c Config) Vehicle(name string) (float64, launch.Model, error) {
	v, ok := c.Vehicles[name]
	if !ok {
		return 0, launch.Model{}, fmt.Errorf("%w: %q", ErrUnknownVehicle, name)
	}
	return v.Thrust, v.Model.apply(c.Model).Model(), nil
}

// VehicleNames returns the catalogue names in sorted order.
func (c Config) VehicleNames() []string {
	names := make([]string, 0, len(c.Vehicles))
	for name := range c.Vehicles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overrides fields from SCOPED_* environment variables. Invalid
// values are logged and ignored.
func (c *Config) ApplyEnv(logger *slog.Logger) {
	c.Model.SpecificImpulse = envFloat(logger, "SCOPED_ISP", c.Model.SpecificImpulse)
	c.Model.ThrustToWeight = envFloat(logger, "SCOPED_TWR", c.Model.ThrustToWeight)
	c.Model.StructuralFraction = envFloat(logger, "SCOPED_STRUCTURAL_FRACTION", c.Model.StructuralFraction)
	c.Model.AscentLosses = envFloat(logger, "SCOPED_ASCENT_LOSSES", c.Model.AscentLosses)

	if v := os.Getenv("SCOPED_TIMEZONE"); v != "" {
		if _, err := time.LoadLocation(v); err != nil {
			logger.Warn("invalid SCOPED_TIMEZONE value, using default", "value", v, "default", c.Timezone)
		} else {
			c.Timezone = v
		}
	}

	if v := os.Getenv("SCOPED_METRICS_TEXTFILE"); v != "" {
		c.MetricsTextfile = v
	}

	logger.Debug("model config",
		"isp_s", c.Model.SpecificImpulse,
		"thrust_to_weight", c.Model.ThrustToWeight,
		"structural_fraction", c.Model.StructuralFraction,
		"ascent_losses_mps", c.Model.AscentLosses,
		"timezone", c.Timezone,
	)
}

func envFloat(logger *slog.Logger, key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f >= 0) || math.IsInf(f, 1) {
		logger.Warn("invalid "+key+" value, using default", "value", v, "default", def)
		return def
	}
	return f
}

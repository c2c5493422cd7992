package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AxisBindingYAML is the YAML-serializable form of one axis.Binding. It
// duplicates axis.Binding's fields rather than importing the axis
// package, keeping this config/profile format independent of the core's
// internal types the way stratux-ng's and sensor-logger's YAML configs
// are independent structs from the runtime types they configure.
type AxisBindingYAML struct {
	Body   string  `yaml:"body"`
	Source string  `yaml:"source"`
	Sign   float64 `yaml:"sign"`
}

// BoundsYAML is the YAML-serializable form of one channel's six observed
// extents.
type BoundsYAML struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
	ZMin float64 `yaml:"z_min"`
	ZMax float64 `yaml:"z_max"`
}

// Profile is a snapshot of one calibration session: the bounds an
// operator observed for both channels, the axis bindings in effect when
// they were recorded, a free-text label, and a timestamp. It is never
// read back into a running OrientationEngine automatically — see the
// Non-goal on dynamic bias estimation.
type Profile struct {
	Label     string            `yaml:"label"`
	Timestamp time.Time         `yaml:"timestamp"`
	AccelBounds BoundsYAML      `yaml:"accel_bounds"`
	MagBounds   BoundsYAML      `yaml:"mag_bounds"`
	AccelBindings [3]AxisBindingYAML `yaml:"accel_bindings"`
	MagBindings   [3]AxisBindingYAML `yaml:"mag_bindings"`
}

// SaveProfile marshals p as YAML and writes it to path.
func SaveProfile(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write profile %s: %w", path, err)
	}
	return nil
}

// LoadProfile reads and unmarshals a Profile from path.
func LoadProfile(path string) (Profile, error) {
	var p Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: read profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("config: parse profile %s: %w", path, err)
	}
	return p, nil
}

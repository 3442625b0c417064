package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneSpec is a set of objects together with the animations they start
// with and the scripted easing curves those animations may name.
type SceneSpec struct {
	Name    string       `yaml:"name"`
	Easings []EasingSpec `yaml:"easings"`
	Objects []ObjectSpec `yaml:"objects"`
}

// EasingSpec defines a curve from a tengo script file or inline source.
type EasingSpec struct {
	Name    string `yaml:"name"`
	Script  string `yaml:"script"`
	Source  string `yaml:"source"`
	Samples int    `yaml:"samples"`
}

type ObjectSpec struct {
	Name       string          `yaml:"name"`
	Components map[string]any  `yaml:"components"`
	Animations []AnimationSpec `yaml:"animations"`
}

type AnimationSpec struct {
	Name      string     `yaml:"name"`
	Component string     `yaml:"component"`
	Property  string     `yaml:"property"`
	To        ValueSpec  `yaml:"to"`
	From      *ValueSpec `yaml:"from"`
	Playback  string     `yaml:"playback"`
	Easing    string     `yaml:"easing"`
	Duration  float64    `yaml:"duration"`
	Delay     float64    `yaml:"delay"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadScene reads a scene by prefab name, preferring a copy on disk.
func LoadScene(name string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// LoadSceneFile reads a scene from an arbitrary path.
func LoadSceneFile(path string) (*SceneSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return &spec, nil
}

func (s *SceneSpec) Validate() error {
	seen := make(map[string]bool, len(s.Objects))
	for i, obj := range s.Objects {
		if obj.Name == "" {
			return fmt.Errorf("object %d has no name", i)
		}
		if seen[obj.Name] {
			return fmt.Errorf("duplicate object %q", obj.Name)
		}
		seen[obj.Name] = true
		for j, a := range obj.Animations {
			if a.Component == "" || a.Property == "" {
				return fmt.Errorf("object %q: animation %d needs component and property", obj.Name, j)
			}
			if len(a.To.Values) == 0 {
				return fmt.Errorf("object %q: animation %d has no target", obj.Name, j)
			}
			if a.Duration < 0 || a.Delay < 0 {
				return fmt.Errorf("object %q: animation %d has negative timing", obj.Name, j)
			}
		}
	}
	for i, e := range s.Easings {
		if e.Name == "" {
			return fmt.Errorf("easing %d has no name", i)
		}
		if (e.Script == "") == (e.Source == "") {
			return fmt.Errorf("easing %q needs exactly one of script or source", e.Name)
		}
	}
	return nil
}

// ValueSpec is an animation target: a number, a list of 3 or 4 numbers,
// or a "#rrggbb[aa]" color that decodes to 4 channels in [0, 1].
type ValueSpec struct {
	Values []float32
}

func (v *ValueSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if strings.HasPrefix(value.Value, "#") {
			var c YAMLColor
			if err := c.UnmarshalYAML(value); err != nil {
				return err
			}
			v.Values = c.Floats()
			return nil
		}
		f, err := strconv.ParseFloat(value.Value, 32)
		if err != nil {
			return fmt.Errorf("line %d: value %q is not a number", value.Line, value.Value)
		}
		v.Values = []float32{float32(f)}
		return nil
	case yaml.SequenceNode:
		var vals []float32
		if err := value.Decode(&vals); err != nil {
			return err
		}
		if len(vals) < 3 || len(vals) > 4 {
			return fmt.Errorf("line %d: vector needs 3 or 4 elements, got %d", value.Line, len(vals))
		}
		v.Values = vals
		return nil
	}
	return fmt.Errorf("line %d: unsupported value", value.Line)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	if len(s) == 6 {
		s += "ff"
	}
	rgba, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	c.Color = color.NRGBA{R: uint8(rgba >> 24), G: uint8(rgba >> 16), B: uint8(rgba >> 8), A: uint8(rgba)}
	return nil
}

// Floats returns the non-premultiplied channels scaled to [0, 1].
func (c YAMLColor) Floats() []float32 {
	if c.Color == nil {
		return []float32{1, 1, 1, 1}
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return []float32{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

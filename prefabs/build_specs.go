package prefabs

import "gopkg.in/yaml.v3"

// DecodeComponentSpec re-decodes a loosely typed component block into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	Position []float32 `yaml:"position"`
	// Rotation is in degrees about each axis.
	Rotation []float32 `yaml:"rotation"`
	Scale    []float32 `yaml:"scale"`
}

type SpriteComponentSpec struct {
	Size  []float32  `yaml:"size"`
	Tint  *YAMLColor `yaml:"tint"`
	Frame int        `yaml:"frame"`
	Image string     `yaml:"image"`
}

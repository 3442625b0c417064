package component

import (
	"fmt"
	"math"
)

// Sprite is drawn as a tinted quad of Size pixels. Frame is an integer
// cell index, so it is only reachable through SetProperty.
type Sprite struct {
	Tint  [4]float32
	Size  [3]float32
	Frame int
	Image Hash
}

var SpriteComponent = NewComponent[Sprite]("sprite")

var (
	TintProperty  = NewPropertyName("tint")
	SizeProperty  = NewPropertyName("size")
	FrameProperty = NewPropertyName("frame")
	ImageProperty = NewPropertyName("image")
)

func NewSprite(w, h float32) *Sprite {
	return &Sprite{
		Tint: [4]float32{1, 1, 1, 1},
		Size: [3]float32{w, h, 0},
	}
}

func (s *Sprite) GetProperty(id Hash) (PropertyDesc, error) {
	if desc, ok := getVector(id, TintProperty, s.Tint[:], PropertyTypeVector4); ok {
		return desc, nil
	}
	if desc, ok := getVector(id, SizeProperty, s.Size[:], PropertyTypeVector3); ok {
		return desc, nil
	}
	switch id {
	case FrameProperty.ID:
		return PropertyDesc{Variant: Number(float64(s.Frame))}, nil
	case ImageProperty.ID:
		return PropertyDesc{Variant: HashValue(s.Image)}, nil
	}
	return PropertyDesc{}, fmt.Errorf("%w: sprite %s", ErrPropertyNotFound, id)
}

func (s *Sprite) SetProperty(id Hash, v Variant) error {
	if ok, err := setVector(id, TintProperty, s.Tint[:], PropertyTypeVector4, v); ok {
		return err
	}
	if ok, err := setVector(id, SizeProperty, s.Size[:], PropertyTypeVector3, v); ok {
		return err
	}
	switch id {
	case FrameProperty.ID:
		if v.Type != PropertyTypeNumber {
			return fmt.Errorf("%w: frame wants number, got %s", ErrPropertyTypeMismatch, v.Type)
		}
		s.Frame = int(math.Floor(v.Number))
		return nil
	case ImageProperty.ID:
		if v.Type != PropertyTypeHash {
			return fmt.Errorf("%w: image wants hash, got %s", ErrPropertyTypeMismatch, v.Type)
		}
		s.Image = v.Hash
		return nil
	}
	return fmt.Errorf("%w: sprite %s", ErrPropertyNotFound, id)
}

package component

import (
	"errors"
	"math"
	"testing"
)

func TestTransformProperties(t *testing.T) {
	tr := NewTransform()
	tr.Position = [3]float32{1, 2, 3}

	t.Run("vector_aliases_storage", func(t *testing.T) {
		desc, err := tr.GetProperty(PositionProperty.ID)
		if err != nil {
			t.Fatalf("get position: %v", err)
		}
		if desc.Variant.Type != PropertyTypeVector3 {
			t.Fatalf("expected vector3, got %s", desc.Variant.Type)
		}
		if len(desc.ValuePtr) != 3 {
			t.Fatalf("expected 3 writable elements, got %d", len(desc.ValuePtr))
		}
		desc.ValuePtr[1] = 42
		if tr.Position[1] != 42 {
			t.Fatalf("write through ValuePtr did not reach component")
		}
		if desc.ElementIDs[0] != HashString("position.x") {
			t.Fatalf("unexpected element id %s", desc.ElementIDs[0])
		}
	})

	t.Run("element", func(t *testing.T) {
		desc, err := tr.GetProperty(PositionProperty.Elements[2])
		if err != nil {
			t.Fatalf("get position.z: %v", err)
		}
		if desc.Variant.Type != PropertyTypeNumber || desc.Variant.Number != 3 {
			t.Fatalf("expected number 3, got %+v", desc.Variant)
		}
		if err := tr.SetProperty(PositionProperty.Elements[2], Number(7)); err != nil {
			t.Fatalf("set position.z: %v", err)
		}
		if tr.Position[2] != 7 {
			t.Fatalf("expected 7, got %v", tr.Position[2])
		}
	})

	t.Run("type_mismatch", func(t *testing.T) {
		err := tr.SetProperty(ScaleProperty.ID, Number(2))
		if !errors.Is(err, ErrPropertyTypeMismatch) {
			t.Fatalf("expected type mismatch, got %v", err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := tr.GetProperty(HashString("nope"))
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestTransformEuler(t *testing.T) {
	tr := NewTransform()

	desc, err := tr.GetProperty(EulerProperty.ID)
	if err != nil {
		t.Fatalf("get euler: %v", err)
	}
	if desc.ValuePtr != nil {
		t.Fatalf("euler is derived and must not expose storage")
	}

	if err := tr.SetProperty(EulerProperty.Elements[2], Number(90)); err != nil {
		t.Fatalf("set euler.z: %v", err)
	}
	want := float32(math.Sqrt2 / 2)
	if !near(tr.Rotation[2], want) || !near(tr.Rotation[3], want) {
		t.Fatalf("unexpected rotation %v", tr.Rotation)
	}

	desc, err = tr.GetProperty(EulerProperty.Elements[2])
	if err != nil {
		t.Fatalf("get euler.z: %v", err)
	}
	if !near(float32(desc.Variant.Number), 90) {
		t.Fatalf("expected 90 degrees, got %v", desc.Variant.Number)
	}
}

func TestSpriteProperties(t *testing.T) {
	s := NewSprite(16, 16)

	if err := s.SetProperty(FrameProperty.ID, Number(3.7)); err != nil {
		t.Fatalf("set frame: %v", err)
	}
	if s.Frame != 3 {
		t.Fatalf("expected frame 3, got %d", s.Frame)
	}

	desc, err := s.GetProperty(FrameProperty.ID)
	if err != nil {
		t.Fatalf("get frame: %v", err)
	}
	if desc.ValuePtr != nil {
		t.Fatalf("frame has no float storage")
	}

	desc, err = s.GetProperty(TintProperty.ID)
	if err != nil {
		t.Fatalf("get tint: %v", err)
	}
	if desc.Variant.Type != PropertyTypeVector4 || desc.Variant.V4 != [4]float32{1, 1, 1, 1} {
		t.Fatalf("unexpected tint %+v", desc.Variant)
	}

	desc, err = s.GetProperty(ImageProperty.ID)
	if err != nil {
		t.Fatalf("get image: %v", err)
	}
	if desc.Variant.Type != PropertyTypeHash {
		t.Fatalf("expected hash, got %s", desc.Variant.Type)
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

package component

import (
	"fmt"
	"math"
)

// Transform stores rotation as a unit quaternion (x, y, z, w). The euler
// property is derived from it in degrees and has no backing storage.
type Transform struct {
	Position [3]float32
	Rotation [4]float32
	Scale    [3]float32
}

var TransformComponent = NewComponent[Transform]("transform")

var (
	PositionProperty = NewPropertyName("position")
	RotationProperty = NewPropertyName("rotation")
	ScaleProperty    = NewPropertyName("scale")
	EulerProperty    = NewPropertyName("euler")
)

func NewTransform() *Transform {
	return &Transform{
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	}
}

func (t *Transform) GetProperty(id Hash) (PropertyDesc, error) {
	if desc, ok := getVector(id, PositionProperty, t.Position[:], PropertyTypeVector3); ok {
		return desc, nil
	}
	if desc, ok := getVector(id, RotationProperty, t.Rotation[:], PropertyTypeQuat); ok {
		return desc, nil
	}
	if desc, ok := getVector(id, ScaleProperty, t.Scale[:], PropertyTypeVector3); ok {
		return desc, nil
	}
	euler := t.Euler()
	if desc, ok := getVector(id, EulerProperty, euler[:], PropertyTypeVector3); ok {
		desc.ValuePtr = nil
		return desc, nil
	}
	return PropertyDesc{}, fmt.Errorf("%w: transform %s", ErrPropertyNotFound, id)
}

func (t *Transform) SetProperty(id Hash, v Variant) error {
	if ok, err := setVector(id, PositionProperty, t.Position[:], PropertyTypeVector3, v); ok {
		return err
	}
	if ok, err := setVector(id, RotationProperty, t.Rotation[:], PropertyTypeQuat, v); ok {
		return err
	}
	if ok, err := setVector(id, ScaleProperty, t.Scale[:], PropertyTypeVector3, v); ok {
		return err
	}
	euler := t.Euler()
	if ok, err := setVector(id, EulerProperty, euler[:], PropertyTypeVector3, v); ok {
		if err != nil {
			return err
		}
		t.SetEuler(euler)
		return nil
	}
	return fmt.Errorf("%w: transform %s", ErrPropertyNotFound, id)
}

// Euler returns the rotation as x, y, z angles in degrees (roll, pitch, yaw).
func (t *Transform) Euler() [3]float32 {
	x, y, z, w := float64(t.Rotation[0]), float64(t.Rotation[1]), float64(t.Rotation[2]), float64(t.Rotation[3])

	roll := math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinp := 2 * (w*y - z*x)
	var pitch float64
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}
	yaw := math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))

	return [3]float32{float32(roll * rad2deg), float32(pitch * rad2deg), float32(yaw * rad2deg)}
}

func (t *Transform) SetEuler(deg [3]float32) {
	hx := float64(deg[0]) * deg2rad / 2
	hy := float64(deg[1]) * deg2rad / 2
	hz := float64(deg[2]) * deg2rad / 2
	cr, sr := math.Cos(hx), math.Sin(hx)
	cp, sp := math.Cos(hy), math.Sin(hy)
	cy, sy := math.Cos(hz), math.Sin(hz)

	t.Rotation = [4]float32{
		float32(sr*cp*cy - cr*sp*sy),
		float32(cr*sp*cy + sr*cp*sy),
		float32(cr*cp*sy - sr*sp*cy),
		float32(cr*cp*cy + sr*sp*sy),
	}
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

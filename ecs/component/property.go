package component

import "fmt"

type PropertyType uint8

const (
	PropertyTypeNil PropertyType = iota
	PropertyTypeNumber
	PropertyTypeHash
	PropertyTypeVector3
	PropertyTypeVector4
	PropertyTypeQuat
	PropertyTypeBool
)

func (t PropertyType) String() string {
	switch t {
	case PropertyTypeNil:
		return "nil"
	case PropertyTypeNumber:
		return "number"
	case PropertyTypeHash:
		return "hash"
	case PropertyTypeVector3:
		return "vector3"
	case PropertyTypeVector4:
		return "vector4"
	case PropertyTypeQuat:
		return "quat"
	case PropertyTypeBool:
		return "bool"
	default:
		return fmt.Sprintf("PropertyType(%d)", uint8(t))
	}
}

// Variant is a tagged property value. Vector and quaternion values live in
// V4; a Vector3 leaves V4[3] at zero.
type Variant struct {
	Type   PropertyType
	Number float64
	Hash   Hash
	V4     [4]float32
	Bool   bool
}

func Number(v float64) Variant {
	return Variant{Type: PropertyTypeNumber, Number: v}
}

func HashValue(h Hash) Variant {
	return Variant{Type: PropertyTypeHash, Hash: h}
}

func Vector3(x, y, z float32) Variant {
	return Variant{Type: PropertyTypeVector3, V4: [4]float32{x, y, z, 0}}
}

func Vector4(x, y, z, w float32) Variant {
	return Variant{Type: PropertyTypeVector4, V4: [4]float32{x, y, z, w}}
}

func Quat(x, y, z, w float32) Variant {
	return Variant{Type: PropertyTypeQuat, V4: [4]float32{x, y, z, w}}
}

func Bool(b bool) Variant {
	return Variant{Type: PropertyTypeBool, Bool: b}
}

// PropertyDesc describes the current value of a property. ValuePtr aliases
// the component's own storage when the property can be written directly;
// it is nil for derived properties that must go through SetProperty.
type PropertyDesc struct {
	Variant    Variant
	ValuePtr   []float32
	ElementIDs [4]Hash
}

// Properties is implemented by components that expose animatable values.
type Properties interface {
	GetProperty(id Hash) (PropertyDesc, error)
	SetProperty(id Hash, v Variant) error
}

func getVector(id Hash, name PropertyName, vals []float32, typ PropertyType) (PropertyDesc, bool) {
	if id == name.ID {
		desc := PropertyDesc{
			Variant:    Variant{Type: typ},
			ValuePtr:   vals,
			ElementIDs: name.Elements,
		}
		copy(desc.Variant.V4[:], vals)
		return desc, true
	}
	for i := range vals {
		if id == name.Elements[i] {
			return PropertyDesc{
				Variant:  Number(float64(vals[i])),
				ValuePtr: vals[i : i+1],
			}, true
		}
	}
	return PropertyDesc{}, false
}

func setVector(id Hash, name PropertyName, vals []float32, typ PropertyType, v Variant) (bool, error) {
	if id == name.ID {
		if v.Type != typ {
			return true, fmt.Errorf("%w: %s wants %s, got %s", ErrPropertyTypeMismatch, name.Name, typ, v.Type)
		}
		copy(vals, v.V4[:len(vals)])
		return true, nil
	}
	for i := range vals {
		if id == name.Elements[i] {
			if v.Type != PropertyTypeNumber {
				return true, fmt.Errorf("%w: %s%s wants number, got %s", ErrPropertyTypeMismatch, name.Name, elementSuffixes[i], v.Type)
			}
			vals[i] = float32(v.Number)
			return true, nil
		}
	}
	return false, nil
}

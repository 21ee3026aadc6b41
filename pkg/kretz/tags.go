package kretz

import "fmt"

// CoordinateSystem is the single-byte code from the file header describing
// the spatial geometry convention of the volume. GE/Kretztechnik probes
// typically produce toroidal geometry, but the header allows several.
type CoordinateSystem byte

// Known coordinate system codes.
const (
	CoordCartesian   CoordinateSystem = 0
	CoordToroidal    CoordinateSystem = 1
	CoordSpherical   CoordinateSystem = 2
	CoordCylindrical CoordinateSystem = 3
)

// String returns the label for the coordinate system. Codes outside the
// known range map to "unknown_<code>" instead of failing, so every possible
// byte value has a label.
func (c CoordinateSystem) String() string {
	switch c {
	case CoordCartesian:
		return "cartesian"
	case CoordToroidal:
		return "toroidal"
	case CoordSpherical:
		return "spherical"
	case CoordCylindrical:
		return "cylindrical"
	default:
		return fmt.Sprintf("unknown_%d", byte(c))
	}
}

// DataType is the single-byte code from the file header describing the
// numeric representation of each voxel sample in the payload.
type DataType byte

// Known data type codes.
const (
	TypeUint8   DataType = 0
	TypeUint16  DataType = 1
	TypeUint32  DataType = 2
	TypeInt8    DataType = 3
	TypeInt16   DataType = 4
	TypeInt32   DataType = 5
	TypeFloat32 DataType = 6
	TypeFloat64 DataType = 7
)

// String returns the label for the data type. Codes outside the known range
// map to "unknown_<code>" instead of failing.
func (d DataType) String() string {
	switch d {
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	default:
		return fmt.Sprintf("unknown_%d", byte(d))
	}
}

// ByteSize returns the width in bytes of a single sample of this type.
// Unknown types are treated as single-byte samples so that payload decoding
// can still make progress on files with unrecognized type codes.
func (d DataType) ByteSize() int {
	switch d {
	case TypeUint16, TypeInt16:
		return 2
	case TypeUint32, TypeInt32, TypeFloat32:
		return 4
	case TypeFloat64:
		return 8
	default:
		return 1
	}
}

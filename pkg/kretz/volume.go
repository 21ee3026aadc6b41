package kretz

// Volume holds the decoded 3D voxel grid of a kretzfile.
//
// Samples are stored as a flat float64 slice in file order, which keeps the
// type uniform across all eight payload data types without losing precision:
// every representable value of uint8 through uint32, int8 through int32,
// float32 and float64 converts to float64 exactly. The original numeric
// representation is preserved in DataType.
type Volume struct {
	// Data is the flat voxel buffer in file order. The element for logical
	// coordinates (ix, iy, iz) lives at index ((ix*Y)+iy)*Z + iz; the last
	// declared axis varies fastest, matching a C-order layout of shape
	// (X, Y, Z).
	Data []float64

	// X, Y, Z are the volume dimensions in voxels, as declared in the header.
	X, Y, Z int

	// DataType is the sample representation the payload was decoded from.
	DataType DataType
}

// newZeroVolume returns a zero-filled volume of the given shape, used when
// the payload is missing or does not match the declared voxel count.
func newZeroVolume(x, y, z int, dtype DataType) *Volume {
	return &Volume{
		Data:     make([]float64, x*y*z),
		X:        x,
		Y:        y,
		Z:        z,
		DataType: dtype,
	}
}

// NumVoxels returns the total number of samples in the volume.
func (v *Volume) NumVoxels() int {
	return v.X * v.Y * v.Z
}

// Shape returns the (x, y, z) dimensions of the volume in voxels.
func (v *Volume) Shape() (int, int, int) {
	return v.X, v.Y, v.Z
}

// At returns the sample at logical coordinates (ix, iy, iz). Coordinates are
// not bounds-checked beyond the underlying slice access.
func (v *Volume) At(ix, iy, iz int) float64 {
	return v.Data[(ix*v.Y+iy)*v.Z+iz]
}

// Clone returns a deep copy of the volume. The returned volume shares no
// storage with the receiver, so mutating one cannot affect the other.
func (v *Volume) Clone() *Volume {
	data := make([]float64, len(v.Data))
	copy(data, v.Data)
	return &Volume{
		Data:     data,
		X:        v.X,
		Y:        v.Y,
		Z:        v.Z,
		DataType: v.DataType,
	}
}

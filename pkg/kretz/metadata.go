package kretz

// Dimensions holds the voxel counts of the volume along each axis.
type Dimensions struct {
	X, Y, Z int
}

// Vec3 is a triple of per-axis values, used for voxel spacing (in mm) and
// the volume origin.
type Vec3 struct {
	X, Y, Z float64
}

// PatientInfo groups the patient and study fields of the header.
type PatientInfo struct {
	PatientName string
	StudyDate   string
	StudyTime   string
}

// SystemInfo groups the ultrasound system fields of the header.
type SystemInfo struct {
	SystemName string
	ProbeName  string
}

// Metadata holds every field decoded from the 256-byte kretzfile header,
// plus the VolumeDataMissing recovery flag. All fields are value types, so
// copying a Metadata by value yields a fully independent snapshot.
type Metadata struct {
	// Version is the 3-byte version string following the magic signature.
	Version string

	// FrameCount is the number of frames stored in the file.
	FrameCount uint32

	// Dimensions are the voxel counts along x, y and z.
	Dimensions Dimensions

	// Spacing is the physical voxel spacing along each axis, in millimeters.
	Spacing Vec3

	// CoordinateSystem describes the spatial geometry of the volume.
	CoordinateSystem CoordinateSystem

	// DataType describes the numeric representation of each voxel sample.
	DataType DataType

	// Compressed reports whether the payload is run-length encoded.
	Compressed bool

	// PatientName, StudyDate and StudyTime identify the examination.
	PatientName string
	StudyDate   string
	StudyTime   string

	// AcquisitionMode names the scan mode (e.g. "3D", "4D").
	AcquisitionMode string

	// SystemName and ProbeName identify the acquiring hardware.
	SystemName string
	ProbeName  string

	// Origin is the position of the volume origin along each axis.
	Origin Vec3

	// VolumeDataMissing is set when the payload could not supply the full
	// declared voxel count and the volume was zero-filled instead. The
	// header metadata remains valid in that case.
	VolumeDataMissing bool
}

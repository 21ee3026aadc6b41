// Package kretz reads the binary kretzfile format used by GE/Kretztechnik 3D
// ultrasound systems to store volumetric scan data.
//
// A kretzfile carries a fixed 256-byte header (signature, version, volume
// dimensions and spacing, coordinate system, sample type, patient and system
// identification) followed by the raw voxel payload, optionally run-length
// encoded. The Loader decodes the whole file eagerly at construction time and
// exposes the result through read-only accessors that hand out independent
// copies of the internal state.
package kretz

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// Loader reads one kretzfile and holds its decoded metadata and volume.
//
// Construction is all-or-nothing: NewLoader either returns a fully populated
// loader or an error and no loader. The object is immutable afterwards, so
// independent loaders may be used concurrently without coordination; the
// loader itself performs no locking and no background work.
type Loader struct {
	filepath string
	metadata Metadata
	volume   *Volume
}

// NewLoader opens, validates and fully decodes the kretzfile at path.
//
// It fails with an error wrapping os.ErrNotExist if the path does not exist,
// and with a *FormatError if the magic signature does not match or the header
// region is shorter than its fixed 256 bytes. Content anomalies do not fail
// the load: unrecognized tag bytes surface as "unknown_<n>" labels and a
// truncated payload yields a zero-filled volume with the VolumeDataMissing
// metadata flag set.
func NewLoader(path string) (*Loader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %s: %w", path, err)
	}

	l := &Loader{filepath: path}
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

// load performs the single synchronous pass over the file: signature check,
// header decode, then payload decode. The file handle is released on every
// exit path.
func (l *Loader) load() error {
	f, err := os.Open(l.filepath)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("error reading header: %w", err)
	}

	// The signature is checked against whatever was read, so a short file
	// with a wrong signature still reports the signature mismatch.
	magicLen := len(MagicString)
	if n < magicLen || string(header[:magicLen]) != MagicString {
		got := header[:min(n, magicLen)]
		return &FormatError{
			Reason:   "invalid magic string",
			Expected: MagicString,
			Actual:   decodeText(got),
		}
	}

	if n < HeaderSize {
		return &FormatError{
			Reason: fmt.Sprintf("truncated header: got %d bytes, need %d", n, HeaderSize),
		}
	}

	l.metadata = parseHeader(header)
	return l.loadVolume(f)
}

// voxelCount returns the total voxel count declared by the dimensions,
// computed without wrapping. ok is false when the product overflows the
// range a payload buffer byte size can be computed in.
func voxelCount(d Dimensions) (int, bool) {
	xy := uint64(d.X) * uint64(d.Y)
	if d.X != 0 && xy/uint64(d.X) != uint64(d.Y) {
		return 0, false
	}
	total := xy * uint64(d.Z)
	if xy != 0 && total/xy != uint64(d.Z) {
		return 0, false
	}
	// Byte sizes up to 8 bytes per voxel must still fit in int64.
	if total > math.MaxInt64/8 {
		return 0, false
	}
	return int(total), true
}

// loadVolume decodes the voxel payload using the dimensions, data type and
// compression flag already decoded from the header.
func (l *Loader) loadVolume(f *os.File) error {
	dims := l.metadata.Dimensions
	dtype := l.metadata.DataType

	numVoxels, ok := voxelCount(dims)
	if !ok {
		return &FormatError{
			Reason: fmt.Sprintf("volume dimensions overflow: %d x %d x %d",
				dims.X, dims.Y, dims.Z),
		}
	}

	// The payload always starts at the fixed header size, regardless of
	// where the last header field ends.
	if _, err := f.Seek(HeaderSize, io.SeekStart); err != nil {
		return fmt.Errorf("error seeking to volume data: %w", err)
	}

	var flat []float64
	if l.metadata.Compressed {
		compressed, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("error reading compressed volume data: %w", err)
		}
		flat = decodeRLE(compressed, dtype, numVoxels)
	} else {
		// Read at most the expected byte count, growing with the actual
		// file contents so a tiny file declaring huge dimensions cannot
		// force a matching allocation.
		expected := int64(numVoxels) * int64(dtype.ByteSize())
		raw, err := io.ReadAll(io.LimitReader(f, expected))
		if err != nil {
			return fmt.Errorf("error reading volume data: %w", err)
		}
		flat = decodeSamples(raw, dtype)
	}

	// Any mismatch between the decoded sample count and the declared voxel
	// count is recovered, not raised: callers get the full header metadata
	// plus a zero-filled volume and an explicit flag.
	if len(flat) == numVoxels {
		l.volume = &Volume{Data: flat, X: dims.X, Y: dims.Y, Z: dims.Z, DataType: dtype}
	} else {
		l.metadata.VolumeDataMissing = true
		l.volume = newZeroVolume(dims.X, dims.Y, dims.Z, dtype)
	}
	return nil
}

// Filepath returns the path the loader was constructed from.
func (l *Loader) Filepath() string {
	return l.filepath
}

// GetMetadata returns a copy of all decoded metadata. The returned value is
// an independent snapshot; mutating it does not affect the loader.
func (l *Loader) GetMetadata() Metadata {
	return l.metadata
}

// GetVolume returns a deep copy of the 3D voxel volume.
//
// It returns ErrVolumeNotLoaded if no volume is present, which cannot happen
// for a loader obtained from NewLoader.
func (l *Loader) GetVolume() (*Volume, error) {
	if l.volume == nil {
		return nil, ErrVolumeNotLoaded
	}
	return l.volume.Clone(), nil
}

// GetDimensions returns the (x, y, z) dimensions of the volume in voxels.
func (l *Loader) GetDimensions() (int, int, int) {
	d := l.metadata.Dimensions
	return d.X, d.Y, d.Z
}

// GetSpacing returns the (x, y, z) voxel spacing in millimeters.
func (l *Loader) GetSpacing() (float64, float64, float64) {
	s := l.metadata.Spacing
	return s.X, s.Y, s.Z
}

// GetCoordinateSystem returns the label of the coordinate system used by the
// file (cartesian, toroidal, spherical, cylindrical, or "unknown_<n>").
func (l *Loader) GetCoordinateSystem() string {
	return l.metadata.CoordinateSystem.String()
}

// GetPatientInfo returns the patient and study identification fields.
func (l *Loader) GetPatientInfo() PatientInfo {
	return PatientInfo{
		PatientName: l.metadata.PatientName,
		StudyDate:   l.metadata.StudyDate,
		StudyTime:   l.metadata.StudyTime,
	}
}

// GetSystemInfo returns the ultrasound system identification fields.
func (l *Loader) GetSystemInfo() SystemInfo {
	return SystemInfo{
		SystemName: l.metadata.SystemName,
		ProbeName:  l.metadata.ProbeName,
	}
}

// String returns a short human-readable summary of the loaded file, intended
// for logging and debugging rather than as a stable serialization.
func (l *Loader) String() string {
	d := l.metadata.Dimensions
	return fmt.Sprintf("KretzFile(file=%q, dimensions=(%d, %d, %d), coordinateSystem=%q)",
		filepath.Base(l.filepath), d.X, d.Y, d.Z, l.metadata.CoordinateSystem)
}

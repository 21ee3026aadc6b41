package kretz

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"
)

// Layout constants of the kretzfile format.
const (
	// MagicString is the 9-byte ASCII signature at the start of every file.
	MagicString = "KRETZFILE"

	// HeaderSize is the fixed size of the header region. The voxel payload
	// always starts at this offset, regardless of how much of the header is
	// actually used by fields.
	HeaderSize = 256
)

// headerField describes one fixed-offset field of the header region. The
// header is decoded by walking this table and slicing the 256-byte buffer at
// each absolute offset, so gaps between fields are skipped explicitly and the
// per-field logic stays uniform.
type headerField struct {
	name   string
	offset int
	size   int
	decode func(b []byte, m *Metadata)
}

var headerFields = []headerField{
	{"version", 9, 3, func(b []byte, m *Metadata) {
		m.Version = decodeText(b)
	}},
	{"frame_count", 16, 4, func(b []byte, m *Metadata) {
		m.FrameCount = binary.LittleEndian.Uint32(b)
	}},
	{"dimensions", 20, 12, func(b []byte, m *Metadata) {
		m.Dimensions = Dimensions{
			X: int(binary.LittleEndian.Uint32(b[0:4])),
			Y: int(binary.LittleEndian.Uint32(b[4:8])),
			Z: int(binary.LittleEndian.Uint32(b[8:12])),
		}
	}},
	{"spacing", 32, 12, func(b []byte, m *Metadata) {
		m.Spacing = decodeVec3(b)
	}},
	{"coordinate_system", 44, 1, func(b []byte, m *Metadata) {
		m.CoordinateSystem = CoordinateSystem(b[0])
	}},
	{"data_type", 45, 1, func(b []byte, m *Metadata) {
		m.DataType = DataType(b[0])
	}},
	{"compressed", 46, 1, func(b []byte, m *Metadata) {
		m.Compressed = b[0] != 0
	}},
	{"patient_name", 48, 64, func(b []byte, m *Metadata) {
		m.PatientName = decodeText(b)
	}},
	{"study_date", 112, 16, func(b []byte, m *Metadata) {
		m.StudyDate = decodeText(b)
	}},
	{"study_time", 128, 16, func(b []byte, m *Metadata) {
		m.StudyTime = decodeText(b)
	}},
	{"acquisition_mode", 144, 32, func(b []byte, m *Metadata) {
		m.AcquisitionMode = decodeText(b)
	}},
	{"system_name", 176, 32, func(b []byte, m *Metadata) {
		m.SystemName = decodeText(b)
	}},
	{"probe_name", 208, 32, func(b []byte, m *Metadata) {
		m.ProbeName = decodeText(b)
	}},
	{"origin", 240, 12, func(b []byte, m *Metadata) {
		m.Origin = decodeVec3(b)
	}},
}

// parseHeader decodes every metadata field from the header region. buf must
// be exactly HeaderSize bytes; the magic signature is expected to have been
// validated already. Byte 12 (the version separator) and bytes 13-15 are
// reserved and never read.
func parseHeader(buf []byte) Metadata {
	var m Metadata
	for _, f := range headerFields {
		f.decode(buf[f.offset:f.offset+f.size], &m)
	}
	return m
}

// decodeText decodes a fixed-capacity text field: trailing NUL padding is
// stripped and each invalid byte is replaced with U+FFFD rather than failing
// the parse. Interior whitespace is preserved.
func decodeText(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	if utf8.Valid(b) {
		return string(b)
	}

	// One replacement character per undecodable byte; DecodeRune advances
	// a single byte over each invalid sequence byte.
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// decodeVec3 decodes three consecutive little-endian float32 values.
func decodeVec3(b []byte) Vec3 {
	return Vec3{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:12]))),
	}
}

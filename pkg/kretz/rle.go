package kretz

import (
	"encoding/binary"
	"math"
)

// decodeRLE expands a run-length encoded payload into a flat sample buffer.
//
// The stream is a sequence of (count, value) pairs: one unsigned count byte
// followed by a single sample of the element width given by dtype. Decoding
// stops when the input is exhausted, when a count byte of zero is read (an
// explicit end marker, not an error), or once the output holds at least
// numVoxels samples. A trailing pair whose value field is cut short is
// discarded and also stops decoding. An empty input yields an empty buffer.
func decodeRLE(data []byte, dtype DataType, numVoxels int) []float64 {
	width := dtype.ByteSize()

	// Cap the preallocation by what the input can actually expand to (at
	// most 255 samples per whole pair), so a short stream declaring huge
	// dimensions does not reserve the declared count up front.
	capHint := numVoxels
	if possible := len(data) / (width + 1) * 255; possible < capHint {
		capHint = possible
	}
	out := make([]float64, 0, capHint)

	i := 0
	for i < len(data) && len(out) < numVoxels {
		count := int(data[i])
		i++

		if count == 0 {
			break
		}

		if i+width > len(data) {
			break
		}
		value := decodeSample(data[i:i+width], dtype)
		i += width

		for j := 0; j < count; j++ {
			out = append(out, value)
		}
	}

	return out
}

// decodeSample decodes one little-endian sample of the given type. b must be
// at least dtype.ByteSize() bytes. Unknown types are read as uint8.
func decodeSample(b []byte, dtype DataType) float64 {
	switch dtype {
	case TypeUint16:
		return float64(binary.LittleEndian.Uint16(b))
	case TypeUint32:
		return float64(binary.LittleEndian.Uint32(b))
	case TypeInt8:
		return float64(int8(b[0]))
	case TypeInt16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case TypeInt32:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case TypeFloat32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case TypeFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		return float64(b[0])
	}
}

// decodeSamples decodes a raw little-endian payload into a flat sample
// buffer. Bytes beyond the last whole sample are ignored.
func decodeSamples(raw []byte, dtype DataType) []float64 {
	width := dtype.ByteSize()
	n := len(raw) / width
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = decodeSample(raw[i*width:(i+1)*width], dtype)
	}
	return out
}

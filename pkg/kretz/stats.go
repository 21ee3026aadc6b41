package kretz

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// VolumeStats summarizes the intensity distribution of a volume. It is a
// diagnostic surface for tooling; computing it never mutates the volume.
type VolumeStats struct {
	// Min and Max are the extreme sample values.
	Min float64
	Max float64

	// Mean and StdDev are the sample mean and standard deviation.
	Mean   float64
	StdDev float64

	// ZeroFraction is the fraction of samples equal to zero. A value of 1.0
	// on a volume whose metadata has VolumeDataMissing set indicates the
	// zero-filled recovery volume rather than real data.
	ZeroFraction float64
}

// Stats computes intensity statistics over all samples of the volume.
// An empty volume yields the zero VolumeStats.
func (v *Volume) Stats() VolumeStats {
	if len(v.Data) == 0 {
		return VolumeStats{}
	}

	zeros := 0
	for _, s := range v.Data {
		if s == 0 {
			zeros++
		}
	}

	s := VolumeStats{
		Min:          floats.Min(v.Data),
		Max:          floats.Max(v.Data),
		Mean:         stat.Mean(v.Data, nil),
		ZeroFraction: float64(zeros) / float64(len(v.Data)),
	}
	if len(v.Data) > 1 {
		s.StdDev = stat.StdDev(v.Data, nil)
	}
	return s
}

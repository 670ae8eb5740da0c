package core

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Polarizations maps polarization modes to frequency-domain strain
// amplitudes. All slices must share the frequency grid of the call
// they are used in; cmplxs panics on mismatched lengths.
type Polarizations map[Mode][]complex128

// ProjectionParams carries the extrinsic source parameters needed to
// project a waveform onto a detector.
type ProjectionParams struct {
	// RA and Dec locate the source on the sky, in radians.
	RA  float64
	Dec float64
	// CoalescenceTime is the sidereal reference of the projection
	// (radians, reduced modulo 2*pi). It doubles as the waveform
	// coalescence time in the driver convention.
	CoalescenceTime float64
	// Psi is the polarization angle in radians.
	Psi float64
	// GeocentTime and StartTime place the signal in the strain
	// segment: the response is shifted by (GeocentTime - StartTime)
	// plus the vertex-to-geocenter delay, in seconds.
	GeocentTime float64
	StartTime   float64
}

// DetectorResponse projects a frequency-domain waveform onto a detector.
// Each mode present in wf is weighted by the detector's antenna response
// and accumulated, then the sum is shifted in time to the detector frame:
//
//	h(f) = sum_m F_m * h_m(f) * exp(-2*pi*i*dt*f)
//
// where dt = (GeocentTime - StartTime) + delay(vertex -> geocenter).
// The result has one sample per entry of freqs.
func DetectorResponse(freqs []float64, wf Polarizations, p ProjectionParams, det Tensor, vertex Vec3) ([]complex128, error) {
	signal := make([]complex128, len(freqs))
	matched := 0
	for _, mode := range Modes() {
		h, ok := wf[mode]
		if !ok {
			continue
		}
		f, err := AntennaResponse(det, p.RA, p.Dec, p.CoalescenceTime, p.Psi, mode)
		if err != nil {
			return nil, err
		}
		cmplxs.AddScaled(signal, complex(f, 0), h)
		matched++
	}
	if matched != len(wf) {
		for mode := range wf {
			if _, ok := modeNames[mode]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
			}
		}
	}

	timeShift := TimeDelayGeocentric(vertex, Vec3{}, p.RA, p.Dec, p.CoalescenceTime)
	dt := (p.GeocentTime - p.StartTime) + timeShift

	for i, f := range freqs {
		signal[i] *= cmplx.Exp(complex(0, -2*math.Pi*dt*f))
	}
	return signal, nil
}

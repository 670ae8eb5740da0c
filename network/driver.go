package network

import (
	"fmt"

	"github.com/signalsfoundry/strain-projector/core"
	"github.com/signalsfoundry/strain-projector/model"
)

// Indices into WaveformParams.
const (
	ParamMc = iota
	ParamEta
	ParamChi1
	ParamChi2
	ParamDistance
	ParamTc
	ParamPhiC
	ParamInclination
	ParamPsi
)

// waveformKeys names the parameter-dictionary keys feeding
// WaveformParams, in vector order.
var waveformKeys = [9]string{"Mc", "eta", "chi1", "chi2", "D", "t_c", "phic", "inclination", "psi"}

// WaveformParams is the ordered parameter vector of the external
// waveform generator: chirp mass, symmetric mass ratio, two aligned
// spins, luminosity distance, coalescence time and phase, inclination
// and polarization angle.
type WaveformParams [9]float64

// WaveformGenerator produces frequency-domain plus and cross
// polarization amplitudes on the given frequency grid. Both returned
// slices must have one sample per frequency bin.
type WaveformGenerator func(freqs []float64, p WaveformParams) (plus, cross []complex128)

// Respond invokes the waveform generator exactly once and projects the
// resulting polarizations onto every detector in dets, keyed by name.
// The source parameters come from params: the nine waveform keys plus
// "ra" and "dec"; any missing key fails with model.ErrMissingParam.
// The strain segment convention is fixed: the waveform starts at
// geocentric time zero.
func Respond(freqs []float64, params model.Params, gen WaveformGenerator, dets map[string]core.DetectorPreset) (map[string][]complex128, error) {
	var wp WaveformParams
	for i, key := range waveformKeys {
		v, err := params.Require(key)
		if err != nil {
			return nil, err
		}
		wp[i] = v
	}
	ra, err := params.Require("ra")
	if err != nil {
		return nil, err
	}
	dec, err := params.Require("dec")
	if err != nil {
		return nil, err
	}

	plus, cross := gen(freqs, wp)
	wf := core.Polarizations{
		core.ModePlus:  plus,
		core.ModeCross: cross,
	}
	proj := core.ProjectionParams{
		RA:              ra,
		Dec:             dec,
		CoalescenceTime: wp[ParamTc],
		Psi:             wp[ParamPsi],
		GeocentTime:     0,
		StartTime:       0,
	}

	out := make(map[string][]complex128, len(dets))
	for name, det := range dets {
		resp, err := core.DetectorResponse(freqs, wf, proj, det.Tensor, det.Vertex)
		if err != nil {
			return nil, fmt.Errorf("detector %q: %w", name, err)
		}
		out[name] = resp
	}
	return out, nil
}

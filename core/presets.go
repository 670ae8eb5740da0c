package core

import (
	"math"

	"github.com/signalsfoundry/strain-projector/model"
)

// DetectorPreset pairs the precomputed response tensor of an instrument
// with its vertex position in geocentric coordinates.
type DetectorPreset struct {
	Tensor Tensor
	Vertex Vec3
}

// PresetFrom computes an instrument's preset from its surveyed geometry.
func PresetFrom(spec model.DetectorSpec) DetectorPreset {
	lat := spec.LatitudeDeg * math.Pi / 180
	lon := spec.LongitudeDeg * math.Pi / 180

	x := ArmVector(lat, lon, spec.XArmTiltRad, spec.XArmAzimuthDeg*math.Pi/180)
	y := ArmVector(lat, lon, spec.YArmTiltRad, spec.YArmAzimuthDeg*math.Pi/180)
	return DetectorPreset{
		Tensor: DetectorTensor(x, y),
		Vertex: VertexPosition(lat, lon, spec.ElevationM),
	}
}

// StandardDetectors returns the surveyed geometry of the standard
// ground-based instruments. Positions follow the published site
// surveys (LIGO-T980044-10 for the LIGO sites, the respective
// collaboration references for Virgo, KAGRA and GEO600).
func StandardDetectors() []model.DetectorSpec {
	return []model.DetectorSpec{
		{
			// LIGO Hanford
			Name:           "H1",
			LatitudeDeg:    46 + 27.0/60 + 18.528/3600,
			LongitudeDeg:   -(119 + 24.0/60 + 27.5657/3600),
			ElevationM:     142.554,
			XArmAzimuthDeg: 125.9994,
			YArmAzimuthDeg: 215.9994,
			XArmTiltRad:    -6.195e-4,
			YArmTiltRad:    1.25e-5,
		},
		{
			// LIGO Livingston
			Name:           "L1",
			LatitudeDeg:    30 + 33.0/60 + 46.4196/3600,
			LongitudeDeg:   -(90 + 46.0/60 + 27.2654/3600),
			ElevationM:     -6.574,
			XArmAzimuthDeg: 197.7165,
			YArmAzimuthDeg: 287.7165,
			XArmTiltRad:    -3.121e-4,
			YArmTiltRad:    -6.107e-4,
		},
		{
			// Virgo
			Name:           "V1",
			LatitudeDeg:    43 + 37.0/60 + 53.0921/3600,
			LongitudeDeg:   10 + 30.0/60 + 16.1878/3600,
			ElevationM:     51.884,
			XArmAzimuthDeg: 70.5674,
			YArmAzimuthDeg: 160.5674,
		},
		{
			// KAGRA
			Name:           "K1",
			LatitudeDeg:    36 + 24.0/60 + 42.69722/3600,
			LongitudeDeg:   137 + 18.0/60 + 21.44171/3600,
			ElevationM:     414.181,
			XArmAzimuthDeg: 29.60376510842273,
			YArmAzimuthDeg: 119.60357629670688,
			XArmTiltRad:    0.0031414,
			YArmTiltRad:    -0.0036270,
		},
		{
			// GEO600
			Name:           "G1",
			LatitudeDeg:    52 + 14.0/60 + 42.528/3600,
			LongitudeDeg:   9 + 48.0/60 + 25.894/3600,
			ElevationM:     114.425,
			XArmAzimuthDeg: 115.9431,
			YArmAzimuthDeg: 21.6117,
		},
	}
}

// StandardPresets returns ready-made presets for the standard
// instruments, keyed by instrument name.
func StandardPresets() map[string]DetectorPreset {
	out := make(map[string]DetectorPreset, 5)
	for _, spec := range StandardDetectors() {
		out[spec.Name] = PresetFrom(spec)
	}
	return out
}

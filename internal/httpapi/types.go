package httpapi

import "github.com/signalsfoundry/strain-projector/model"

// Wire shapes for the strain API. Complex series travel as [re, im] pairs so
// clients never depend on Go's complex encoding.

type responseRequestJSON struct {
	FrequenciesHz []float64               `json:"frequencies_hz"`
	Parameters    map[string]float64      `json:"parameters"`
	Detectors     []string                `json:"detectors,omitempty"` // empty selects every registered detector
	Waveform      map[string][][2]float64 `json:"waveform"`
}

type responseBodyJSON struct {
	Responses map[string][][2]float64 `json:"responses"`
}

type detectorSpecJSON struct {
	Name           string  `json:"name"`
	LatitudeDeg    float64 `json:"latitude_deg"`
	LongitudeDeg   float64 `json:"longitude_deg"`
	ElevationM     float64 `json:"elevation_m"`
	XArmAzimuthDeg float64 `json:"xarm_azimuth_deg"`
	YArmAzimuthDeg float64 `json:"yarm_azimuth_deg"`
	XArmTiltRad    float64 `json:"xarm_tilt_rad,omitempty"`
	YArmTiltRad    float64 `json:"yarm_tilt_rad,omitempty"`
}

type detectorListJSON struct {
	Detectors []detectorSpecJSON `json:"detectors"`
}

type errorBodyJSON struct {
	Error string `json:"error"`
}

func (d detectorSpecJSON) toSpec() model.DetectorSpec {
	return model.DetectorSpec{
		Name:           d.Name,
		LatitudeDeg:    d.LatitudeDeg,
		LongitudeDeg:   d.LongitudeDeg,
		ElevationM:     d.ElevationM,
		XArmAzimuthDeg: d.XArmAzimuthDeg,
		YArmAzimuthDeg: d.YArmAzimuthDeg,
		XArmTiltRad:    d.XArmTiltRad,
		YArmTiltRad:    d.YArmTiltRad,
	}
}

func specToJSON(spec model.DetectorSpec) detectorSpecJSON {
	return detectorSpecJSON{
		Name:           spec.Name,
		LatitudeDeg:    spec.LatitudeDeg,
		LongitudeDeg:   spec.LongitudeDeg,
		ElevationM:     spec.ElevationM,
		XArmAzimuthDeg: spec.XArmAzimuthDeg,
		YArmAzimuthDeg: spec.YArmAzimuthDeg,
		XArmTiltRad:    spec.XArmTiltRad,
		YArmTiltRad:    spec.YArmTiltRad,
	}
}

func pairsToComplex(pairs [][2]float64) []complex128 {
	out := make([]complex128, len(pairs))
	for i, p := range pairs {
		out[i] = complex(p[0], p[1])
	}
	return out
}

func complexToPairs(vals []complex128) [][2]float64 {
	out := make([][2]float64, len(vals))
	for i, v := range vals {
		out[i] = [2]float64{real(v), imag(v)}
	}
	return out
}

// network/loader.go
package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signalsfoundry/strain-projector/model"
)

// LoadSummary is a small summary of what was loaded from JSON. It's
// mainly useful for logging from main().
type LoadSummary struct {
	Registered []string
	Skipped    []string // names that were already registered
}

// internal JSON shapes - keep them unexported so we're free to evolve them.
type detectorFileJSON struct {
	Detectors []detectorJSON `json:"detectors"`
}

type detectorJSON struct {
	Name           string  `json:"name"`
	LatitudeDeg    float64 `json:"latitude_deg"`
	LongitudeDeg   float64 `json:"longitude_deg"` // east positive
	ElevationM     float64 `json:"elevation_m"`
	XArmAzimuthDeg float64 `json:"xarm_azimuth_deg"` // counterclockwise from East
	YArmAzimuthDeg float64 `json:"yarm_azimuth_deg"`
	XArmTiltRad    float64 `json:"xarm_tilt_rad"`
	YArmTiltRad    float64 `json:"yarm_tilt_rad"`
}

// LoadDetectors reads a JSON detector catalog from r and registers
// every entry into reg. It fails on JSON or structural errors; an
// entry whose name is already registered is skipped and recorded in
// the summary instead, so a catalog can be layered over the built-in
// presets.
func LoadDetectors(reg *Registry, r io.Reader) (*LoadSummary, error) {
	if reg == nil {
		return nil, fmt.Errorf("LoadDetectors: registry is nil")
	}

	var payload detectorFileJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadDetectors: decode failed: %w", err)
	}

	summary := &LoadSummary{
		Registered: make([]string, 0, len(payload.Detectors)),
	}
	for _, js := range payload.Detectors {
		if js.Name == "" {
			return nil, fmt.Errorf("LoadDetectors: detector with empty name")
		}

		spec := model.DetectorSpec{
			Name:           js.Name,
			LatitudeDeg:    js.LatitudeDeg,
			LongitudeDeg:   js.LongitudeDeg,
			ElevationM:     js.ElevationM,
			XArmAzimuthDeg: js.XArmAzimuthDeg,
			YArmAzimuthDeg: js.YArmAzimuthDeg,
			XArmTiltRad:    js.XArmTiltRad,
			YArmTiltRad:    js.YArmTiltRad,
		}

		err := reg.Add(spec)
		switch {
		case errors.Is(err, ErrDetectorExists):
			summary.Skipped = append(summary.Skipped, js.Name)
		case err != nil:
			return nil, fmt.Errorf("LoadDetectors: %w", err)
		default:
			summary.Registered = append(summary.Registered, js.Name)
		}
	}
	return summary, nil
}

package httpapi

import (
	"fmt"
	"strings"

	"github.com/signalsfoundry/strain-projector/core"
)

// validateResponseRequest performs structural validation for a projection
// request before it reaches the driver.
func validateResponseRequest(req *responseRequestJSON) error {
	if req == nil {
		return fmt.Errorf("%w: request body is required", ErrInvalidRequest)
	}
	if len(req.FrequenciesHz) == 0 {
		return fmt.Errorf("%w: frequencies_hz is required", ErrInvalidRequest)
	}
	if len(req.Waveform) == 0 {
		return fmt.Errorf("%w: waveform is required", ErrInvalidRequest)
	}

	for name, series := range req.Waveform {
		mode, err := core.ParseMode(name)
		if err != nil {
			return fmt.Errorf("%w: waveform key %q: %v", ErrInvalidRequest, name, err)
		}
		if mode != core.ModePlus && mode != core.ModeCross {
			return fmt.Errorf("%w: unsupported waveform mode %q (expected plus or cross)", ErrInvalidRequest, name)
		}
		if name != mode.String() {
			return fmt.Errorf("%w: waveform key %q must be lowercase %q", ErrInvalidRequest, name, mode.String())
		}
		if len(series) != len(req.FrequenciesHz) {
			return fmt.Errorf("%w: waveform %q has %d samples, want %d", ErrInvalidRequest, name, len(series), len(req.FrequenciesHz))
		}
	}

	for _, required := range []string{"plus", "cross"} {
		if _, ok := req.Waveform[required]; !ok {
			return fmt.Errorf("%w: waveform mode %q is required", ErrInvalidRequest, required)
		}
	}

	return nil
}

// validateDetectorSpec checks a detector registration payload for required
// fields and geodetic ranges.
func validateDetectorSpec(d *detectorSpecJSON) error {
	if d == nil {
		return fmt.Errorf("%w: detector spec is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if d.LatitudeDeg < -90 || d.LatitudeDeg > 90 {
		return fmt.Errorf("%w: latitude_deg %v out of range [-90, 90]", ErrInvalidRequest, d.LatitudeDeg)
	}
	if d.LongitudeDeg < -180 || d.LongitudeDeg > 180 {
		return fmt.Errorf("%w: longitude_deg %v out of range [-180, 180]", ErrInvalidRequest, d.LongitudeDeg)
	}
	return nil
}

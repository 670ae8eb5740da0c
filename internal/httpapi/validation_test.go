package httpapi

import (
	"errors"
	"testing"
)

func validRequest() responseRequestJSON {
	return responseRequestJSON{
		FrequenciesHz: []float64{50, 100, 150},
		Parameters:    map[string]float64{"ra": 0, "dec": 0},
		Waveform: map[string][][2]float64{
			"plus":  {{1, 0}, {1, 0}, {1, 0}},
			"cross": {{0, 1}, {0, 1}, {0, 1}},
		},
	}
}

func TestValidateResponseRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*responseRequestJSON)
		wantErr bool
	}{
		{name: "valid", mutate: func(*responseRequestJSON) {}},
		{name: "no frequencies", mutate: func(r *responseRequestJSON) { r.FrequenciesHz = nil }, wantErr: true},
		{name: "no waveform", mutate: func(r *responseRequestJSON) { r.Waveform = nil }, wantErr: true},
		{name: "missing plus", mutate: func(r *responseRequestJSON) { delete(r.Waveform, "plus") }, wantErr: true},
		{name: "missing cross", mutate: func(r *responseRequestJSON) { delete(r.Waveform, "cross") }, wantErr: true},
		{name: "unknown mode", mutate: func(r *responseRequestJSON) { r.Waveform["warble"] = r.Waveform["plus"] }, wantErr: true},
		{name: "parseable but unsupported mode", mutate: func(r *responseRequestJSON) { r.Waveform["breathing"] = r.Waveform["plus"] }, wantErr: true},
		{name: "length mismatch", mutate: func(r *responseRequestJSON) { r.Waveform["cross"] = r.Waveform["cross"][:2] }, wantErr: true},
		{name: "mixed case key rejected", mutate: func(r *responseRequestJSON) {
			series := r.Waveform["plus"]
			delete(r.Waveform, "plus")
			r.Waveform["Plus"] = series
		}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := validateResponseRequest(&req)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Fatalf("error = %v, want ErrInvalidRequest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDetectorSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    detectorSpecJSON
		wantErr bool
	}{
		{name: "valid", spec: detectorSpecJSON{Name: "X9", LatitudeDeg: 10, LongitudeDeg: -120, XArmAzimuthDeg: 0, YArmAzimuthDeg: 90}},
		{name: "empty name", spec: detectorSpecJSON{LatitudeDeg: 10}, wantErr: true},
		{name: "blank name", spec: detectorSpecJSON{Name: "  "}, wantErr: true},
		{name: "latitude out of range", spec: detectorSpecJSON{Name: "X9", LatitudeDeg: 91}, wantErr: true},
		{name: "longitude out of range", spec: detectorSpecJSON{Name: "X9", LongitudeDeg: -181}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateDetectorSpec(&tc.spec)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Fatalf("error = %v, want ErrInvalidRequest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

package network

import (
	"strings"
	"testing"
)

const sampleCatalog = `{
  "detectors": [
    {
      "name": "H1",
      "latitude_deg": 46.45514666666667,
      "longitude_deg": -119.40765713888889,
      "elevation_m": 142.554,
      "xarm_azimuth_deg": 125.9994,
      "yarm_azimuth_deg": 215.9994,
      "xarm_tilt_rad": -0.0006195,
      "yarm_tilt_rad": 0.0000125
    },
    {
      "name": "X9",
      "latitude_deg": 10.0,
      "longitude_deg": 20.0,
      "elevation_m": 0,
      "xarm_azimuth_deg": 0,
      "yarm_azimuth_deg": 90
    }
  ]
}`

func TestLoadDetectors_RegistersEntries(t *testing.T) {
	reg := NewRegistry()
	summary, err := LoadDetectors(reg, strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("LoadDetectors error: %v", err)
	}

	if len(summary.Registered) != 2 || len(summary.Skipped) != 0 {
		t.Fatalf("summary = %+v, want 2 registered, 0 skipped", summary)
	}
	entry, err := reg.Get("H1")
	if err != nil {
		t.Fatalf("Get(H1) after load: %v", err)
	}
	if entry.Spec.XArmAzimuthDeg != 125.9994 {
		t.Fatalf("H1 x azimuth = %v, want 125.9994", entry.Spec.XArmAzimuthDeg)
	}
	if _, err := reg.Get("X9"); err != nil {
		t.Fatalf("Get(X9) after load: %v", err)
	}
}

func TestLoadDetectors_SkipsDuplicates(t *testing.T) {
	reg := NewRegistry()
	if _, err := LoadDetectors(reg, strings.NewReader(sampleCatalog)); err != nil {
		t.Fatalf("first load: %v", err)
	}

	summary, err := LoadDetectors(reg, strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(summary.Registered) != 0 || len(summary.Skipped) != 2 {
		t.Fatalf("summary = %+v, want 0 registered, 2 skipped", summary)
	}
}

func TestLoadDetectors_EmptyNameFails(t *testing.T) {
	reg := NewRegistry()
	_, err := LoadDetectors(reg, strings.NewReader(`{"detectors":[{"latitude_deg":1}]}`))
	if err == nil {
		t.Fatalf("expected structural error for empty name")
	}
}

func TestLoadDetectors_BadJSONFails(t *testing.T) {
	reg := NewRegistry()
	if _, err := LoadDetectors(reg, strings.NewReader(`{"detectors": [`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadDetectors_NilRegistry(t *testing.T) {
	if _, err := LoadDetectors(nil, strings.NewReader(sampleCatalog)); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

package gpstime

import (
	"math"
	"testing"
	"time"
)

func TestOffset_AcrossEras(t *testing.T) {
	cases := []struct {
		gps  float64
		want int
	}{
		{gps: 0, want: 0},
		{gps: 46828799, want: 0},
		{gps: 46828800, want: 1},
		{gps: 630763213, want: 13}, // J2000
		{gps: 1126259462.4, want: 17},
		{gps: 1167264017, want: 18},
		{gps: 1.4e9, want: 18},
	}
	for _, tc := range cases {
		if got := Offset(tc.gps); got != tc.want {
			t.Errorf("Offset(%v) = %d, want %d", tc.gps, got, tc.want)
		}
	}
}

func TestToUTC_KnownEpochs(t *testing.T) {
	cases := []struct {
		name string
		gps  float64
		want time.Time
	}{
		{
			name: "J2000",
			gps:  630763213,
			want: time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "GW150914",
			gps:  1126259462.4,
			want: time.Date(2015, time.September, 14, 9, 50, 45, 4e8, time.UTC),
		},
		{
			name: "after 2017 leap",
			gps:  1167264018,
			want: time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap second folds",
			gps:  1167264017,
			want: time.Date(2016, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		got := ToUTC(tc.gps)
		if d := got.Sub(tc.want); d < -time.Microsecond || d > time.Microsecond {
			t.Errorf("%s: ToUTC(%v) = %v, want %v", tc.name, tc.gps, got, tc.want)
		}
	}
}

func TestFromUTC_RoundTrip(t *testing.T) {
	for _, gps := range []float64{630763213, 1126259462.4131, 1167264018, 1.4e9} {
		got := FromUTC(ToUTC(gps))
		if math.Abs(got-gps) > 1e-6 {
			t.Errorf("round trip of %v = %v", gps, got)
		}
	}
}

func TestFromUTC_LeapBoundary(t *testing.T) {
	newYear2017 := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := FromUTC(newYear2017); got != 1167264018 {
		t.Fatalf("FromUTC(2017-01-01) = %v, want 1167264018", got)
	}

	before := time.Date(2016, time.December, 31, 23, 59, 59, 0, time.UTC)
	if got := FromUTC(before); got != 1167264016 {
		t.Fatalf("FromUTC(2016-12-31 23:59:59) = %v, want 1167264016", got)
	}
}

func TestGreenwichMeanSiderealTime_J2000(t *testing.T) {
	// GMST at the J2000 epoch is 280.46061837 degrees.
	got := GreenwichMeanSiderealTime(630763213)
	want := 4.894961212735792
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("GMST(J2000) = %.12f rad, want %.12f", got, want)
	}
}

func TestGreenwichMeanSiderealTime_Range(t *testing.T) {
	for _, gps := range []float64{630763213, 1126259462.4, 1187008882.4, 1.3e9} {
		got := GreenwichMeanSiderealTime(gps)
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("GMST(%v) = %v, outside [0, 2*pi)", gps, got)
		}
	}
}

func TestGreenwichMeanSiderealTime_SiderealDayPeriod(t *testing.T) {
	// One mean sidereal day later GMST must come back around.
	const siderealDay = 86164.0905
	base := GreenwichMeanSiderealTime(1126259462.4)
	next := GreenwichMeanSiderealTime(1126259462.4 + siderealDay)

	diff := math.Abs(base - next)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	if diff > 1e-4 {
		t.Fatalf("GMST drifted %v rad over one sidereal day", diff)
	}
}

package gpstime

import (
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// Epoch is the origin of the GPS time scale, 1980-01-06 00:00:00 UTC.
var Epoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// leapGPS lists the GPS second of every leap second inserted into UTC
// since the GPS epoch, through 2017-01-01. Entry i lands on the
// 23:59:60 UTC second itself; the GPS-UTC offset is i+1 from that
// second onward.
var leapGPS = []float64{
	46828800,   // 1981-07-01
	78364801,   // 1982-07-01
	109900802,  // 1983-07-01
	173059203,  // 1985-07-01
	252028804,  // 1988-01-01
	315187205,  // 1990-01-01
	346723206,  // 1991-01-01
	393984007,  // 1992-07-01
	425520008,  // 1993-07-01
	457056009,  // 1994-07-01
	504489610,  // 1996-01-01
	551750411,  // 1997-07-01
	599184012,  // 1999-01-01
	820108813,  // 2006-01-01
	914803214,  // 2009-01-01
	1025136015, // 2012-07-01
	1119744016, // 2015-07-01
	1167264017, // 2017-01-01
}

// Offset returns the GPS-UTC offset in whole seconds in effect at the
// given GPS time.
func Offset(gps float64) int {
	n := 0
	for _, leap := range leapGPS {
		if gps < leap {
			break
		}
		n++
	}
	return n
}

// ToUTC converts GPS seconds to UTC. The inserted leap second itself
// (23:59:60) folds onto 23:59:59, as it cannot be represented on the
// UTC calendar timeline.
func ToUTC(gps float64) time.Time {
	gps -= float64(Offset(gps))
	sec := math.Floor(gps)
	nsec := math.Round((gps - sec) * 1e9)
	return Epoch.Add(time.Duration(sec)*time.Second + time.Duration(nsec)*time.Nanosecond)
}

// FromUTC converts a UTC instant to GPS seconds.
func FromUTC(t time.Time) float64 {
	elapsed := t.Sub(Epoch).Seconds()
	offset := 0
	for i, leap := range leapGPS {
		// The new offset takes effect on the first UTC second after
		// the inserted one, leap+1 on the GPS scale.
		if elapsed < leap-float64(i) {
			break
		}
		offset++
	}
	return elapsed + float64(offset)
}

// GreenwichMeanSiderealTime returns the Greenwich Mean Sidereal Time
// in radians, in [0, 2*pi), at the given GPS time. UT1 is approximated
// by UTC, which holds to better than a second by construction of UTC.
func GreenwichMeanSiderealTime(gps float64) float64 {
	t := ToUTC(gps)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	jd += float64(t.Nanosecond()) / 1e9 / 86400.0
	return satellite.ThetaG_JD(jd)
}

package core

import (
	"math"

	"github.com/signalsfoundry/strain-projector/physconst"
)

// TimeDelayGeocentric returns the wavefront arrival-time difference
// arrival(d1) - arrival(d2) in seconds for a plane wave from (ra, dec)
// at Greenwich Mean Sidereal Time t (radians). Passing the origin as
// d2 gives the arrival time of d1 relative to the geocenter, the shift
// that places a geocentric signal in d1's frame.
//
// Follows XLALArrivalTimeDiff in LAL's TimeDelay.c.
func TimeDelayGeocentric(d1, d2 Vec3, ra, dec, t float64) float64 {
	phi, theta := sourceAngles(ra, dec, t)
	omega := Vec3{
		X: math.Sin(theta) * math.Cos(phi),
		Y: math.Sin(theta) * math.Sin(phi),
		Z: math.Cos(theta),
	}
	return omega.Dot(d2.Sub(d1)) / physconst.SpeedOfLight
}

package core

import "math"

// Reference ellipsoid axes for geocentric vertex positions (metres).
// See LIGO-T980044-10, section 2.1.
const (
	semiMajorAxisM = 6378137.0
	semiMinorAxisM = 6356752.314
)

// ArmVector returns the unit vector along an interferometer arm in
// geocentric Cartesian coordinates. Latitude, longitude, tilt and
// azimuth are in radians; azimuth is measured counterclockwise from
// local East, tilt upward from the local horizontal.
func ArmVector(latitude, longitude, tilt, azimuth float64) Vec3 {
	east := Vec3{X: -math.Sin(longitude), Y: math.Cos(longitude), Z: 0}
	north := Vec3{
		X: -math.Sin(latitude) * math.Cos(longitude),
		Y: -math.Sin(latitude) * math.Sin(longitude),
		Z: math.Cos(latitude),
	}
	up := Vec3{
		X: math.Cos(latitude) * math.Cos(longitude),
		Y: math.Cos(latitude) * math.Sin(longitude),
		Z: math.Sin(latitude),
	}

	arm := east.Scale(math.Cos(tilt) * math.Cos(azimuth))
	arm = arm.Add(north.Scale(math.Cos(tilt) * math.Sin(azimuth)))
	return arm.Add(up.Scale(math.Sin(tilt)))
}

// DetectorTensor returns the response tensor of an interferometer with
// the given unit arm vectors, 0.5 * (x ⊗ x - y ⊗ y).
func DetectorTensor(x, y Vec3) Tensor {
	return x.Outer(x).Sub(y.Outer(y)).Scale(0.5)
}

// VertexPosition returns the geocentric position of a detector vertex
// in metres. Latitude and longitude are geodetic, in radians; elevation
// is metres above the reference ellipsoid.
//
// Based on arXiv:gr-qc/0008066 eqs. B11-B13, with the local radius
// corrected per LIGO-T980044-10.
func VertexPosition(latitude, longitude, elevation float64) Vec3 {
	sinLat := math.Sin(latitude)
	cosLat := math.Cos(latitude)
	radius := semiMajorAxisM * semiMajorAxisM /
		math.Sqrt(semiMajorAxisM*semiMajorAxisM*cosLat*cosLat+semiMinorAxisM*semiMinorAxisM*sinLat*sinLat)

	axisRatioSq := (semiMinorAxisM / semiMajorAxisM) * (semiMinorAxisM / semiMajorAxisM)
	return Vec3{
		X: (radius + elevation) * cosLat * math.Cos(longitude),
		Y: (radius + elevation) * cosLat * math.Sin(longitude),
		Z: (axisRatioSq*radius + elevation) * sinLat,
	}
}

package model

// DetectorSpec describes an interferometer site the way survey data is
// published. Positions are geodetic; arm azimuths are measured
// counterclockwise from local East.
type DetectorSpec struct {
	Name string // e.g. "H1", "V1"

	LatitudeDeg  float64
	LongitudeDeg float64 // east positive
	ElevationM   float64 // above the reference ellipsoid

	XArmAzimuthDeg float64
	YArmAzimuthDeg float64
	XArmTiltRad    float64 // tilts are surveyed in radians
	YArmTiltRad    float64
}

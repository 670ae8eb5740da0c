package core

// AntennaResponse returns the scalar response of a detector with the
// given response tensor to a source at (ra, dec) with polarization
// angle psi, at Greenwich Mean Sidereal Time t (radians). It is the
// Frobenius contraction of the detector tensor with the polarization
// tensor of the requested mode.
func AntennaResponse(d Tensor, ra, dec, t, psi float64, mode Mode) (float64, error) {
	p, err := PolarizationTensor(ra, dec, t, psi, mode)
	if err != nil {
		return 0, err
	}
	return d.Contract(p), nil
}

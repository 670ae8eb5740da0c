package model

import (
	"errors"
	"fmt"
)

// ErrMissingParam reports a required key absent from a parameter set.
var ErrMissingParam = errors.New("missing parameter")

// Params is a dictionary of named source parameters. Keys follow the
// waveform-side naming ("Mc", "eta", "ra", "t_c", ...).
type Params map[string]float64

// Require returns the named parameter, failing with ErrMissingParam if
// the key is absent. The error names the key.
func (p Params) Require(key string) (float64, error) {
	val, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingParam, key)
	}
	return val, nil
}

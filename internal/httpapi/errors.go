package httpapi

import (
	"errors"
	"net/http"

	"github.com/signalsfoundry/strain-projector/core"
	"github.com/signalsfoundry/strain-projector/model"
	"github.com/signalsfoundry/strain-projector/network"
)

// ErrInvalidRequest is a package-level sentinel used for client-side
// validation failures.
var ErrInvalidRequest = errors.New("invalid request")

// ToHTTPStatus maps common projection errors onto HTTP status codes for the
// strain API.
func ToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, network.ErrDetectorNotFound):
		return http.StatusNotFound

	case errors.Is(err, network.ErrDetectorExists):
		return http.StatusConflict

	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, model.ErrMissingParam),
		errors.Is(err, core.ErrInvalidMode):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/signalsfoundry/strain-projector/core"
	"github.com/signalsfoundry/strain-projector/model"
	"github.com/signalsfoundry/strain-projector/network"
)

func TestToHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid request sentinel", err: fmt.Errorf("%w: bad payload", ErrInvalidRequest), want: http.StatusBadRequest},
		{name: "missing parameter", err: fmt.Errorf("%w: %q", model.ErrMissingParam, "eta"), want: http.StatusBadRequest},
		{name: "invalid mode", err: fmt.Errorf("%w: %q", core.ErrInvalidMode, "warble"), want: http.StatusBadRequest},
		{name: "detector not found", err: fmt.Errorf("%w: %q", network.ErrDetectorNotFound, "ZZ"), want: http.StatusNotFound},
		{name: "detector exists", err: network.ErrDetectorExists, want: http.StatusConflict},
		{name: "wrapped by driver", err: fmt.Errorf("detector %q: %w", "H1", core.ErrInvalidMode), want: http.StatusBadRequest},
		{name: "fallback", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ToHTTPStatus(tc.err); got != tc.want {
				t.Fatalf("ToHTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

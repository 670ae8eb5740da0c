package model

import (
	"errors"
	"strings"
	"testing"
)

func TestParams_RequirePresent(t *testing.T) {
	p := Params{"Mc": 30.2, "eta": 0.24}

	got, err := p.Require("Mc")
	if err != nil {
		t.Fatalf("Require(Mc): %v", err)
	}
	if got != 30.2 {
		t.Fatalf("Require(Mc) = %g, want 30.2", got)
	}
}

func TestParams_RequireMissingNamesKey(t *testing.T) {
	p := Params{"Mc": 30.2}

	_, err := p.Require("psi")
	if !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected ErrMissingParam, got %v", err)
	}
	if !strings.Contains(err.Error(), `"psi"`) {
		t.Fatalf("error should name the missing key, got %q", err.Error())
	}
}

func TestParams_RequireOnNilMap(t *testing.T) {
	var p Params
	if _, err := p.Require("ra"); !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected ErrMissingParam on nil map, got %v", err)
	}
}

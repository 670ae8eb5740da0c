package network

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/signalsfoundry/strain-projector/core"
	"github.com/signalsfoundry/strain-projector/model"
)

func hanfordSpec() model.DetectorSpec {
	for _, spec := range core.StandardDetectors() {
		if spec.Name == "H1" {
			return spec
		}
	}
	panic("no H1 in standard table")
}

func TestRegistryAddAndGet(t *testing.T) {
	reg := NewRegistry()
	spec := hanfordSpec()
	if err := reg.Add(spec); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	entry, err := reg.Get("H1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if entry.Spec != spec {
		t.Fatalf("Get returned spec %+v, want %+v", entry.Spec, spec)
	}
	if entry.Preset != core.PresetFrom(spec) {
		t.Fatalf("stored preset differs from PresetFrom(spec)")
	}
}

func TestRegistryAddDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(hanfordSpec()); err != nil {
		t.Fatalf("first Add error: %v", err)
	}

	err := reg.Add(hanfordSpec())
	if !errors.Is(err, ErrDetectorExists) {
		t.Fatalf("expected ErrDetectorExists, got %v", err)
	}
}

func TestRegistryAddEmptyName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(model.DetectorSpec{}); err == nil {
		t.Fatalf("expected error for empty detector name")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get("Z9")
	if !errors.Is(err, ErrDetectorNotFound) {
		t.Fatalf("expected ErrDetectorNotFound, got %v", err)
	}
}

func TestRegistryListSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"V1", "H1", "L1"} {
		spec := hanfordSpec()
		spec.Name = name
		if err := reg.Add(spec); err != nil {
			t.Fatalf("Add %s error: %v", name, err)
		}
	}

	list := reg.List()
	want := []string{"H1", "L1", "V1"}
	if len(list) != len(want) {
		t.Fatalf("List len=%d, want %d", len(list), len(want))
	}
	for i, entry := range list {
		if entry.Spec.Name != want[i] {
			t.Fatalf("List[%d] = %s, want %s", i, entry.Spec.Name, want[i])
		}
	}
}

func TestRegistryPresetsSubset(t *testing.T) {
	reg := NewRegistry()
	for _, spec := range core.StandardDetectors() {
		if err := reg.Add(spec); err != nil {
			t.Fatalf("Add %s error: %v", spec.Name, err)
		}
	}

	subset, err := reg.Presets("H1", "L1")
	if err != nil {
		t.Fatalf("Presets error: %v", err)
	}
	if len(subset) != 2 {
		t.Fatalf("subset len=%d, want 2", len(subset))
	}

	all, err := reg.Presets()
	if err != nil {
		t.Fatalf("Presets() error: %v", err)
	}
	if len(all) != reg.Len() {
		t.Fatalf("Presets() len=%d, want %d", len(all), reg.Len())
	}

	if _, err := reg.Presets("H1", "Z9"); !errors.Is(err, ErrDetectorNotFound) {
		t.Fatalf("expected ErrDetectorNotFound for unknown name, got %v", err)
	}
}

func TestRegistrySubscribe(t *testing.T) {
	reg := NewRegistry()

	var events []Event
	unsubscribe := reg.Subscribe(func(e Event) {
		events = append(events, e)
	})

	if err := reg.Add(hanfordSpec()); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Type != EventDetectorRegistered || events[0].Spec.Name != "H1" || events[0].Count != 1 {
		t.Fatalf("unexpected event %+v", events[0])
	}

	unsubscribe()
	spec := hanfordSpec()
	spec.Name = "L1"
	if err := reg.Add(spec); err != nil {
		t.Fatalf("Add after unsubscribe error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("subscriber fired after unsubscribe, got %d events", len(events))
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(hanfordSpec()); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = reg.Get("H1")
			_ = reg.List()
			_, _ = reg.Presets()
		}()
		go func(i int) {
			defer wg.Done()
			spec := hanfordSpec()
			spec.Name = fmt.Sprintf("X%d", i)
			_ = reg.Add(spec)
		}(i)
	}
	wg.Wait()

	if got := reg.Len(); got != 11 {
		t.Fatalf("Len=%d after concurrent adds, want 11", got)
	}
}

package network

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/signalsfoundry/strain-projector/core"
	"github.com/signalsfoundry/strain-projector/model"
)

var (
	// ErrDetectorExists reports a registration under a name already
	// taken.
	ErrDetectorExists = errors.New("detector already exists")
	// ErrDetectorNotFound reports a lookup of an unregistered name.
	ErrDetectorNotFound = errors.New("detector not found")
)

// EventType indicates what kind of change happened in the registry.
type EventType int

const (
	EventDetectorRegistered EventType = iota
)

// Event is emitted to subscribers when the registry changes.
type Event struct {
	Type EventType
	Spec model.DetectorSpec
	// Count is the number of registered detectors after the change.
	Count int
}

// Entry pairs a detector's surveyed spec with its computed preset.
type Entry struct {
	Spec   model.DetectorSpec
	Preset core.DetectorPreset
}

// Registry is an in-memory, thread-safe catalog of detectors.
type Registry struct {
	mu sync.RWMutex

	detectors map[string]Entry

	subs []func(Event)
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{detectors: make(map[string]Entry)}
}

// Add computes the preset of a detector spec and registers it under
// its name. It fails with ErrDetectorExists if the name is taken.
func (r *Registry) Add(spec model.DetectorSpec) error {
	if spec.Name == "" {
		return errors.New("detector name is required")
	}
	entry := Entry{Spec: spec, Preset: core.PresetFrom(spec)}

	r.mu.Lock()
	if _, exists := r.detectors[spec.Name]; exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrDetectorExists, spec.Name)
	}
	r.detectors[spec.Name] = entry
	event := Event{
		Type:  EventDetectorRegistered,
		Spec:  spec,
		Count: len(r.detectors),
	}
	subs := append([]func(Event){}, r.subs...)
	r.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		if sub != nil {
			sub(event)
		}
	}
	return nil
}

// Get returns the entry registered under the given name, failing with
// ErrDetectorNotFound if there is none.
func (r *Registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.detectors[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrDetectorNotFound, name)
	}
	return entry, nil
}

// List returns a snapshot of all entries, sorted by detector name.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]Entry, 0, len(r.detectors))
	for _, entry := range r.detectors {
		res = append(res, entry)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Spec.Name < res[j].Spec.Name })
	return res
}

// Len returns the number of registered detectors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.detectors)
}

// Presets returns the presets of the named detectors keyed by name, or
// of every registered detector when no names are given. An unknown
// name fails with ErrDetectorNotFound.
func (r *Registry) Presets(names ...string) (map[string]core.DetectorPreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]core.DetectorPreset)
	if len(names) == 0 {
		for name, entry := range r.detectors {
			out[name] = entry.Preset
		}
		return out, nil
	}
	for _, name := range names {
		entry, ok := r.detectors[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrDetectorNotFound, name)
		}
		out[name] = entry.Preset
	}
	return out, nil
}

// Subscribe registers a callback for registry events. It returns an
// unsubscribe function.
func (r *Registry) Subscribe(fn func(Event)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
	idx := len(r.subs) - 1

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.subs[idx] = nil
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/signalsfoundry/strain-projector/core"
	"github.com/signalsfoundry/strain-projector/internal/logging"
	"github.com/signalsfoundry/strain-projector/model"
	"github.com/signalsfoundry/strain-projector/network"
)

// jobJSON is the decode shape for a projection job file. Complex series are
// [re, im] pairs.
type jobJSON struct {
	FrequenciesHz []float64               `json:"frequencies_hz"`
	Parameters    map[string]float64      `json:"parameters"`
	Detectors     []string                `json:"detectors"` // empty selects every registered detector
	Waveform      map[string][][2]float64 `json:"waveform"`
}

type outputJSON struct {
	Responses map[string][][2]float64 `json:"responses"`
}

func main() {
	jobPath := flag.String("job", "configs/job.json", "Path to a projection job JSON file")
	outPath := flag.String("out", "response.json", "Path the response JSON is written to")
	detectorsPath := flag.String("detectors", "", "Path to a JSON file with additional detector specs")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	job, err := readJob(*jobPath)
	if err != nil {
		log.Error(ctx, "failed to read job", logging.String("path", *jobPath), logging.Err(err))
		os.Exit(1)
	}

	registry := network.NewRegistry()
	for _, spec := range core.StandardDetectors() {
		if err := registry.Add(spec); err != nil {
			log.Error(ctx, "failed to register preset", logging.String("name", spec.Name), logging.Err(err))
			os.Exit(1)
		}
	}
	loadDetectorFile(log, registry, *detectorsPath)

	responses, err := project(job, registry)
	if err != nil {
		log.Error(ctx, "projection failed", logging.Err(err))
		os.Exit(1)
	}

	if err := writeResponses(*outPath, responses); err != nil {
		log.Error(ctx, "failed to write response", logging.String("path", *outPath), logging.Err(err))
		os.Exit(1)
	}

	log.Info(ctx, "projection written",
		logging.String("path", *outPath),
		logging.Int("detectors", len(responses)),
		logging.Int("bins", len(job.FrequenciesHz)),
	)
}

func readJob(path string) (*jobJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var job jobJSON
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job: %w", err)
	}
	if err := validateJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func validateJob(job *jobJSON) error {
	if len(job.FrequenciesHz) == 0 {
		return fmt.Errorf("job has no frequencies_hz")
	}
	for _, mode := range []string{"plus", "cross"} {
		series, ok := job.Waveform[mode]
		if !ok {
			return fmt.Errorf("job waveform is missing mode %q", mode)
		}
		if len(series) != len(job.FrequenciesHz) {
			return fmt.Errorf("job waveform %q has %d samples, want %d", mode, len(series), len(job.FrequenciesHz))
		}
	}
	return nil
}

// project runs the two-polarization driver over the job's waveform for the
// selected detectors.
func project(job *jobJSON, registry *network.Registry) (map[string][]complex128, error) {
	presets, err := registry.Presets(job.Detectors...)
	if err != nil {
		return nil, err
	}

	plus := pairsToComplex(job.Waveform["plus"])
	cross := pairsToComplex(job.Waveform["cross"])
	gen := func([]float64, network.WaveformParams) ([]complex128, []complex128) {
		return plus, cross
	}

	return network.Respond(job.FrequenciesHz, model.Params(job.Parameters), gen, presets)
}

func writeResponses(path string, responses map[string][]complex128) error {
	out := outputJSON{Responses: make(map[string][][2]float64, len(responses))}
	for name, series := range responses {
		out.Responses[name] = complexToPairs(series)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func loadDetectorFile(log logging.Logger, registry *network.Registry, path string) {
	if path == "" {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn(context.Background(), "skipping detector file", logging.String("path", path), logging.Err(err))
		return
	}
	defer f.Close()

	summary, err := network.LoadDetectors(registry, f)
	if err != nil {
		log.Warn(context.Background(), "failed to load detector file", logging.String("path", path), logging.Err(err))
		return
	}

	log.Info(context.Background(), "loaded detector file",
		logging.String("path", path),
		logging.Int("registered", len(summary.Registered)),
		logging.Int("skipped", len(summary.Skipped)),
	)
}

func pairsToComplex(pairs [][2]float64) []complex128 {
	out := make([]complex128, len(pairs))
	for i, p := range pairs {
		out[i] = complex(p[0], p[1])
	}
	return out
}

func complexToPairs(vals []complex128) [][2]float64 {
	out := make([][2]float64, len(vals))
	for i, v := range vals {
		out[i] = [2]float64{real(v), imag(v)}
	}
	return out
}

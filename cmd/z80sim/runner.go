package main

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/SyntheticDreams/z80/pkg/z80"
)

// scenarioOutcome is one scenario's result, collected back from whichever
// worker ran it.
type scenarioOutcome struct {
	Name       string
	Mismatches []z80.Mismatch
	Err        error
}

// runScenarios runs every scenario through a runtime.NumCPU()-sized
// worker pool. Each worker gets its own Z80 and memory instance (Run
// allocates fresh ones per call), so no core state crosses a goroutine
// boundary; results come back in scenario order regardless of completion
// order.
func runScenarios(scenarios []z80.Scenario) ([]scenarioOutcome, error) {
	outcomes := make([]scenarioOutcome, len(scenarios))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			mismatches, err := s.Run()
			outcomes[i] = scenarioOutcome{Name: s.Name, Mismatches: mismatches, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "running scenarios")
	}
	return outcomes, nil
}

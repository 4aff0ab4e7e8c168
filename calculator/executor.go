package calculator

import (
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"
)

// executor fans injection cases out over a fixed pool of workers and
// collects the curves back in case order.
type executor struct {
	workers int
}

type task struct {
	index int
	cs    Case
}

func newExecutor(workers int) *executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &executor{workers: workers}
}

func (e *executor) run(c *drainageCalculator, cases []Case) ([]Curve, error) {
	workers := e.workers
	if workers > len(cases) {
		workers = len(cases)
	}

	tasks := make(chan task, len(cases))
	curves := make([]Curve, len(cases))
	errs := make([]error, len(cases))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for t := range tasks {
				if c.hub.Stopped() {
					continue
				}
				curve, err := c.solveCase(t.cs)
				if err != nil {
					log.WithFields(log.Fields{
						"flowrate":   t.cs.Flowrate,
						"foamVolume": t.cs.FoamVolume,
					}).WithError(err).Error("injection case failed")
					errs[t.index] = err
					continue
				}
				curves[t.index] = curve
			}
		}()
	}
	for i, cs := range cases {
		tasks <- task{index: i, cs: cs}
	}
	close(tasks)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if c.hub.Stopped() {
		return nil, ErrStopped
	}
	return curves, nil
}

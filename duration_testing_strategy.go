package main

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/idealo/mongodb-docvalidation-benchmarking/testcases"
)

// DurationTestingStrategy replays the operations of a case on every worker
// until the configured duration has elapsed.
type DurationTestingStrategy struct{}

func (t DurationTestingStrategy) runTestSequence(ctx context.Context, collection CollectionAPI, cases []*testcases.Case, config TestingConfig) ([]Result, error) {
	return runSequence(ctx, t, collection, cases, config)
}

func (t DurationTestingStrategy) runTest(ctx context.Context, collection CollectionAPI, c *testcases.Case, config TestingConfig) (Result, error) {
	log.Printf("Starting %s for %ds with %d threads...", c.Name, config.Duration, config.Threads)
	if err := prepareCase(ctx, collection, c); err != nil {
		return Result{}, err
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(config.Duration)*time.Second)
	defer cancel()

	w := newWorkload(collection, c)
	progress := startProgress(w)

	// Launch the workload in goroutines
	var wg sync.WaitGroup
	wg.Add(config.Threads)
	for i := 0; i < config.Threads; i++ {
		go func(worker int) {
			defer wg.Done()
			rnd := NewRandomizer()
			for runCtx.Err() == nil {
				w.execute(runCtx, rnd, worker)
			}
		}(i)
	}

	// Wait for all threads to complete
	wg.Wait()

	return finishCase(w, progress, config), nil
}

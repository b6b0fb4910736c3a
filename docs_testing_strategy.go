package main

import (
	"context"
	"log"
	"sync"

	"github.com/idealo/mongodb-docvalidation-benchmarking/testcases"
)

// DocCountTestingStrategy replays the operations of a case a fixed number of
// times, partitioned across the workers.
type DocCountTestingStrategy struct{}

func (t DocCountTestingStrategy) runTestSequence(ctx context.Context, collection CollectionAPI, cases []*testcases.Case, config TestingConfig) ([]Result, error) {
	return runSequence(ctx, t, collection, cases, config)
}

func (t DocCountTestingStrategy) runTest(ctx context.Context, collection CollectionAPI, c *testcases.Case, config TestingConfig) (Result, error) {
	log.Printf("Starting %s for %d iterations with %d threads...", c.Name, config.DocCount, config.Threads)
	if err := prepareCase(ctx, collection, c); err != nil {
		return Result{}, err
	}

	partitions := partitionIterations(config.DocCount, config.Threads)

	w := newWorkload(collection, c)
	progress := startProgress(w)

	var wg sync.WaitGroup
	wg.Add(len(partitions))
	for i, iterations := range partitions {
		go func(worker, iterations int) {
			defer wg.Done()
			rnd := NewRandomizer()
			for j := 0; j < iterations && ctx.Err() == nil; j++ {
				w.execute(ctx, rnd, worker)
			}
		}(i, iterations)
	}

	wg.Wait()

	return finishCase(w, progress, config), nil
}

// partitionIterations spreads total iterations over threads, giving the
// remainder to the first workers.
func partitionIterations(total, threads int) []int {
	if threads < 1 {
		threads = 1
	}
	partitions := make([]int, threads)
	for i := range partitions {
		partitions[i] = total / threads
		if i < total%threads {
			partitions[i]++
		}
	}
	return partitions
}

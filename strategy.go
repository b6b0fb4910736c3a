package main

import (
	"context"
	"log"

	"github.com/idealo/mongodb-docvalidation-benchmarking/testcases"
)

type TestingConfig struct {
	URI              string           `yaml:"uri"`
	Database         string           `yaml:"database"`
	Collection       string           `yaml:"collection"`
	Mode             string           `yaml:"mode"`
	Threads          int              `yaml:"threads"`
	DocCount         int              `yaml:"docs"`
	Duration         int              `yaml:"duration"`
	OutputFilePrefix string           `yaml:"output"`
	Filter           testcases.Filter `yaml:"filter"`
}

type TestingStrategy interface {
	runTestSequence(ctx context.Context, collection CollectionAPI, cases []*testcases.Case, config TestingConfig) ([]Result, error)
	runTest(ctx context.Context, collection CollectionAPI, c *testcases.Case, config TestingConfig) (Result, error)
}

func newTestingStrategy(mode string) (TestingStrategy, bool) {
	switch mode {
	case "", ModeDuration:
		return DurationTestingStrategy{}, true
	case ModeDocs:
		return DocCountTestingStrategy{}, true
	}
	return nil, false
}

const (
	ModeDuration = "duration"
	ModeDocs     = "docs"
)

// runSequence runs every case in order until ctx is cancelled. A case whose
// setup fails is recorded with its SetupError and the sequence moves on.
func runSequence(ctx context.Context, s TestingStrategy, collection CollectionAPI, cases []*testcases.Case, config TestingConfig) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := s.runTest(ctx, collection, c, config)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			log.Printf("Skipping %s: %v", c.Name, err)
			res = Result{Name: c.Name, Tags: c.Tags, SetupError: err.Error()}
		}
		results = append(results, res)
	}
	return results, nil
}

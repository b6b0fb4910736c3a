package main

import (
	"fmt"
	"strings"
	"time"
)

const compareSuffix = ".Compare"

// Result summarises one executed case.
type Result struct {
	Name     string
	Tags     []string
	Count    int64
	Errors   int64
	MeanRate float64
	P50      time.Duration
	P99      time.Duration
	// Overhead is 1 - MeanRate/baseline MeanRate, where the baseline is the
	// case's ".Compare" counterpart. Only set when HasBaseline is true.
	Overhead    float64
	HasBaseline bool
	// SetupError is set when the case could not be prepared and never ran.
	SetupError string
}

// baselineName maps a validated case to its comparison case:
// X and X.JSONSchema both compare against X.Compare.
func baselineName(name string) (string, bool) {
	if strings.HasSuffix(name, compareSuffix) {
		return "", false
	}
	return strings.TrimSuffix(name, ".JSONSchema") + compareSuffix, true
}

// computeOverheads fills in Overhead for every result whose baseline was run
// in the same sequence.
func computeOverheads(results []Result) {
	rates := make(map[string]float64, len(results))
	for _, r := range results {
		if r.SetupError == "" && strings.HasSuffix(r.Name, compareSuffix) {
			rates[r.Name] = r.MeanRate
		}
	}
	for i := range results {
		if results[i].SetupError != "" {
			continue
		}
		name, ok := baselineName(results[i].Name)
		if !ok {
			continue
		}
		base, ok := rates[name]
		if !ok || base <= 0 {
			continue
		}
		results[i].Overhead = 1 - results[i].MeanRate/base
		results[i].HasBaseline = true
	}
}

var summaryHeader = []string{"run_id", "name", "tags", "count", "errors", "mean_rate", "p50_ms", "p99_ms", "overhead", "setup_error"}

func summaryRecords(runID string, results []Result) [][]string {
	records := [][]string{summaryHeader}
	for _, r := range results {
		overhead := ""
		if r.HasBaseline {
			overhead = fmt.Sprintf("%.4f", r.Overhead)
		}
		records = append(records, []string{
			runID,
			r.Name,
			strings.Join(r.Tags, " "),
			fmt.Sprintf("%d", r.Count),
			fmt.Sprintf("%d", r.Errors),
			fmt.Sprintf("%.6f", r.MeanRate),
			fmt.Sprintf("%.6f", float64(r.P50)/float64(time.Millisecond)),
			fmt.Sprintf("%.6f", float64(r.P99)/float64(time.Millisecond)),
			overhead,
			r.SetupError,
		})
	}
	return records
}

func writeSummary(filename, runID string, results []Result) error {
	return writeCSV(filename, summaryRecords(runID, results))
}

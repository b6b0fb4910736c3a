package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/idealo/mongodb-docvalidation-benchmarking/testcases"
	"github.com/rcrowley/go-metrics"
)

// workload executes the operations of one case and records their outcome.
type workload struct {
	collection CollectionAPI
	c          *testcases.Case
	rate       metrics.Meter
	latency    metrics.Timer
	errors     metrics.Counter
}

func newWorkload(collection CollectionAPI, c *testcases.Case) *workload {
	return &workload{
		collection: collection,
		c:          c,
		rate:       metrics.NewMeter(),
		latency:    metrics.NewTimer(),
		errors:     metrics.NewCounter(),
	}
}

// prepareCase runs the case setup. It happens before the workload meters are
// created so that setup time does not count against the measured rate.
func prepareCase(ctx context.Context, collection CollectionAPI, c *testcases.Case) error {
	start := time.Now()
	if err := c.Pre(ctx, collection); err != nil {
		return fmt.Errorf("setup %s: %w", c.Name, err)
	}
	if c.NumDocs > 0 {
		count, err := collection.EstimatedDocumentCount(ctx)
		if err != nil {
			log.Printf("Failed to get estimated document count: %v", err)
		} else {
			log.Printf("Collection populated with %d documents in %v", count, time.Since(start))
		}
	}
	return nil
}

// execute runs every operation of the case once on behalf of worker.
func (w *workload) execute(ctx context.Context, rnd *Randomizer, worker int) {
	for _, op := range w.c.Ops {
		start := time.Now()
		var err error
		switch op.Op {
		case testcases.OpInsert:
			_, err = w.collection.InsertOne(ctx, rnd.ResolveDoc(op.Doc, worker))
		case testcases.OpUpdate:
			_, err = w.collection.UpdateOne(ctx, rnd.ResolveDoc(op.Query, worker), rnd.ResolveDoc(op.Update, worker))
		default:
			err = fmt.Errorf("unsupported op %q", op.Op)
		}
		if err != nil {
			// Operations cut short by the end of the run are not failures.
			if ctx.Err() != nil {
				return
			}
			w.errors.Inc(1)
			log.Printf("%s %s failed for worker %d: %v", w.c.Name, op.Op, worker, err)
			continue
		}
		w.latency.UpdateSince(start)
		w.rate.Mark(1)
	}
}

func (w *workload) stop() {
	w.rate.Stop()
	w.latency.Stop()
}

func (w *workload) result() Result {
	return Result{
		Name:     w.c.Name,
		Tags:     w.c.Tags,
		Count:    w.rate.Count(),
		Errors:   w.errors.Count(),
		MeanRate: w.rate.RateMean(),
		P50:      time.Duration(w.latency.Percentile(0.5)),
		P99:      time.Duration(w.latency.Percentile(0.99)),
	}
}

var progressHeader = []string{"timestamp", "count", "errors", "mean_rate", "m1_rate", "m5_rate", "m15_rate", "p50_ms", "p99_ms"}

// progressRecorder samples a workload once per second until stopped.
type progressRecorder struct {
	w       *workload
	mu      sync.Mutex
	records [][]string
	done    chan struct{}
	wg      sync.WaitGroup
}

func startProgress(w *workload) *progressRecorder {
	p := &progressRecorder{
		w:       w,
		records: [][]string{progressHeader},
		done:    make(chan struct{}),
	}
	secondTicker := time.NewTicker(1 * time.Second)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer secondTicker.Stop()
		for {
			select {
			case <-secondTicker.C:
				p.sample(true)
			case <-p.done:
				return
			}
		}
	}()
	return p
}

func (p *progressRecorder) sample(logIt bool) {
	timestamp := time.Now().Unix()
	count := p.w.rate.Count()
	errs := p.w.errors.Count()
	mean := p.w.rate.RateMean()
	m1Rate := p.w.rate.Rate1()
	m5Rate := p.w.rate.Rate5()
	m15Rate := p.w.rate.Rate15()
	p50 := p.w.latency.Percentile(0.5) / float64(time.Millisecond)
	p99 := p.w.latency.Percentile(0.99) / float64(time.Millisecond)

	if logIt {
		log.Printf("%s Timestamp: %d, Op Count: %d, Errors: %d, Mean Rate: %.2f ops/sec, m1_rate: %.2f, p50: %.3fms, p99: %.3fms",
			p.w.c.Name, timestamp, count, errs, mean, m1Rate, p50, p99)
	}

	record := []string{
		fmt.Sprintf("%d", timestamp),
		fmt.Sprintf("%d", count),
		fmt.Sprintf("%d", errs),
		fmt.Sprintf("%.6f", mean),
		fmt.Sprintf("%.6f", m1Rate),
		fmt.Sprintf("%.6f", m5Rate),
		fmt.Sprintf("%.6f", m15Rate),
		fmt.Sprintf("%.6f", p50),
		fmt.Sprintf("%.6f", p99),
	}
	p.mu.Lock()
	p.records = append(p.records, record)
	p.mu.Unlock()
}

// stop ends sampling, records a final row and returns all rows.
func (p *progressRecorder) stop() [][]string {
	close(p.done)
	p.wg.Wait()
	p.sample(false)
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.records
}

func resultFilename(prefix, name string) string {
	if prefix == "" {
		prefix = "benchmark_results"
	}
	return fmt.Sprintf("%s_%s.csv", prefix, strings.ReplaceAll(name, "/", "_"))
}

func writeCSV(filename string, records [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write records to CSV: %w", err)
	}
	return nil
}

// finishCase stops the workload, writes its progress CSV and returns its result.
func finishCase(w *workload, progress *progressRecorder, config TestingConfig) Result {
	records := progress.stop()
	res := w.result()
	w.stop()

	filename := resultFilename(config.OutputFilePrefix, w.c.Name)
	if err := writeCSV(filename, records); err != nil {
		log.Printf("Failed to save results for %s: %v", w.c.Name, err)
	} else {
		log.Printf("%s completed: %d ops, %d errors, %.2f ops/sec. Results saved to %s",
			res.Name, res.Count, res.Errors, res.MeanRate, filename)
	}
	return res
}

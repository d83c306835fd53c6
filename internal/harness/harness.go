// Package harness executes a selected analyzer working set against one AST.
// Each analyzer runs in isolation: a panicking analyzer yields a per-code
// failure and never aborts the remaining working set.
package harness

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Sumatoshi-tech/smellhound/internal/observability"
	"github.com/Sumatoshi-tech/smellhound/internal/registry"
	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// ErrAnalyzerFault wraps a panic raised by an analyzer's Evaluate.
var ErrAnalyzerFault = errors.New("analyzer fault")

// PatternResult is the outcome of one pattern invocation.
type PatternResult struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Lines []int  `json:"lines" yaml:"lines"`
	Err   error  `json:"-" yaml:"-"`
}

// MetricResult is the outcome of one metric invocation.
type MetricResult struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Score int    `json:"score" yaml:"score"`
	Err   error  `json:"-" yaml:"-"`
}

// Report aggregates all per-code outcomes for one AST, in working-set order.
type Report struct {
	Patterns []PatternResult `json:"patterns" yaml:"patterns"`
	Metrics  []MetricResult  `json:"metrics" yaml:"metrics"`
}

// Runner executes working sets with a bounded worker pool. The zero value
// runs with runtime.NumCPU workers and no instrumentation.
type Runner struct {
	// Workers bounds parallel analyzer invocations; <=0 means NumCPU.
	Workers int
	// Metrics receives per-invocation instrumentation when non-nil.
	Metrics *observability.Metrics
}

// Run resolves both namespace requests against the registry and executes
// the resulting pattern and metric working sets against root. A fresh
// analyzer instance is made per invocation, so concurrent Run calls never
// share state. Selection errors abort the run; analyzer faults do not.
func (r *Runner) Run(ctx context.Context, reg *registry.Registry, patternReq, metricReq registry.Request, root *node.Node) (*Report, error) {
	patternEntries, err := reg.SelectPatterns(patternReq)
	if err != nil {
		return nil, err
	}

	metricEntries, err := reg.SelectMetrics(metricReq)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Patterns: make([]PatternResult, len(patternEntries)),
		Metrics:  make([]MetricResult, len(metricEntries)),
	}

	jobs := make([]func(), 0, len(patternEntries)+len(metricEntries))

	for entryIdx, entry := range patternEntries {
		jobs = append(jobs, r.patternJob(ctx, entry, root, &report.Patterns[entryIdx]))
	}

	for entryIdx, entry := range metricEntries {
		jobs = append(jobs, r.metricJob(ctx, entry, root, &report.Metrics[entryIdx]))
	}

	r.runJobs(jobs)

	return report, nil
}

// RunPatternEntries executes the given pattern entries against root,
// returning one result per entry in order.
func (r *Runner) RunPatternEntries(ctx context.Context, entries []registry.Entry[registry.Pattern], root *node.Node) []PatternResult {
	results := make([]PatternResult, len(entries))

	jobs := make([]func(), 0, len(entries))
	for entryIdx, entry := range entries {
		jobs = append(jobs, r.patternJob(ctx, entry, root, &results[entryIdx]))
	}

	r.runJobs(jobs)

	return results
}

// RunMetricEntries executes the given metric entries against root, returning
// one result per entry in order.
func (r *Runner) RunMetricEntries(ctx context.Context, entries []registry.Entry[registry.Metric], root *node.Node) []MetricResult {
	results := make([]MetricResult, len(entries))

	jobs := make([]func(), 0, len(entries))
	for entryIdx, entry := range entries {
		jobs = append(jobs, r.metricJob(ctx, entry, root, &results[entryIdx]))
	}

	r.runJobs(jobs)

	return results
}

func (r *Runner) patternJob(ctx context.Context, entry registry.Entry[registry.Pattern], root *node.Node, result *PatternResult) func() {
	result.Code = entry.Code
	result.Name = entry.Name

	return func() {
		result.Lines, result.Err = r.evaluatePattern(ctx, entry, root)
	}
}

func (r *Runner) metricJob(ctx context.Context, entry registry.Entry[registry.Metric], root *node.Node, result *MetricResult) func() {
	result.Code = entry.Code
	result.Name = entry.Name

	return func() {
		result.Score, result.Err = r.evaluateMetric(ctx, entry, root)
	}
}

func (r *Runner) evaluatePattern(ctx context.Context, entry registry.Entry[registry.Pattern], root *node.Node) (lines []int, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	defer r.observe(observability.KindPattern, entry.Code, time.Now(), &err)

	defer func() {
		if panicked := recover(); panicked != nil {
			err = fmt.Errorf("%w: %s: %v", ErrAnalyzerFault, entry.Code, panicked)
		}
	}()

	return entry.Make().Evaluate(root), nil
}

func (r *Runner) evaluateMetric(ctx context.Context, entry registry.Entry[registry.Metric], root *node.Node) (score int, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}

	defer r.observe(observability.KindMetric, entry.Code, time.Now(), &err)

	defer func() {
		if panicked := recover(); panicked != nil {
			err = fmt.Errorf("%w: %s: %v", ErrAnalyzerFault, entry.Code, panicked)
		}
	}()

	return entry.Make().Evaluate(root), nil
}

// observe records one invocation. Deferred with the start time captured at
// call setup, so it measures the full Evaluate duration.
func (r *Runner) observe(kind, code string, start time.Time, err *error) {
	if r.Metrics == nil {
		return
	}

	r.Metrics.Runs.WithLabelValues(kind, code).Inc()
	r.Metrics.Duration.WithLabelValues(kind, code).Observe(time.Since(start).Seconds())

	if *err != nil {
		r.Metrics.Faults.WithLabelValues(kind, code).Inc()
	}
}

func (r *Runner) runJobs(jobs []func()) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}

	if workers <= 1 {
		for _, job := range jobs {
			job()
		}

		return
	}

	jobChan := make(chan func(), workers)

	var waitGroup sync.WaitGroup

	for range workers {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			for job := range jobChan {
				job()
			}
		}()
	}

	for _, job := range jobs {
		jobChan <- job
	}

	close(jobChan)
	waitGroup.Wait()
}

package registry

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateCode is returned when a catalog namespace declares a code twice.
var ErrDuplicateCode = errors.New("duplicate analyzer code")

// ErrDanglingExclude is returned when an exclude set references a code absent
// from its catalog namespace.
var ErrDanglingExclude = errors.New("exclude set references unknown code")

// Registry is the process-wide catalog of pattern and metric analyzers.
// It is immutable after construction and safe for concurrent reads.
type Registry struct {
	patterns        []Entry[Pattern]
	metrics         []Entry[Metric]
	patternsExclude []string
	metricsExclude  []string
	target          map[string]string
}

// New assembles and validates the registry from the compiled-in catalog.
// Construction is pure data assembly: no I/O, no AST access. It fails fast
// on a duplicate code within one namespace or a dangling exclude reference.
func New() (*Registry, error) {
	reg := &Registry{
		patterns:        patternCatalog(),
		metrics:         metricCatalog(),
		patternsExclude: patternExcludes(),
		metricsExclude:  metricExcludes(),
		target:          map[string]string{},
	}

	err := reg.validate()
	if err != nil {
		return nil, err
	}

	return reg, nil
}

//nolint:gochecknoglobals // Single-initialization guard for the default registry.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the shared process-wide registry, constructing it on first
// use. The compiled-in catalog is static, so a construction error here means
// the binary itself is misassembled.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = New()
	})

	return defaultRegistry, defaultErr
}

// Patterns returns the ordered pattern catalog.
func (r *Registry) Patterns() []Entry[Pattern] {
	entries := make([]Entry[Pattern], len(r.patterns))
	copy(entries, r.patterns)

	return entries
}

// Metrics returns the ordered metric catalog.
func (r *Registry) Metrics() []Entry[Metric] {
	entries := make([]Entry[Metric], len(r.metrics))
	copy(entries, r.metrics)

	return entries
}

// PatternsExclude returns the pattern codes disabled by default.
func (r *Registry) PatternsExclude() []string {
	codes := make([]string, len(r.patternsExclude))
	copy(codes, r.patternsExclude)

	return codes
}

// MetricsExclude returns the metric codes disabled by default.
func (r *Registry) MetricsExclude() []string {
	codes := make([]string, len(r.metricsExclude))
	copy(codes, r.metricsExclude)

	return codes
}

// Target returns the reserved extension map.
func (r *Registry) Target() map[string]string {
	target := make(map[string]string, len(r.target))
	for key, value := range r.target {
		target[key] = value
	}

	return target
}

func (r *Registry) validate() error {
	patternCodes, err := uniqueCodeSet(entryCodes(r.patterns))
	if err != nil {
		return fmt.Errorf("patterns: %w", err)
	}

	metricCodes, err := uniqueCodeSet(entryCodes(r.metrics))
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	err = checkExcludes(r.patternsExclude, patternCodes)
	if err != nil {
		return fmt.Errorf("patterns: %w", err)
	}

	err = checkExcludes(r.metricsExclude, metricCodes)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}

func uniqueCodeSet(codes []string) (map[string]struct{}, error) {
	codeSet := make(map[string]struct{}, len(codes))

	for _, code := range codes {
		if _, exists := codeSet[code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, code)
		}

		codeSet[code] = struct{}{}
	}

	return codeSet, nil
}

func checkExcludes(excludes []string, codeSet map[string]struct{}) error {
	for _, code := range excludes {
		if _, exists := codeSet[code]; !exists {
			return fmt.Errorf("%w: %s", ErrDanglingExclude, code)
		}
	}

	return nil
}

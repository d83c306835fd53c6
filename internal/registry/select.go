package registry

import (
	"errors"
	"fmt"
)

// ErrUnknownCode is returned when a selection request names a code absent
// from the catalog namespace it addresses.
var ErrUnknownCode = errors.New("unknown analyzer code")

// ErrConflictingRequest is returned when a request sets both Only and Without.
var ErrConflictingRequest = errors.New("selection request sets both Only and Without")

// Request narrows a catalog namespace to a working set.
//
// Zero value means default selection: the catalog minus its exclude set, in
// catalog declaration order. Only selects exactly the named codes, in catalog
// order, overriding default exclusions for this run. Without removes codes
// from the default selection. Only and Without are mutually exclusive.
// Naming an unknown code is a configuration error, never silently ignored.
type Request struct {
	Only    []string
	Without []string
}

// SelectPatterns resolves the pattern working set for the request.
func (r *Registry) SelectPatterns(req Request) ([]Entry[Pattern], error) {
	return selectEntries(r.patterns, r.patternsExclude, req)
}

// SelectMetrics resolves the metric working set for the request.
func (r *Registry) SelectMetrics(req Request) ([]Entry[Metric], error) {
	return selectEntries(r.metrics, r.metricsExclude, req)
}

func selectEntries[T any](entries []Entry[T], excludes []string, req Request) ([]Entry[T], error) {
	if len(req.Only) > 0 && len(req.Without) > 0 {
		return nil, ErrConflictingRequest
	}

	codeSet := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		codeSet[entry.Code] = struct{}{}
	}

	err := checkKnown(req.Only, codeSet)
	if err != nil {
		return nil, err
	}

	err = checkKnown(req.Without, codeSet)
	if err != nil {
		return nil, err
	}

	if len(req.Only) > 0 {
		return filterEntries(entries, toSet(req.Only)), nil
	}

	dropped := toSet(excludes)
	for _, code := range req.Without {
		dropped[code] = struct{}{}
	}

	selected := make([]Entry[T], 0, len(entries))

	for _, entry := range entries {
		if _, skip := dropped[entry.Code]; skip {
			continue
		}

		selected = append(selected, entry)
	}

	return selected, nil
}

func filterEntries[T any](entries []Entry[T], wanted map[string]struct{}) []Entry[T] {
	selected := make([]Entry[T], 0, len(wanted))

	for _, entry := range entries {
		if _, keep := wanted[entry.Code]; keep {
			selected = append(selected, entry)
		}
	}

	return selected
}

func checkKnown(codes []string, codeSet map[string]struct{}) error {
	for _, code := range codes {
		if _, exists := codeSet[code]; !exists {
			return fmt.Errorf("%w: %s", ErrUnknownCode, code)
		}
	}

	return nil
}

func toSet(codes []string) map[string]struct{} {
	codeSet := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		codeSet[code] = struct{}{}
	}

	return codeSet
}

package registry

// Entry binds one analyzer factory into the catalog under a stable code.
//
// Code is persisted externally as a dataset column name and CLI identifier;
// it never changes meaning across releases. Make is a zero-argument factory
// producing a fresh analyzer instance per analysis run; configured variants
// close over their parameters at catalog definition time, so the dispatch
// path stays uniform regardless of how many parameters the underlying
// algorithm needs.
type Entry[T any] struct {
	Name string
	Code string
	Make func() T
}

func entryCodes[T any](entries []Entry[T]) []string {
	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		codes = append(codes, entry.Code)
	}

	return codes
}

package check

// Metadata describes what the external metadata collaborator knows about a
// path. In the original tool this came from version-control properties; any
// path-keyed store can back it.
type Metadata struct {
	// Tracked reports whether the path is known to the metadata store.
	Tracked bool
	// Binary reports whether the path holds binary content. Binary files
	// are never scanned.
	Binary bool
	// Props is the raw per-path exception list: rule names separated by
	// commas and/or spaces. May be empty.
	Props string
}

// ExceptionSource looks up per-path metadata. Implementations must be safe
// for concurrent use; the runner calls Lookup from multiple workers.
type ExceptionSource interface {
	Lookup(path string) (Metadata, error)
}

// NullSource is an ExceptionSource that knows nothing. Lookups report the
// path as untracked, which scans the file with no exceptions.
type NullSource struct{}

// Lookup implements ExceptionSource.
func (NullSource) Lookup(string) (Metadata, error) {
	return Metadata{}, nil
}

package model

// FileReport records the outcome of processing a single file.
type FileReport struct {
	Path     Path
	Modified bool
	Blocks   int
	Err      error // error executing the read-scan-write cycle, nil on success
}

// ListEntry pairs a discovered file with its test-module count.
type ListEntry struct {
	Path   Path
	Blocks int
}

// RunSummary accumulates counters over a full run.
type RunSummary struct {
	Processed int
	Modified  int
}

package model

// StripResult is produced once per scanned file and consumed immediately to
// decide whether the file is written back.
type StripResult struct {
	Modified bool
	Text     string
	// Blocks is the number of test modules removed from the input.
	Blocks int
}

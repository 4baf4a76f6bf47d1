// Package model defines the data structures shared by the detest pipeline.
package model

// Path represents a file system path.
type Path string

// RustFileExt is the canonical source-file extension discovery looks for.
const RustFileExt = ".rs"

package internal

import "fmt"

// SourceError represents errors reading the content tree.
type SourceError struct {
	Path string
	Op   string // "open", "read", "scan"
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing a document or curated file.
type ParseError struct {
	Dialect string
	Path    string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Dialect, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmitError represents errors writing a generated data module.
type EmitError struct {
	Module string
	Path   string
	Err    error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit error [%s] %s: %v", e.Module, e.Path, e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}

// IndexError represents errors building or querying the content index.
type IndexError struct {
	Op  string
	Err error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index error: %s: %v", e.Op, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

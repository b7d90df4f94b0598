package artifact

import "fmt"

// WriteError reports a failed or partial artifact write. Partial writes are
// surfaced, never hidden: the error names exactly which unit failed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("artifact write failed for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// MissingError reports an absent artifact unit. Model and vectorizer load
// together; either one missing is a hard load failure.
type MissingError struct {
	Path string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("artifact missing: %s", e.Path)
}

// CorruptError reports an artifact unit that exists but cannot be decoded.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("artifact corrupt: %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

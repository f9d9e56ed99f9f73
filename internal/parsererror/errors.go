package parsererror

import "fmt"

// ParseError represents a document-level parse failure. The transformation
// is atomic: when this error is returned no partial report exists.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("failed to parse report '%s': %v", e.Source, e.Err)
	}
	return fmt.Sprintf("failed to parse report: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input that is readable but does not look
// like a bureau report at all.
type InvalidFormatError struct {
	FilePath string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("invalid report format in file '%s': %s", e.FilePath, e.Msg)
	}
	return fmt.Sprintf("invalid report format: %s", e.Msg)
}

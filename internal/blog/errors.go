// errors.go - Sentinel errors for the build pipeline
package blog

import "errors"

// Every error below is fatal to the whole build; there is no per-post
// isolation or retry. Callers match with errors.Is.
var (
	// ErrNoContent means discovery found zero matching source files.
	ErrNoContent = errors.New("no content files found")

	// ErrRead means a source file could not be read.
	ErrRead = errors.New("cannot read source file")

	// ErrMissingMetadata means a required metadata key is absent or the
	// metadata block is malformed.
	ErrMissingMetadata = errors.New("missing required metadata")

	// ErrDateParse means a date string is unparseable, or names a local
	// time that is ambiguous or nonexistent in the reference timezone.
	ErrDateParse = errors.New("cannot parse date")

	// ErrTemplate means a template resource is missing or malformed.
	ErrTemplate = errors.New("bad template")

	// ErrWrite means an output artifact could not be written.
	ErrWrite = errors.New("cannot write artifact")
)

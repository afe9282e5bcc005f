package hmmalign

import "fmt"

// A MalformedLineError is returned when a line matches none of the
// recognized line shapes, or when the content after a recognized prefix
// is not in the expected form. The error value is the offending line.
type MalformedLineError string

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("hmmalign: error parsing: %s", string(e))
}

// A DuplicateRecordError is returned when a sequence or posterior row
// repeats a gene identifier, or when a second consensus or mask row
// appears. The error value is the offending line.
type DuplicateRecordError string

func (e DuplicateRecordError) Error() string {
	return fmt.Sprintf("hmmalign: duplicate: %s", string(e))
}

// An IncompleteInputError is returned when the input ends with a required
// section missing, or with differing sequence and posterior row counts.
// The error value names the first missing section.
type IncompleteInputError string

func (e IncompleteInputError) Error() string {
	return fmt.Sprintf("hmmalign: incomplete input: %s", string(e))
}

// A NotFoundError is returned by Masked for a gene identifier that has no
// aligned sequence.
type NotFoundError string

func (e NotFoundError) Error() string {
	return fmt.Sprintf("hmmalign: no sequence for: %s", string(e))
}

// An OutOfRangeError is returned by Masked when a retained mask column
// lies beyond the end of a gene's aligned sequence.
type OutOfRangeError struct {
	Name   string
	Column int
	Len    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("hmmalign: mask column %d out of range for '%s' (length %d)",
		e.Column, e.Name, e.Len)
}

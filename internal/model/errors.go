package model

import "fmt"

// ValidationError is returned when the raw arguments are malformed or insufficient.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

var (
	ErrNotEnoughArgs = NewValidationError("not enough arguments")
	ErrArgParsing    = NewValidationError("problem with argument parsing")
)

// IOError is returned when the input file can't be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("couldn't read file %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

package cli

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess = 0 // Success
	ExitGeneral = 1 // General/unknown error
	ExitConfig  = 2 // Invalid YAML, invalid option values
	ExitInput   = 3 // Source missing, unreadable or in an unknown format
	ExitRender  = 4 // Chart, table or output could not be written
)

// ExitCoder is an interface for errors that carry a custom exit code and message.
type ExitCoder interface {
	ExitCode() int
	Message() string
}

type cliError struct {
	code    int
	message string
	err     error
}

// WrapError creates a new CLIError wrapping an underlying error.
func WrapError(code int, message string, err error) *cliError {
	return &cliError{
		code:    code,
		message: message,
		err:     err,
	}
}

func (e *cliError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *cliError) ExitCode() int {
	return e.code
}

// Message returns the formatted message for display.
func (e *cliError) Message() string {
	return fmt.Sprintf("Error: %s\n", e.Error())
}

func (e *cliError) Unwrap() error {
	return e.err
}

// ExitCodeOf returns the exit code carried by err, ExitGeneral for other
// errors and ExitSuccess for nil.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitGeneral
}

// ErrConfig creates a configuration error.
func ErrConfig(message string, err error) *cliError {
	return WrapError(ExitConfig, message, err)
}

// ErrInput creates a data source error.
func ErrInput(message string, err error) *cliError {
	return WrapError(ExitInput, message, err)
}

// ErrRender creates an output error.
func ErrRender(message string, err error) *cliError {
	return WrapError(ExitRender, message, err)
}

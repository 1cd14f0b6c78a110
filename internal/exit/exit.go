// Package exit turns command outcomes into process exit codes.
package exit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/textkit/internal/config"
	"github.com/jacoelho/textkit/internal/scan"
)

const (
	CodeSuccess = 0
	CodeFailure = 1
	// CodeUsage covers bad flags, arguments and configuration.
	CodeUsage = 2
	// CodeStructure reports mismatched or unclosed brackets in the input.
	CodeStructure = 3
)

// ErrUsage marks errors caused by how the tool was invoked.
var ErrUsage = errors.New("usage error")

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprintln(r.Output, r.Message)
}

// Success creates a successful exit result that outputs to stdout with exit code 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Error creates an error exit result that outputs to stderr with exit code 1.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeFailure,
		Message:  message,
	}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// Usagef wraps ErrUsage with a formatted message.
func Usagef(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}

// Code maps err to an exit code.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, config.ErrInvalidConfig):
		return CodeUsage
	case errors.Is(err, scan.ErrMismatch), errors.Is(err, scan.ErrUnclosedGroups):
		return CodeStructure
	default:
		return CodeFailure
	}
}

// FromError converts err into a result printed to stderr, or a silent
// success when err is nil.
func FromError(err error) *Result {
	if err == nil {
		return Success("")
	}
	result := Errorf("Error: %v", err)
	result.ExitCode = Code(err)
	return result
}

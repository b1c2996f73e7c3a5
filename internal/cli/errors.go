package cli

import (
	"errors"
	"io/fs"

	"github.com/katalvlaran/eigenkit/internal/config"
	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/number"
	"github.com/katalvlaran/eigenkit/ode"
	"github.com/katalvlaran/eigenkit/poly"
)

// Process exit codes.
const (
	ExitOK      = 0 // success, including the "a must not be 0" message
	ExitUsage   = 1 // wrong arguments, bad flags, invalid configuration
	ExitInput   = 2 // unreadable or malformed input
	ExitCompute = 3 // input was fine but the mathematics could not finish
)

// UsageError is returned for wrong positional arguments. Its message is the
// one-line usage string printed instead of the generic error prefix.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string { return e.Usage }

// inputErrors are failures attributable to the input file or flags.
var inputErrors = []error{
	matrix.ErrParse,
	matrix.ErrDimensionMismatch,
	matrix.ErrEmpty,
	matrix.ErrInvalidDimensions,
	matrix.ErrNonSquare,
	number.ErrSyntax,
	fs.ErrNotExist,
	fs.ErrPermission,
}

// computeErrors are failures of the computation on valid input.
var computeErrors = []error{
	poly.ErrUnsolvable,
	matrix.ErrEigenFailed,
	ode.ErrTextbookMismatch,
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	var invalid config.ValidationErrors
	if errors.As(err, &invalid) {
		return ExitUsage
	}
	for _, target := range computeErrors {
		if errors.Is(err, target) {
			return ExitCompute
		}
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return ExitInput
		}
	}

	return ExitUsage
}

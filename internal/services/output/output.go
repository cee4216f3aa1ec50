// Package output defines the uniform result returned by every service
// operation. Operations never return Go errors to their callers; failures are
// carried in the Output value with a message and a classification code.
package output

import (
	"fmt"

	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

// InternalErrorMessage is the only message callers see for technical faults
const InternalErrorMessage = "Internal server error occurred."

// Logger is the diagnostic sink for technical faults. *log.Logger from
// charmbracelet/log satisfies it.
type Logger interface {
	Error(msg any, keyvals ...any)
}

// Output is the tagged result shared by all operations. Operation specific
// outputs embed it and add their payload fields.
type Output struct {
	OK    bool                `json:"ok"`
	Error string              `json:"error,omitempty"`
	Code  apperrors.ErrorCode `json:"-"`
}

// Base exposes the embedded Output of an operation result
func (o *Output) Base() *Output {
	return o
}

// Status returns the HTTP status matching the outcome
func (o Output) Status() int {
	if o.OK {
		return apperrors.HTTPStatus("")
	}
	return apperrors.HTTPStatus(o.Code)
}

// Success returns the success variant
func Success() Output {
	return Output{OK: true}
}

// Fail returns a specific failure. Specific failures are never logged.
func Fail(code apperrors.ErrorCode, message string) Output {
	return Output{Error: message, Code: code}
}

// Failf returns a specific failure with a formatted message
func Failf(code apperrors.ErrorCode, format string, args ...any) Output {
	return Fail(code, fmt.Sprintf(format, args...))
}

// NotFound returns the "<Entity> with id <id> not found" failure
func NotFound(entity string, id any) Output {
	return Failf(apperrors.ErrCodeNotFound, "%s with id %v not found", entity, id)
}

// Internal writes one diagnostic entry for err and returns the generic failure
func Internal(logger Logger, op string, err error, keyvals ...any) Output {
	if logger != nil {
		logger.Error("operation failed", append([]any{"op", op, "err", err}, keyvals...)...)
	}
	return Fail(apperrors.ErrCodeInternal, InternalErrorMessage)
}

// Recover converts a panic raised inside an operation into the generic
// failure. It must be deferred directly:
//
//	defer output.Recover(s.logger, "GetPodcast", &out)
func Recover[T any, PT interface {
	*T
	Base() *Output
}](logger Logger, op string, out PT) {
	if r := recover(); r != nil {
		var zero T
		*out = zero
		*out.Base() = Internal(logger, op, fmt.Errorf("panic: %v", r))
	}
}

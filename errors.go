package d2d

import (
	"errors"
	"fmt"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/native"
)

// ErrLibraryNotFound is returned by NewFactory when the requested rendering
// engine is not registered.
var ErrLibraryNotFound = errors.New("d2d: rendering library not found")

// Builder validation errors. Every *FieldError wraps one of them.
var (
	// ErrMissingField reports a required builder field that was never set.
	ErrMissingField = errors.New("d2d: missing required field")

	// ErrInvalidField reports a builder field set to an unusable value.
	ErrInvalidField = errors.New("d2d: invalid field")
)

// Status is a result code returned by the rendering engine.
// Negative values are failures. Status implements error.
type Status = com.Status

// Status codes reported by the rendering engine.
const (
	StatusOK                     = com.OK
	StatusFalse                  = com.False
	StatusNotImpl                = com.NotImpl
	StatusNoInterface            = com.NoInterface
	StatusPointer                = com.Pointer
	StatusAbort                  = com.Abort
	StatusFail                   = com.Fail
	StatusUnexpected             = com.Unexpected
	StatusOutOfMemory            = com.OutOfMemory
	StatusInvalidArg             = com.InvalidArg
	StatusWrongState             = com.WrongState
	StatusNotInitialized         = com.NotInitialized
	StatusUnsupportedOperation   = com.UnsupportedOperation
	StatusZeroVector             = com.ZeroVector
	StatusInternalError          = com.InternalError
	StatusInvalidCall            = com.InvalidCall
	StatusNoHardwareDevice       = com.NoHardwareDevice
	StatusRecreateTarget         = com.RecreateTarget
	StatusMaxTextureSizeExceeded = com.MaxTextureSizeExceeded
	StatusBadNumber              = com.BadNumber
	StatusWrongFactory           = com.WrongFactory
	StatusLayerAlreadyInUse      = com.LayerAlreadyInUse
	StatusPopCallDidNotMatchPush = com.PopCallDidNotMatchPush
	StatusWrongResourceDomain    = com.WrongResourceDomain
	StatusPushPopUnbalanced      = com.PushPopUnbalanced
	StatusUnsupportedPixelFormat = com.UnsupportedPixelFormat
)

// StatusError is a failed engine call.
//
// Use errors.Is with a Status to test for a specific code:
//
//	if errors.Is(err, d2d.StatusRecreateTarget) {
//		// discard the render target and every resource it created
//	}
type StatusError struct {
	// Op is the operation that failed, such as "CreateBitmap".
	Op string
	// Code is the failing status.
	Code Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("d2d: %s: %v", e.Op, e.Code)
}

// Unwrap returns the status code.
func (e *StatusError) Unwrap() error {
	return e.Code
}

// FieldError reports invalid builder input. No engine call is made when a
// builder returns a FieldError.
type FieldError struct {
	Builder string
	Field   string
	Reason  string
	// Err is ErrMissingField or ErrInvalidField.
	Err error
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("d2d: %s: %s: %v", e.Builder, e.Field, e.Err)
	}
	return fmt.Sprintf("d2d: %s: %s: %s", e.Builder, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingField(builder, field string) error {
	return &FieldError{Builder: builder, Field: field, Err: ErrMissingField}
}

func invalidField(builder, field, reason string) error {
	return &FieldError{Builder: builder, Field: field, Reason: reason, Err: ErrInvalidField}
}

// check converts a status into an error. Success codes return nil.
func check(op string, st com.Status) error {
	if st.Succeeded() {
		return nil
	}
	Logger().Warn("d2d: engine call failed", "op", op, "status", st)
	return &StatusError{Op: op, Code: st}
}

// openLibrary loads the named engine, mapping a missing registration to
// ErrLibraryNotFound.
func openLibrary(name string) (native.Library, error) {
	lib, err := native.Open(name)
	if errors.Is(err, native.ErrLibraryNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrLibraryNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("d2d: load library %q: %w", name, err)
	}
	return lib, nil
}

// Package errors provides error handling and the warning system for the
// whole project. Errors carry structured fields and stack traces so that
// a failed training setup or an aborted round can be reported with the
// offending value attached.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("cboost-Warning: %v\n", w)
	}
	// zerolog hook, set lazily to avoid a circular import with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler. This controls how
// non-fatal conditions such as a degenerate risk denominator are reported.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the zerolog warning sink (set by pkg/log).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. If a zerolog sink is installed it takes precedence,
// otherwise the plain handler is used.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DegenerateRiskWarning is emitted when a relative-improvement stop criterion
// cannot be evaluated because the previous risk is zero, negative or not
// finite. The criterion is skipped for that round.
type DegenerateRiskWarning struct {
	LoggerName string
	Round      int
	Risk       float64
}

func (w *DegenerateRiskWarning) Error() string {
	return fmt.Sprintf("relative improvement undefined for %q at round %d: previous risk %g is not a positive finite number",
		w.LoggerName, w.Round, w.Risk)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DegenerateRiskWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("logger", w.LoggerName).
		Int("round", w.Round).
		Float64("risk", w.Risk).
		Str("type", "DegenerateRiskWarning")
}

// NewDegenerateRiskWarning creates a new DegenerateRiskWarning.
func NewDegenerateRiskWarning(loggerName string, round int, risk float64) *DegenerateRiskWarning {
	return &DegenerateRiskWarning{LoggerName: loggerName, Round: round, Risk: risk}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ValidationError reports a configuration value that failed validation at
// construction time, e.g. an unknown time unit or a non-positive budget.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cboost: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// IdentifierError reports a failed lookup of a feature identifier, e.g. when
// the base learner selected in a round has no matching held-out data. This is
// a configuration fault of the session, not a transient condition; the round
// is aborted.
type IdentifierError struct {
	Op         string
	Identifier string
	Known      []string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("cboost: %s: no data registered for identifier %q (known: %v)", e.Op, e.Identifier, e.Known)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *IdentifierError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("identifier", e.Identifier).
		Strs("known", e.Known).
		Str("type", "IdentifierError")
}

// NewIdentifierError creates an IdentifierError with a stack trace attached.
func NewIdentifierError(op, identifier string, known []string) error {
	err := &IdentifierError{Op: op, Identifier: identifier, Known: known}
	return errors.WithStack(err)
}

// DimensionError reports a length or shape mismatch between two series, e.g.
// response vs. prediction vectors or unequal logger series during table
// assembly.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("cboost: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is unusable for an operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("cboost: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error values
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an empty vector or matrix is supplied.
	ErrEmptyData = New("empty data")

	// ErrNotLogged is returned when a per-round query is made before any
	// round has been logged.
	ErrNotLogged = New("no rounds logged yet")
)

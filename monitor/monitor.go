// Package monitor implements the per-round diagnostics and stopping rules of
// the boosting trainer.
//
// Each concrete logger records one series over the training rounds (round
// index, in-sample risk, held-out risk, elapsed time) and optionally acts as
// a stopper: its criterion then participates in the halt decision. A
// Registry owns the loggers of a session, fans the per-round context out to
// every one of them, aggregates the stop decision and renders the aligned
// status table for console output.
//
// Loggers borrow their collaborators (loss evaluator, selected base learner,
// held-out data); the owning training session must outlive every logger and
// the borrowed objects are never mutated. All types are single-threaded by
// contract: the training loop drives one round at a time.
package monitor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/learner"
)

// Logger is the capability contract shared by all per-round loggers.
type Logger interface {
	// LogStep consumes the round's training context and appends exactly one
	// entry to the logger's series. It is called once per round, in
	// increasing round order, with 1-based round indices.
	LogStep(round int, response, prediction *mat.VecDense, selected learner.BaseLearner, offset, learningRate float64) error

	// ReachedStopCriteria reports whether the logger's stop predicate holds
	// for the most recent logged state. It is always false for a logger
	// that is not a stopper, and false before any step was logged.
	ReachedStopCriteria() bool

	// IsStopper reports whether this logger participates in the halt
	// decision.
	IsStopper() bool

	// LoggedData returns the full accumulated series in round order,
	// converted to float64 regardless of the internal storage type.
	LoggedData() []float64

	// ClearLoggerData empties the accumulated series. It must be called
	// before reusing a logger for a retraining pass, otherwise the new
	// rounds are appended to the previous session's series.
	ClearLoggerData()

	// PrintLoggerStatus renders the latest entry right-justified to
	// StatusWidth, so that status lines stay aligned under the header
	// across rounds.
	PrintLoggerStatus() string

	// StatusWidth returns the fixed width of this logger's status field.
	StatusWidth() int
}

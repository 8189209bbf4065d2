// Package log defines standard attribute keys for boosting training runs.
//
// Using these keys consistently makes the per-round log records of a
// training session filterable: every record of a run carries the same round,
// logger and metric keys regardless of which component emitted it.

package log

// Training context.
const (
	// RoundKey records the current boosting round (1-based).
	RoundKey = "training.round"

	// LearningRateKey records the learning rate applied in the round.
	LearningRateKey = "training.learning_rate"

	// OffsetKey records the constant offset of the model.
	OffsetKey = "training.offset"

	// LearnerIDKey identifies the base learner selected in the round
	// by its feature data identifier.
	LearnerIDKey = "training.learner_id"
)

// Monitor context.
const (
	// LoggerNameKey identifies a registered monitor logger by name.
	LoggerNameKey = "monitor.logger"

	// StopperKey marks whether a logger participates in the halt decision.
	StopperKey = "monitor.is_stopper"

	// RiskKey records an empirical risk value.
	RiskKey = "metrics.risk"

	// ElapsedKey records elapsed training time in the configured unit.
	ElapsedKey = "perf.elapsed"

	// TimeUnitKey records the unit ElapsedKey is measured in.
	TimeUnitKey = "perf.time_unit"
)

// Data shape.
const (
	// SamplesKey records the number of observations in a vector or dataset.
	SamplesKey = "data.samples"
)

// Error context.
const (
	// ErrorKey carries an error value on a record.
	ErrorKey = "error"
)

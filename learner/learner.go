// Package learner defines the base-learner contract of the boosting
// framework: the two operations the monitoring subsystem needs from the weak
// model selected in a round, plus a concrete least-squares learner used by
// tests and examples.
package learner

import (
	"gonum.org/v1/gonum/mat"
)

// BaseLearner is the view of a weak model exposed to the monitoring
// subsystem. Implementations are owned by the training session; callers
// hold non-owning references and must not mutate the learner.
type BaseLearner interface {
	// Predict returns the learner's prediction on the given feature data,
	// one value per row.
	Predict(data mat.Matrix) (*mat.VecDense, error)

	// DataIdentifier returns the identifier of the feature data this
	// learner was fitted on. Held-out data is looked up under the same
	// identifier.
	DataIdentifier() string
}

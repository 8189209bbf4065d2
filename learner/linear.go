package learner

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/pkg/errors"
)

// Linear is a least-squares base learner on a single feature block. It is
// the standard weak model of component-wise boosting: each instance is tied
// to one feature's design matrix, identified by name.
type Linear struct {
	identifier string
	coef       *mat.VecDense
}

// NewLinear creates an unfitted linear base learner for the feature data
// registered under identifier.
func NewLinear(identifier string) *Linear {
	return &Linear{identifier: identifier}
}

// Fit estimates the least-squares coefficients of target on data.
func (l *Linear) Fit(data mat.Matrix, target *mat.VecDense) error {
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return errors.Wrap(errors.ErrEmptyData, "Linear.Fit")
	}
	if target.Len() != rows {
		return errors.NewDimensionError("Linear.Fit", rows, target.Len(), 0)
	}

	var beta mat.Dense
	if err := beta.Solve(data, target); err != nil {
		return errors.Wrap(err, "Linear.Fit: least squares solve")
	}

	l.coef = mat.NewVecDense(cols, nil)
	for j := 0; j < cols; j++ {
		l.coef.SetVec(j, beta.At(j, 0))
	}
	return nil
}

// Predict implements BaseLearner. It returns data * coef.
func (l *Linear) Predict(data mat.Matrix) (*mat.VecDense, error) {
	if l.coef == nil {
		return nil, errors.NewValueError("Linear.Predict", "learner is not fitted")
	}
	rows, cols := data.Dims()
	if cols != l.coef.Len() {
		return nil, errors.NewDimensionError("Linear.Predict", l.coef.Len(), cols, 1)
	}

	out := mat.NewVecDense(rows, nil)
	out.MulVec(data, l.coef)
	return out, nil
}

// DataIdentifier implements BaseLearner.
func (l *Linear) DataIdentifier() string {
	return l.identifier
}

// Coef returns a copy of the fitted coefficients, or nil if unfitted.
func (l *Linear) Coef() *mat.VecDense {
	if l.coef == nil {
		return nil
	}
	out := mat.NewVecDense(l.coef.Len(), nil)
	out.CopyVec(l.coef)
	return out
}

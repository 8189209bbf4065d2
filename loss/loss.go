// Package loss defines the loss-evaluator contract consumed by the risk
// loggers, together with the standard evaluators for component-wise boosting.
//
// An evaluator maps a (response, prediction) pair to a vector of
// per-observation losses. Risk logging only ever consumes the mean of that
// vector, so an evaluator is free to return a single aggregated value
// instead (an AUC-style measure, for example); the mean of a length-one
// vector is the value itself.
package loss

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/pkg/errors"
)

// Loss evaluates per-observation losses for a response/prediction pair.
// Implementations must not retain or mutate their arguments.
type Loss interface {
	// ElementwiseLoss returns the per-observation losses. The result does
	// not have to match the input length; aggregated evaluators may return
	// a single value.
	ElementwiseLoss(response, prediction *mat.VecDense) ([]float64, error)
}

// Risk computes the empirical risk: the mean of the evaluator's elementwise
// loss over the given response/prediction pair.
func Risk(l Loss, response, prediction *mat.VecDense) (float64, error) {
	losses, err := l.ElementwiseLoss(response, prediction)
	if err != nil {
		return 0, err
	}
	if len(losses) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "empirical risk")
	}
	var sum float64
	for _, v := range losses {
		sum += v
	}
	return sum / float64(len(losses)), nil
}

func checkPair(op string, response, prediction *mat.VecDense) error {
	n := response.Len()
	if n == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}
	if prediction.Len() != n {
		return errors.NewDimensionError(op, n, prediction.Len(), 0)
	}
	return nil
}

// Quadratic is the squared-error loss L(y, f) = (y - f)^2.
type Quadratic struct{}

// ElementwiseLoss implements Loss.
func (Quadratic) ElementwiseLoss(response, prediction *mat.VecDense) ([]float64, error) {
	if err := checkPair("Quadratic.ElementwiseLoss", response, prediction); err != nil {
		return nil, err
	}
	n := response.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		diff := response.AtVec(i) - prediction.AtVec(i)
		out[i] = diff * diff
	}
	return out, nil
}

// Absolute is the absolute-error loss L(y, f) = |y - f|.
type Absolute struct{}

// ElementwiseLoss implements Loss.
func (Absolute) ElementwiseLoss(response, prediction *mat.VecDense) ([]float64, error) {
	if err := checkPair("Absolute.ElementwiseLoss", response, prediction); err != nil {
		return nil, err
	}
	n := response.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Abs(response.AtVec(i) - prediction.AtVec(i))
	}
	return out, nil
}

// Binomial is the binomial deviance L(y, f) = log(1 + exp(-2yf)) for
// responses coded as -1/+1.
type Binomial struct{}

// ElementwiseLoss implements Loss.
func (Binomial) ElementwiseLoss(response, prediction *mat.VecDense) ([]float64, error) {
	if err := checkPair("Binomial.ElementwiseLoss", response, prediction); err != nil {
		return nil, err
	}
	n := response.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		y := response.AtVec(i)
		if y != -1 && y != 1 {
			return nil, errors.NewValueError("Binomial.ElementwiseLoss", "response must be coded as -1/+1")
		}
		out[i] = math.Log1p(math.Exp(-2 * y * prediction.AtVec(i)))
	}
	return out, nil
}

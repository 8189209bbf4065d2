package monitor

import (
	"gonum.org/v1/gonum/mat"
)

// constantLearner is a test double for the selected base learner: it
// predicts a constant value for every row of the data it is given.
type constantLearner struct {
	id    string
	value float64
}

func (c constantLearner) Predict(data mat.Matrix) (*mat.VecDense, error) {
	rows, _ := data.Dims()
	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		out.SetVec(i, c.value)
	}
	return out, nil
}

func (c constantLearner) DataIdentifier() string { return c.id }

// scriptedLoss returns one predetermined risk value per call, regardless of
// the response/prediction pair. It lets tests drive a risk logger through an
// exact risk sequence.
type scriptedLoss struct {
	risks []float64
	calls int
}

func (s *scriptedLoss) ElementwiseLoss(_, _ *mat.VecDense) ([]float64, error) {
	v := s.risks[s.calls%len(s.risks)]
	s.calls++
	return []float64{v}, nil
}

// trainingContext bundles the per-round arguments most tests do not care
// about.
func trainingContext() (*mat.VecDense, *mat.VecDense, constantLearner) {
	response := mat.NewVecDense(2, []float64{1.0, -1.0})
	prediction := mat.NewVecDense(2, []float64{0.5, -0.5})
	return response, prediction, constantLearner{id: "x1", value: 2.0}
}

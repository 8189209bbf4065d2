package monitor

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/learner"
	"github.com/cboost-go/cboost/loss"
	"github.com/cboost-go/cboost/pkg/errors"
)

// ValidationRiskLogger tracks the empirical risk of the boosting model on
// held-out data. It maintains its own running held-out prediction: on every
// round the selected base learner's prediction on the matching held-out
// feature data is scaled by the learning rate and accumulated, exactly
// mirroring how the training loop updates the in-sample prediction.
//
// Held-out data and response are borrowed at construction and never change.
// As a stopper the logger applies the same relative-improvement criterion as
// TrainRiskLogger over its own series.
type ValidationRiskLogger struct {
	isStopper   bool
	usedLoss    loss.Loss
	epsForBreak float64

	heldOutData       map[string]mat.Matrix
	heldOutResponse   *mat.VecDense
	heldOutPrediction *mat.VecDense
	initialized       bool

	trackedRisk []float64
}

// NewValidationRiskLogger creates a ValidationRiskLogger over the given
// held-out data. Every dataset must have one row per held-out observation;
// a mismatch is a configuration error surfaced immediately.
func NewValidationRiskLogger(isStopper bool, l loss.Loss, epsForBreak float64,
	heldOutData map[string]mat.Matrix, heldOutResponse *mat.VecDense) (*ValidationRiskLogger, error) {
	n := heldOutResponse.Len()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "NewValidationRiskLogger: held-out response")
	}
	if len(heldOutData) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "NewValidationRiskLogger: held-out data")
	}
	for id, data := range heldOutData {
		rows, _ := data.Dims()
		if rows != n {
			return nil, errors.Wrapf(errors.NewDimensionError("NewValidationRiskLogger", n, rows, 0),
				"held-out data %q", id)
		}
	}

	return &ValidationRiskLogger{
		isStopper:         isStopper,
		usedLoss:          l,
		epsForBreak:       epsForBreak,
		heldOutData:       heldOutData,
		heldOutResponse:   heldOutResponse,
		heldOutPrediction: mat.NewVecDense(n, nil),
	}, nil
}

// LogStep implements Logger. The first step after construction or a clear
// initializes the running held-out prediction to the offset. A selected
// learner whose data identifier has no held-out entry is a fatal
// configuration error; the round is aborted with nothing appended.
func (l *ValidationRiskLogger) LogStep(round int, _, _ *mat.VecDense, selected learner.BaseLearner, offset, learningRate float64) error {
	if !l.initialized {
		fillVec(l.heldOutPrediction, offset)
		l.initialized = true
	}

	id := selected.DataIdentifier()
	data, ok := l.heldOutData[id]
	if !ok {
		return errors.NewIdentifierError("ValidationRiskLogger.LogStep", id, l.knownIdentifiers())
	}

	pred, err := selected.Predict(data)
	if err != nil {
		return errors.Wrapf(err, "ValidationRiskLogger.LogStep: predicting %q at round %d", id, round)
	}
	if pred.Len() != l.heldOutResponse.Len() {
		return errors.NewDimensionError("ValidationRiskLogger.LogStep", l.heldOutResponse.Len(), pred.Len(), 0)
	}

	l.heldOutPrediction.AddScaledVec(l.heldOutPrediction, learningRate, pred)

	risk, err := loss.Risk(l.usedLoss, l.heldOutResponse, l.heldOutPrediction)
	if err != nil {
		return errors.Wrapf(err, "ValidationRiskLogger.LogStep: round %d", round)
	}
	l.trackedRisk = append(l.trackedRisk, risk)
	if l.isStopper {
		warnIfDegenerate("validation_risk", round, l.trackedRisk)
	}
	return nil
}

// ReachedStopCriteria implements Logger.
func (l *ValidationRiskLogger) ReachedStopCriteria() bool {
	if !l.isStopper {
		return false
	}
	return plateauReached(l.trackedRisk, l.epsForBreak)
}

// IsStopper implements Logger.
func (l *ValidationRiskLogger) IsStopper() bool { return l.isStopper }

// LoggedData implements Logger.
func (l *ValidationRiskLogger) LoggedData() []float64 {
	out := make([]float64, len(l.trackedRisk))
	copy(out, l.trackedRisk)
	return out
}

// ClearLoggerData implements Logger. The running held-out prediction is
// zeroed and re-anchored to the offset on the next step.
func (l *ValidationRiskLogger) ClearLoggerData() {
	l.trackedRisk = nil
	l.initialized = false
	fillVec(l.heldOutPrediction, 0)
}

// PrintLoggerStatus implements Logger.
func (l *ValidationRiskLogger) PrintLoggerStatus() string {
	return riskStatus(l.trackedRisk)
}

// StatusWidth implements Logger.
func (l *ValidationRiskLogger) StatusWidth() int { return riskStatusWidth }

// HeldOutPrediction returns a copy of the running held-out prediction.
func (l *ValidationRiskLogger) HeldOutPrediction() *mat.VecDense {
	out := mat.NewVecDense(l.heldOutPrediction.Len(), nil)
	out.CopyVec(l.heldOutPrediction)
	return out
}

func (l *ValidationRiskLogger) knownIdentifiers() []string {
	known := make([]string, 0, len(l.heldOutData))
	for id := range l.heldOutData {
		known = append(known, id)
	}
	sort.Strings(known)
	return known
}

func fillVec(v *mat.VecDense, value float64) {
	for i := 0; i < v.Len(); i++ {
		v.SetVec(i, value)
	}
}

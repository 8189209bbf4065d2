package monitor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/learner"
	"github.com/cboost-go/cboost/loss"
	"github.com/cboost-go/cboost/pkg/errors"
)

// TrainRiskLogger tracks the in-sample empirical risk of the boosting model
// and, as a stopper, halts training when the relative risk improvement
// between consecutive rounds falls to epsForBreak or below.
//
// The loss evaluator is borrowed and may differ from the loss driving the
// optimization; only the mean of its elementwise loss is tracked.
type TrainRiskLogger struct {
	isStopper   bool
	usedLoss    loss.Loss
	epsForBreak float64
	trackedRisk []float64
}

// NewTrainRiskLogger creates a TrainRiskLogger evaluating risk with l.
func NewTrainRiskLogger(isStopper bool, l loss.Loss, epsForBreak float64) *TrainRiskLogger {
	return &TrainRiskLogger{
		isStopper:   isStopper,
		usedLoss:    l,
		epsForBreak: epsForBreak,
	}
}

// LogStep implements Logger. The empirical risk of the current prediction on
// the full training response is appended; for round 0 the caller passes the
// offset-only prediction.
func (l *TrainRiskLogger) LogStep(round int, response, prediction *mat.VecDense, _ learner.BaseLearner, _, _ float64) error {
	risk, err := loss.Risk(l.usedLoss, response, prediction)
	if err != nil {
		return errors.Wrapf(err, "TrainRiskLogger.LogStep: round %d", round)
	}
	l.trackedRisk = append(l.trackedRisk, risk)
	if l.isStopper {
		warnIfDegenerate("train_risk", round, l.trackedRisk)
	}
	return nil
}

// ReachedStopCriteria implements Logger. See plateauReached for the
// relative-improvement criterion.
func (l *TrainRiskLogger) ReachedStopCriteria() bool {
	if !l.isStopper {
		return false
	}
	return plateauReached(l.trackedRisk, l.epsForBreak)
}

// IsStopper implements Logger.
func (l *TrainRiskLogger) IsStopper() bool { return l.isStopper }

// LoggedData implements Logger.
func (l *TrainRiskLogger) LoggedData() []float64 {
	out := make([]float64, len(l.trackedRisk))
	copy(out, l.trackedRisk)
	return out
}

// ClearLoggerData implements Logger.
func (l *TrainRiskLogger) ClearLoggerData() {
	l.trackedRisk = nil
}

// PrintLoggerStatus implements Logger.
func (l *TrainRiskLogger) PrintLoggerStatus() string {
	return riskStatus(l.trackedRisk)
}

// StatusWidth implements Logger.
func (l *TrainRiskLogger) StatusWidth() int { return riskStatusWidth }

package monitor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/learner"
)

// IterationLogger records the round index of every step and, as a stopper,
// halts training once a fixed iteration budget is exhausted.
type IterationLogger struct {
	isStopper     bool
	maxIterations int
	iterations    []int
}

// NewIterationLogger creates an IterationLogger with the given budget.
func NewIterationLogger(isStopper bool, maxIterations int) *IterationLogger {
	return &IterationLogger{
		isStopper:     isStopper,
		maxIterations: maxIterations,
	}
}

// LogStep implements Logger. Only the round index is consumed.
func (l *IterationLogger) LogStep(round int, _, _ *mat.VecDense, _ learner.BaseLearner, _, _ float64) error {
	l.iterations = append(l.iterations, round)
	return nil
}

// ReachedStopCriteria implements Logger. The criterion holds once the latest
// round reaches the budget.
func (l *IterationLogger) ReachedStopCriteria() bool {
	if !l.isStopper || len(l.iterations) == 0 {
		return false
	}
	return l.iterations[len(l.iterations)-1] >= l.maxIterations
}

// IsStopper implements Logger.
func (l *IterationLogger) IsStopper() bool { return l.isStopper }

// LoggedData implements Logger. The integer series is cast to float64 so all
// logger series share one numeric representation in the combined table.
func (l *IterationLogger) LoggedData() []float64 {
	out := make([]float64, len(l.iterations))
	for i, v := range l.iterations {
		out[i] = float64(v)
	}
	return out
}

// ClearLoggerData implements Logger.
func (l *IterationLogger) ClearLoggerData() {
	l.iterations = nil
}

// PrintLoggerStatus implements Logger. The field reads "<round>/<max>".
func (l *IterationLogger) PrintLoggerStatus() string {
	if len(l.iterations) == 0 {
		return fmt.Sprintf("%*s", l.StatusWidth(), "-")
	}
	cell := fmt.Sprintf("%d/%d", l.iterations[len(l.iterations)-1], l.maxIterations)
	return fmt.Sprintf("%*s", l.StatusWidth(), cell)
}

// StatusWidth implements Logger. Wide enough for "<max>/<max>".
func (l *IterationLogger) StatusWidth() int {
	digits := len(fmt.Sprintf("%d", l.maxIterations))
	return 2*digits + 1
}

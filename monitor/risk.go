package monitor

import (
	"fmt"
	"math"

	"github.com/cboost-go/cboost/pkg/errors"
)

// riskStatusWidth is the fixed status-field width shared by the risk and
// time loggers.
const riskStatusWidth = 17

// plateauReached evaluates the relative-improvement stop criterion over the
// last two entries of a risk series:
//
//	eps_m = (risk[m-1] - risk[m]) / risk[m-1]
//
// The criterion holds when eps_m <= epsForBreak. With fewer than two entries
// it never holds. A previous risk that is not a positive finite number makes
// the ratio meaningless; the criterion is then treated as not reached.
func plateauReached(series []float64, epsForBreak float64) bool {
	n := len(series)
	if n < 2 {
		return false
	}
	prev := series[n-2]
	if !positiveFinite(prev) {
		return false
	}
	return (prev-series[n-1])/prev <= epsForBreak
}

// warnIfDegenerate emits a DegenerateRiskWarning when the entry the next
// stop query will divide by cannot serve as a denominator. Called from
// LogStep so the warning surfaces once per affected round.
func warnIfDegenerate(loggerName string, round int, series []float64) {
	n := len(series)
	if n < 2 {
		return
	}
	if prev := series[n-2]; !positiveFinite(prev) {
		errors.Warn(errors.NewDegenerateRiskWarning(loggerName, round, prev))
	}
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// riskStatus renders the latest risk entry in the shared fixed-width format.
func riskStatus(series []float64) string {
	if len(series) == 0 {
		return fmt.Sprintf("%*s", riskStatusWidth, "-")
	}
	return fmt.Sprintf("%*.2f", riskStatusWidth, series[len(series)-1])
}

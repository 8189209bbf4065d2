package monitor

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/learner"
	"github.com/cboost-go/cboost/pkg/errors"
)

// TimeUnit is the granularity the time logger measures elapsed time in.
type TimeUnit int

// Supported time units.
const (
	Seconds TimeUnit = iota
	Minutes
	Microseconds
)

// ParseTimeUnit maps a unit name onto a TimeUnit. Anything outside the
// closed set {"seconds", "minutes", "microseconds"} fails with a
// configuration error.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch s {
	case "seconds":
		return Seconds, nil
	case "minutes":
		return Minutes, nil
	case "microseconds":
		return Microseconds, nil
	default:
		return 0, errors.NewValidationError("time_unit",
			"must be one of 'seconds', 'minutes' or 'microseconds'", s)
	}
}

// String returns the unit name accepted by ParseTimeUnit.
func (u TimeUnit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Microseconds:
		return "microseconds"
	default:
		return "unknown"
	}
}

func (u TimeUnit) truncate(d time.Duration) int64 {
	switch u {
	case Minutes:
		return int64(d / time.Minute)
	case Microseconds:
		return int64(d / time.Microsecond)
	default:
		return int64(d / time.Second)
	}
}

// TimeLogger tracks the wall-clock time elapsed since its first step and, as
// a stopper, halts training once a time budget is spent. The budget is only
// checked at round boundaries; a round in flight is never interrupted.
type TimeLogger struct {
	isStopper bool
	maxTime   uint
	unit      TimeUnit
	clock     Clock

	started bool
	start   time.Time
	elapsed []int64
}

// TimeLoggerOption configures a TimeLogger beyond its mandatory parameters.
type TimeLoggerOption func(*TimeLogger)

// WithClock injects the clock the logger reads elapsed time from. Defaults
// to SystemClock.
func WithClock(c Clock) TimeLoggerOption {
	return func(l *TimeLogger) { l.clock = c }
}

// NewTimeLogger creates a TimeLogger with the given budget, expressed in
// timeUnit. An unrecognized unit fails construction.
func NewTimeLogger(isStopper bool, maxTime uint, timeUnit string, opts ...TimeLoggerOption) (*TimeLogger, error) {
	unit, err := ParseTimeUnit(timeUnit)
	if err != nil {
		return nil, err
	}

	l := &TimeLogger{
		isStopper: isStopper,
		maxTime:   maxTime,
		unit:      unit,
		clock:     SystemClock,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// LogStep implements Logger. The first call anchors the start instant; every
// call appends the elapsed time since that anchor, truncated to whole units.
func (l *TimeLogger) LogStep(_ int, _, _ *mat.VecDense, _ learner.BaseLearner, _, _ float64) error {
	now := l.clock.Now()
	if !l.started {
		l.start = now
		l.started = true
	}
	l.elapsed = append(l.elapsed, l.unit.truncate(now.Sub(l.start)))
	return nil
}

// ReachedStopCriteria implements Logger. The criterion holds once the latest
// elapsed sample reaches the budget.
func (l *TimeLogger) ReachedStopCriteria() bool {
	if !l.isStopper || len(l.elapsed) == 0 {
		return false
	}
	return l.elapsed[len(l.elapsed)-1] >= int64(l.maxTime)
}

// IsStopper implements Logger.
func (l *TimeLogger) IsStopper() bool { return l.isStopper }

// LoggedData implements Logger. The integer series is cast to float64 so all
// logger series share one numeric representation in the combined table.
func (l *TimeLogger) LoggedData() []float64 {
	out := make([]float64, len(l.elapsed))
	for i, v := range l.elapsed {
		out[i] = float64(v)
	}
	return out
}

// ClearLoggerData implements Logger. The start anchor is forgotten, so the
// next step re-anchors elapsed time to zero.
func (l *TimeLogger) ClearLoggerData() {
	l.elapsed = nil
	l.started = false
}

// PrintLoggerStatus implements Logger.
func (l *TimeLogger) PrintLoggerStatus() string {
	if len(l.elapsed) == 0 {
		return fmt.Sprintf("%*s", l.StatusWidth(), "-")
	}
	return fmt.Sprintf("%*.2f", l.StatusWidth(), float64(l.elapsed[len(l.elapsed)-1]))
}

// StatusWidth implements Logger.
func (l *TimeLogger) StatusWidth() int { return riskStatusWidth }

// Unit returns the configured time unit.
func (l *TimeLogger) Unit() TimeUnit { return l.unit }

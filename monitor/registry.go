package monitor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/learner"
	"github.com/cboost-go/cboost/pkg/errors"
	cblog "github.com/cboost-go/cboost/pkg/log"
)

// statusSeparator joins the per-logger fields of a status line. Header and
// line use the same separator so columns stay aligned.
const statusSeparator = "   "

// Registry owns the named loggers of a training session in insertion order.
// Once per round the training loop hands it the round context; the registry
// fans the call out to every logger, aggregates the stop decision over the
// stoppers and renders the combined status line and log table.
type Registry struct {
	names   []string
	entries map[string]Logger
	log     cblog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogLogger injects the structured logger the registry reports round
// summaries and stop events to. Defaults to the package-level logger.
func WithLogLogger(l cblog.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]Logger),
		log:     cblog.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a logger under the given name. Names must be unique; the
// insertion order determines the column order of status lines and tables.
func (r *Registry) Register(name string, l Logger) error {
	if name == "" {
		return errors.NewValidationError("name", "logger name must not be empty", name)
	}
	if _, exists := r.entries[name]; exists {
		return errors.NewValidationError("name", "logger name already registered", name)
	}
	r.names = append(r.names, name)
	r.entries[name] = l
	return nil
}

// Names returns the registered logger names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered loggers.
func (r *Registry) Len() int { return len(r.names) }

// LogCurrentStep fans the round context out to every logger in insertion
// order. The first failing logger aborts the round; the error names it. A
// failed round leaves the earlier loggers' series one entry ahead, which is
// why the caller must treat the error as fatal for the training run.
func (r *Registry) LogCurrentStep(round int, response, prediction *mat.VecDense,
	selected learner.BaseLearner, offset, learningRate float64) (err error) {
	// Loggers call into borrowed loss evaluators and base learners; a panic
	// there aborts the run as an error, not the process.
	defer errors.Recover(&err, "Registry.LogCurrentStep")

	for _, name := range r.names {
		if err := r.entries[name].LogStep(round, response, prediction, selected, offset, learningRate); err != nil {
			r.log.Error("logging round failed", err,
				cblog.LoggerNameKey, name,
				cblog.RoundKey, round,
			)
			return errors.Wrapf(err, "logger %q", name)
		}
	}
	r.log.Debug("round logged",
		cblog.RoundKey, round,
		cblog.LearnerIDKey, selected.DataIdentifier(),
		cblog.LearningRateKey, learningRate,
	)
	return nil
}

// ShouldStop reports whether any stopper's criterion is reached. With no
// stopper registered training never halts through this subsystem.
func (r *Registry) ShouldStop() bool {
	stop := false
	for _, name := range r.names {
		l := r.entries[name]
		if !l.IsStopper() || !l.ReachedStopCriteria() {
			continue
		}
		stop = true
		r.log.Info("stop criterion reached",
			cblog.LoggerNameKey, name,
		)
	}
	return stop
}

// PrintStatusLine renders the latest entry of every logger into one aligned
// line, columns in insertion order.
func (r *Registry) PrintStatusLine() string {
	fields := make([]string, 0, len(r.names))
	for _, name := range r.names {
		fields = append(fields, r.entries[name].PrintLoggerStatus())
	}
	return strings.Join(fields, statusSeparator)
}

// StatusHeader renders the matching header: each logger's name padded to its
// status width. Lines printed under this header align column by column.
func (r *Registry) StatusHeader() string {
	fields := make([]string, 0, len(r.names))
	for _, name := range r.names {
		fields = append(fields, fmt.Sprintf("%*s", r.entries[name].StatusWidth(), name))
	}
	return strings.Join(fields, statusSeparator)
}

// LogTable is the combined export of all logger series: one named column per
// logger in insertion order, one row per completed round.
type LogTable struct {
	Names []string
	Data  *mat.Dense
}

// Column returns the series logged under name, or an error if the name is
// unknown.
func (t *LogTable) Column(name string) ([]float64, error) {
	for j, n := range t.Names {
		if n == name {
			rows, _ := t.Data.Dims()
			out := make([]float64, rows)
			mat.Col(out, j, t.Data)
			return out, nil
		}
	}
	return nil, errors.NewIdentifierError("LogTable.Column", name, t.Names)
}

// LoggedTable assembles the combined table. Every series must have the same
// length, equal to the number of completed rounds; a mismatch means the
// loggers were driven inconsistently and assembly fails.
func (r *Registry) LoggedTable() (*LogTable, error) {
	if len(r.names) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Registry.LoggedTable")
	}

	series := make([][]float64, len(r.names))
	rounds := -1
	for i, name := range r.names {
		series[i] = r.entries[name].LoggedData()
		if rounds == -1 {
			rounds = len(series[i])
			continue
		}
		if len(series[i]) != rounds {
			return nil, errors.Wrapf(
				errors.NewDimensionError("Registry.LoggedTable", rounds, len(series[i]), 0),
				"logger %q", name)
		}
	}
	if rounds == 0 {
		return nil, errors.Wrap(errors.ErrNotLogged, "Registry.LoggedTable")
	}

	data := mat.NewDense(rounds, len(r.names), nil)
	for j, col := range series {
		for i, v := range col {
			data.Set(i, j, v)
		}
	}
	return &LogTable{Names: r.Names(), Data: data}, nil
}

// ClearLoggerData clears every registered logger. Must be called before a
// retraining pass that reuses this registry.
func (r *Registry) ClearLoggerData() {
	for _, name := range r.names {
		r.entries[name].ClearLoggerData()
	}
}

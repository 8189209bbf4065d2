package monitor

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cboost-go/cboost/loss"
	"github.com/cboost-go/cboost/pkg/errors"
)

func singleObservationLogger(t *testing.T, isStopper bool, eps float64) *ValidationRiskLogger {
	t.Helper()
	heldOutData := map[string]mat.Matrix{
		"x1": mat.NewDense(1, 1, []float64{1.0}),
	}
	heldOutResponse := mat.NewVecDense(1, []float64{1.0})
	l, err := NewValidationRiskLogger(isStopper, loss.Quadratic{}, eps, heldOutData, heldOutResponse)
	if err != nil {
		t.Fatalf("NewValidationRiskLogger failed: %v", err)
	}
	return l
}

func TestValidationRiskLoggerAccumulatesPrediction(t *testing.T) {
	response, prediction, _ := trainingContext()
	l := singleObservationLogger(t, false, 0.01)
	sel := constantLearner{id: "x1", value: 2.0}

	// offset 0, learning rate 0.1, per-round held-out prediction 2.0:
	// running prediction 0.2, 0.4, 0.6.
	wantPred := []float64{0.2, 0.4, 0.6}
	for round := 1; round <= 3; round++ {
		if err := l.LogStep(round, response, prediction, sel, 0.0, 0.1); err != nil {
			t.Fatalf("LogStep(%d) failed: %v", round, err)
		}
		got := l.HeldOutPrediction().AtVec(0)
		if math.Abs(got-wantPred[round-1]) > 1e-12 {
			t.Errorf("after round %d: held-out prediction = %g, want %g", round, got, wantPred[round-1])
		}
	}

	// Quadratic risk against response 1.0: (1-0.2)^2, (1-0.4)^2, (1-0.6)^2.
	wantRisk := []float64{0.64, 0.36, 0.16}
	data := l.LoggedData()
	if len(data) != 3 {
		t.Fatalf("LoggedData length = %d, want 3", len(data))
	}
	for i, want := range wantRisk {
		if math.Abs(data[i]-want) > 1e-12 {
			t.Errorf("risk[%d] = %g, want %g", i, data[i], want)
		}
	}
}

func TestValidationRiskLoggerOffsetInitialization(t *testing.T) {
	response, prediction, _ := trainingContext()
	l := singleObservationLogger(t, false, 0.01)
	sel := constantLearner{id: "x1", value: 1.0}

	// First step fills the running prediction with the offset before
	// accumulating: 2.0 + 0.1*1.0 = 2.1.
	if err := l.LogStep(1, response, prediction, sel, 2.0, 0.1); err != nil {
		t.Fatalf("LogStep failed: %v", err)
	}
	got := l.HeldOutPrediction().AtVec(0)
	if math.Abs(got-2.1) > 1e-12 {
		t.Errorf("held-out prediction = %g, want 2.1", got)
	}
}

func TestValidationRiskLoggerUnknownIdentifier(t *testing.T) {
	response, prediction, _ := trainingContext()
	l := singleObservationLogger(t, false, 0.01)
	sel := constantLearner{id: "x9", value: 1.0}

	err := l.LogStep(1, response, prediction, sel, 0.0, 0.1)
	var idErr *errors.IdentifierError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected IdentifierError, got %v", err)
	}
	if idErr.Identifier != "x9" {
		t.Errorf("Identifier = %q, want %q", idErr.Identifier, "x9")
	}
	// All-or-nothing: the failed round must not have appended anything.
	if got := len(l.LoggedData()); got != 0 {
		t.Errorf("LoggedData length after failed round = %d, want 0", got)
	}
}

func TestValidationRiskLoggerPlateauStop(t *testing.T) {
	response, prediction, _ := trainingContext()

	// Response 1.0, offset 0, learning rate 0.1, constant prediction 2.0:
	// risks 0.64 and 0.36, a relative improvement of 0.4375. With eps 0.45
	// the plateau criterion fires at round 2.
	l := singleObservationLogger(t, true, 0.45)
	sel := constantLearner{id: "x1", value: 2.0}

	if err := l.LogStep(1, response, prediction, sel, 0.0, 0.1); err != nil {
		t.Fatalf("LogStep(1) failed: %v", err)
	}
	if l.ReachedStopCriteria() {
		t.Error("must not stop with a single risk entry")
	}

	if err := l.LogStep(2, response, prediction, sel, 0.0, 0.1); err != nil {
		t.Fatalf("LogStep(2) failed: %v", err)
	}
	if !l.ReachedStopCriteria() {
		t.Error("relative improvement 0.4375 must trigger eps 0.45")
	}
}

func TestValidationRiskLoggerClearReanchors(t *testing.T) {
	response, prediction, _ := trainingContext()
	l := singleObservationLogger(t, true, 0.9)
	sel := constantLearner{id: "x1", value: 2.0}

	for round := 1; round <= 2; round++ {
		if err := l.LogStep(round, response, prediction, sel, 0.0, 0.1); err != nil {
			t.Fatalf("LogStep(%d) failed: %v", round, err)
		}
	}

	l.ClearLoggerData()
	if got := len(l.LoggedData()); got != 0 {
		t.Errorf("LoggedData length after clear = %d, want 0", got)
	}
	if l.ReachedStopCriteria() {
		t.Error("stop criterion must be false after a clear")
	}
	if got := l.HeldOutPrediction().AtVec(0); got != 0 {
		t.Errorf("held-out prediction after clear = %g, want 0", got)
	}

	// The next step must re-initialize with the offset.
	if err := l.LogStep(1, response, prediction, sel, 1.0, 0.1); err != nil {
		t.Fatalf("LogStep after clear failed: %v", err)
	}
	got := l.HeldOutPrediction().AtVec(0)
	if math.Abs(got-1.2) > 1e-12 {
		t.Errorf("held-out prediction = %g, want 1.0 + 0.1*2.0 = 1.2", got)
	}
}

func TestNewValidationRiskLoggerValidation(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]mat.Matrix
		response *mat.VecDense
	}{
		{
			name:     "empty response",
			data:     map[string]mat.Matrix{"x1": mat.NewDense(1, 1, []float64{1})},
			response: &mat.VecDense{},
		},
		{
			name:     "no held-out data",
			data:     map[string]mat.Matrix{},
			response: mat.NewVecDense(1, []float64{1}),
		},
		{
			name:     "row count mismatch",
			data:     map[string]mat.Matrix{"x1": mat.NewDense(3, 1, []float64{1, 2, 3})},
			response: mat.NewVecDense(2, []float64{1, 2}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewValidationRiskLogger(false, loss.Quadratic{}, 0.01, tt.data, tt.response); err == nil {
				t.Fatal("expected construction to fail")
			}
		})
	}
}

func TestValidationRiskLoggerStatusWidth(t *testing.T) {
	l := singleObservationLogger(t, false, 0.01)
	if got := l.StatusWidth(); got != 17 {
		t.Errorf("StatusWidth = %d, want 17", got)
	}
	if got := len(l.PrintLoggerStatus()); got != 17 {
		t.Errorf("status length = %d, want 17", got)
	}
}

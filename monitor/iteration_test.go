package monitor

import (
	"testing"
)

func TestIterationLoggerAppendsEveryRound(t *testing.T) {
	response, prediction, sel := trainingContext()
	l := NewIterationLogger(false, 100)

	for round := 1; round <= 7; round++ {
		if err := l.LogStep(round, response, prediction, sel, 0, 0.05); err != nil {
			t.Fatalf("LogStep(%d) failed: %v", round, err)
		}
	}

	data := l.LoggedData()
	if len(data) != 7 {
		t.Fatalf("LoggedData length = %d, want 7", len(data))
	}
	for i, v := range data {
		if v != float64(i+1) {
			t.Errorf("data[%d] = %g, want %d", i, v, i+1)
		}
	}
}

func TestIterationLoggerStopAtBudget(t *testing.T) {
	response, prediction, sel := trainingContext()
	l := NewIterationLogger(true, 5)

	if l.ReachedStopCriteria() {
		t.Error("stop criterion must be false before any step")
	}

	for round := 1; round <= 5; round++ {
		if err := l.LogStep(round, response, prediction, sel, 0, 0.05); err != nil {
			t.Fatalf("LogStep(%d) failed: %v", round, err)
		}
		want := round >= 5
		if got := l.ReachedStopCriteria(); got != want {
			t.Errorf("after round %d: ReachedStopCriteria = %v, want %v", round, got, want)
		}
	}
}

func TestIterationLoggerNonStopperNeverStops(t *testing.T) {
	response, prediction, sel := trainingContext()
	l := NewIterationLogger(false, 2)

	for round := 1; round <= 10; round++ {
		if err := l.LogStep(round, response, prediction, sel, 0, 0.05); err != nil {
			t.Fatalf("LogStep(%d) failed: %v", round, err)
		}
	}
	if l.ReachedStopCriteria() {
		t.Error("a non-stopper must never report its criterion as reached")
	}
}

func TestIterationLoggerClear(t *testing.T) {
	response, prediction, sel := trainingContext()
	l := NewIterationLogger(true, 3)

	for round := 1; round <= 3; round++ {
		if err := l.LogStep(round, response, prediction, sel, 0, 0.05); err != nil {
			t.Fatalf("LogStep(%d) failed: %v", round, err)
		}
	}
	if !l.ReachedStopCriteria() {
		t.Fatal("criterion should be reached at the budget")
	}

	l.ClearLoggerData()
	if got := len(l.LoggedData()); got != 0 {
		t.Errorf("LoggedData length after clear = %d, want 0", got)
	}
	if l.ReachedStopCriteria() {
		t.Error("stop criterion must be false after a clear")
	}
}

func TestIterationLoggerStatus(t *testing.T) {
	response, prediction, sel := trainingContext()

	tests := []struct {
		name          string
		maxIterations int
		rounds        int
		wantWidth     int
		want          string
	}{
		{name: "single digit budget", maxIterations: 5, rounds: 3, wantWidth: 3, want: "3/5"},
		{name: "three digit budget", maxIterations: 500, rounds: 42, wantWidth: 7, want: " 42/500"},
		{name: "no rounds yet", maxIterations: 20, rounds: 0, wantWidth: 5, want: "    -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewIterationLogger(true, tt.maxIterations)
			for round := 1; round <= tt.rounds; round++ {
				if err := l.LogStep(round, response, prediction, sel, 0, 0.05); err != nil {
					t.Fatalf("LogStep(%d) failed: %v", round, err)
				}
			}
			if got := l.StatusWidth(); got != tt.wantWidth {
				t.Errorf("StatusWidth = %d, want %d", got, tt.wantWidth)
			}
			if got := l.PrintLoggerStatus(); got != tt.want {
				t.Errorf("PrintLoggerStatus = %q, want %q", got, tt.want)
			}
			if got := len(l.PrintLoggerStatus()); got != tt.wantWidth {
				t.Errorf("status length = %d, must equal StatusWidth %d", got, tt.wantWidth)
			}
		})
	}
}

package services

import "testing"

func TestEvaluateBudget(t *testing.T) {
	tests := []struct {
		name          string
		grandTotal    float64
		nte           float64
		wantRemaining float64
		wantOver      bool
	}{
		{"under budget", 859, 1000, 141, false},
		{"exactly at budget", 1000, 1000, 0, false},
		{"over budget", 1200, 1000, -200, true},
		{"no ceiling configured", 5000, 0, -5000, false},
		{"no ceiling with zero spend", 0, 0, 0, false},
		{"zero spend with ceiling", 0, 500, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateBudget(tt.grandTotal, tt.nte)
			if got.Remaining != tt.wantRemaining {
				t.Errorf("remaining = %v, want %v", got.Remaining, tt.wantRemaining)
			}
			if got.IsOverBudget != tt.wantOver {
				t.Errorf("isOverBudget = %v, want %v", got.IsOverBudget, tt.wantOver)
			}
		})
	}
}

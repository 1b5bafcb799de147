package rag

import "testing"

func TestShouldExit(t *testing.T) {
	tests := []struct {
		name      string
		distances []float64
		threshold float64
		want      bool
	}{
		{"empty candidate list exits", nil, 1.5, true},
		{"all candidates beyond threshold", []float64{1.6, 2.0, 1.9}, 1.5, true},
		{"one candidate within threshold", []float64{0.3, 0.6, 1.9}, 1.5, false},
		{"candidate exactly at threshold stays", []float64{1.5}, 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldExit(candidateSet(tt.distances...), tt.threshold); got != tt.want {
				t.Errorf("shouldExit(%v, %v) = %v, want %v", tt.distances, tt.threshold, got, tt.want)
			}
		})
	}
}

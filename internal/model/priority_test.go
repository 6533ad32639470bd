package model

import "testing"

func TestPriorityForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  Priority
	}{
		{name: "zero is critical", score: 0, want: PriorityCritical},
		{name: "just below critical boundary", score: 19.99, want: PriorityCritical},
		{name: "critical boundary is high", score: 20, want: PriorityHigh},
		{name: "mid high band", score: 35, want: PriorityHigh},
		{name: "high boundary is medium", score: 40, want: PriorityMedium},
		{name: "mid medium band", score: 59.5, want: PriorityMedium},
		{name: "medium boundary is low", score: 60, want: PriorityLow},
		{name: "just below great boundary", score: 79.99, want: PriorityLow},
		{name: "great boundary", score: 80, want: PriorityDoingGreat},
		{name: "perfect score", score: 100, want: PriorityDoingGreat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PriorityForScore(tt.score); got != tt.want {
				t.Errorf("PriorityForScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestPriorityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		priority Priority
		want     string
	}{
		{name: "critical", priority: PriorityCritical, want: "CRITICAL"},
		{name: "high", priority: PriorityHigh, want: "HIGH"},
		{name: "medium", priority: PriorityMedium, want: "MEDIUM"},
		{name: "low", priority: PriorityLow, want: "LOW"},
		{name: "doing great", priority: PriorityDoingGreat, want: "DOING GREAT"},
		{name: "unknown value", priority: Priority(99), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.priority.String(); got != tt.want {
				t.Errorf("Priority.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPriorityMarshalText(t *testing.T) {
	t.Parallel()

	got, err := PriorityCritical.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(got) != "CRITICAL" {
		t.Errorf("MarshalText() = %q, want %q", got, "CRITICAL")
	}
}

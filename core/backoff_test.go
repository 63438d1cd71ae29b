package core

import (
	"testing"
	"time"
)

func TestExponentialBackoff_DoublesPerAttempt(t *testing.T) {
	scheduler := ExponentialBackoff{}

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 2 * time.Second},
		{attempt: 1, want: 2 * time.Second},
		{attempt: 2, want: 4 * time.Second},
		{attempt: 3, want: 8 * time.Second},
		{attempt: 4, want: 16 * time.Second},
	}
	for _, tc := range cases {
		if got := scheduler.NextDelay(tc.attempt); got != tc.want {
			t.Fatalf("attempt %d: expected %s, got %s", tc.attempt, tc.want, got)
		}
	}
}

func TestExponentialBackoff_RespectsMax(t *testing.T) {
	scheduler := ExponentialBackoff{Base: time.Second, Max: 3 * time.Second}
	if got := scheduler.NextDelay(5); got != 3*time.Second {
		t.Fatalf("expected capped delay of 3s, got %s", got)
	}
}

func TestExponentialBackoff_CustomBase(t *testing.T) {
	scheduler := ExponentialBackoff{Base: 500 * time.Millisecond}
	if got := scheduler.NextDelay(1); got != time.Second {
		t.Fatalf("expected 1s, got %s", got)
	}
	if got := scheduler.NextDelay(3); got != 4*time.Second {
		t.Fatalf("expected 4s, got %s", got)
	}
}

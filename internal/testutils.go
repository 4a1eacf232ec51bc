package internal

import (
	"errors"
	"testing"
	"time"
)

// AssertNoError checks for the non-existence of an error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertErrorIs checks that err wraps target.
// It is safe to call from the goroutine started by Within.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()

	if err == nil {
		t.Errorf("Expected error %q, but got nil", target)
		return
	}
	if !errors.Is(err, target) {
		t.Errorf("Expected error %q, but got %q", target, err)
	}
}

// Within fails the test if assert does not return within d
func Within(t *testing.T, d time.Duration, assert func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		assert()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Error("timed out")
	case <-done:
	}
}

package kick

import (
	"math"
	"testing"
)

func assert[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if got != want {
		t.Fatalf("assertion failed: got = %v want %v", got, want)
	}
}

func assertNear(t *testing.T, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf("assertion failed: got = %v want %v (±%v)", got, want, tol)
	}
}

func makefill[T any](size int, v T) []T {
	s := make([]T, size)
	for i := range s {
		s[i] = v
	}
	return s
}

func allEqual[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x != v {
			return false
		}
	}
	return true
}

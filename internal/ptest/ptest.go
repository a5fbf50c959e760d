// Package ptest includes internal utilities shared by piecetable's tests.
package ptest

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Lengther is satisfied by any sequence that can report its own length.
type Lengther interface {
	Len() int
}

// Aller is the subset of *piecetable.Table used by CheckContents.
type Aller[T any] interface {
	Lengther
	All() iter.Seq[T]
}

// CheckContents verifies that s contains the elements of want, in order, as
// reported by both All and Len, and reports any mismatch to t.
func CheckContents[T any](t *testing.T, s Aller[T], want []T) {
	t.Helper()
	var got []T
	for v := range s.All() {
		got = append(got, v)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Wrong contents (-want, +got):\n%s", diff)
	}
	if n := s.Len(); n != len(got) || n != len(want) {
		t.Errorf("Wrong length: got %d, want %d == %d", n, len(got), len(want))
	}
}

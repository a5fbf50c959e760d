// Package piecetable implements a piece table, a sequence container
// specialized for large buffers undergoing many localized edits.
//
// A piece table represents its logical sequence as an ordered list of
// descriptors ("pieces") that each name a contiguous run of elements in one
// of two underlying buffers: an original buffer, fixed at construction, and
// an add buffer, to which every inserted element is appended. Insertion and
// deletion never move or copy existing buffer contents; they only adjust,
// split, or splice piece descriptors, plus an edit cache that fast-paths
// the common case of several edits landing at adjacent positions (typical
// of interactive text editing).
//
// A *Table is not safe for concurrent use without external synchronization.
package piecetable

import "github.com/astahfrom/piecetable/value"

// Table is an editable sequence of T built from an immutable original
// buffer and an append-only add buffer, addressed through an ordered list
// of piece descriptors. A zero Table is ready for use as an empty table;
// [New] is only needed to seed one with initial content.
type Table[T any] struct {
	original []T
	add      []T
	pieces   []piece
	size     int // cache of the sum of all piece lengths

	cache editCache
}

// New constructs a new table whose initial logical sequence is initial.
// The contents of initial are copied once into the table's original
// buffer; later changes to initial do not affect the table.
func New[T any](initial []T) *Table[T] {
	t := &Table[T]{
		original: append([]T(nil), initial...),
		size:     len(initial),
	}
	if len(initial) != 0 {
		t.pieces = []piece{{tag: tagOriginal, start: 0, length: len(initial)}}
	}
	return t
}

// Len reports the number of elements currently in the table. This is a
// constant-time query.
func (t *Table[T]) Len() int { return t.size }

// IsEmpty reports whether t is empty.
func (t *Table[T]) IsEmpty() bool { return t.size == 0 }

// Get returns the element at logical index, or [value.Absent] if index is
// out of range. Get fails soft: an out-of-range index is not a programming
// error the way an out-of-range Insert or Remove is, so Get never panics.
//
// Get walks the piece list linearly, accumulating piece lengths until index
// falls within the current piece; it does not consult the edit cache, since
// reads are not the clustered-edit workload the cache is tuned for.
func (t *Table[T]) Get(index int) value.Maybe[T] {
	if index < 0 || index >= t.size {
		return value.Absent[T]()
	}
	start := 0
	for _, p := range t.pieces {
		if index < start+p.length {
			return value.Just(t.buffer(p.tag)[p.start+index-start])
		}
		start += p.length
	}
	return value.Absent[T]() // unreachable if size is consistent
}

// buffer returns the storage array named by tag.
func (t *Table[T]) buffer(tag bufferTag) []T {
	if tag == tagOriginal {
		return t.original
	}
	return t.add
}

// Append inserts v at the end of the table. It is equivalent to
// Insert(t.Len(), v), but takes a dedicated fast path when the most recent
// edit was also a trailing insertion (see the package-level cache
// discussion in cache.go).
func (t *Table[T]) Append(v T) { t.Insert(t.size, v) }

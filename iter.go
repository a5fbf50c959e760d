package piecetable

import "iter"

// All returns an iterator over the elements of t in logical order, left to
// right. It is lazy: it never allocates a flat copy of the sequence, and
// visits each piece's buffer slice directly. It is restartable — calling
// All again produces a fresh traversal from the beginning — but a range
// over the iterator it returns is not required to survive a mutation of t
// made during that range; the result of doing so is unspecified, the same
// way mutating an mlink.List while holding a Cursor into it is unspecified.
func (t *Table[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range t.pieces {
			buf := t.buffer(p.tag)
			for i := 0; i < p.length; i++ {
				if !yield(buf[p.start+i]) {
					return
				}
			}
		}
	}
}

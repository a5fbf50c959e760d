package piecetable

import "slices"

// Insert places v at logical index, shifting every element at or after
// index one position later. index must satisfy 0 <= index <= t.Len();
// Insert panics otherwise.
//
// The new element is first appended to the add buffer, then the piece list
// is updated in one of three ways: an InsertAtEnd cache hit extends an
// existing piece's length in place (O(1)); otherwise a linear scan locates
// the piece covering index and either inserts a fresh one-element piece at
// a piece boundary, or splits the covering piece into two around a new
// one-element piece.
func (t *Table[T]) Insert(index int, v T) {
	if index < 0 || index > t.size {
		panic("piecetable: insert index out of range")
	}

	if t.insertFastPath(index, v) {
		return
	}

	k := len(t.add)
	t.add = append(t.add, v)
	t.insertSlow(index, k)
}

// insertFastPath attempts to extend the piece named by an InsertAtEnd
// cache entry in place, avoiding a linear scan and a piece-list splice. It
// reports whether it performed the insertion.
func (t *Table[T]) insertFastPath(index int, v T) bool {
	if t.cache.kind != cacheInsertAtEnd || !t.cacheValid() {
		return false
	}
	i := t.cache.index
	p := t.pieces[i]
	if p.tag != tagAdd {
		return false
	}
	if t.cache.start+p.length != index {
		return false // not inserting at this piece's logical tail
	}
	if p.end() != len(t.add) {
		return false // not inserting at this piece's buffer tail
	}

	t.add = append(t.add, v)
	t.pieces[i].length++
	t.size++
	// cache stays (i, start, InsertAtEnd): the piece grew, its start did not move.
	return true
}

// insertSlow locates the piece covering the logical position index and
// splices in a new one-element piece naming add-buffer offset k.
func (t *Table[T]) insertSlow(index, k int) {
	start := 0
	for i, p := range t.pieces {
		if index == start {
			t.pieces = slices.Insert(t.pieces, i, piece{tag: tagAdd, start: k, length: 1})
			t.size++
			t.cache = editCache{kind: cacheInsertAtEnd, index: i, start: start}
			return
		}
		if index < start+p.length {
			o := index - start
			t.pieces = slices.Replace(t.pieces, i, i+1,
				piece{tag: p.tag, start: p.start, length: o},
				piece{tag: tagAdd, start: k, length: 1},
				piece{tag: p.tag, start: p.start + o, length: p.length - o},
			)
			t.size++
			t.cache = editCache{kind: cacheInsertAtEnd, index: i + 1, start: start + o}
			return
		}
		start += p.length
	}

	// index == t.size: insert past the last piece.
	t.pieces = append(t.pieces, piece{tag: tagAdd, start: k, length: 1})
	t.size++
	t.cache = editCache{kind: cacheInsertAtEnd, index: len(t.pieces) - 1, start: start}
}

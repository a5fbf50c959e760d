package piecetable

import "slices"

// Remove deletes the element at logical index, shifting every later element
// one position earlier. index must satisfy 0 <= index < t.Len(); Remove
// panics otherwise.
//
// Like Insert, Remove first checks the edit cache for a RemoveLeft or
// RemoveRight hit — the common case of repeated forward deletes or
// repeated backspaces at the same logical position — before falling back
// to a linear scan that locates, and as needed splits, the covering piece.
func (t *Table[T]) Remove(index int) {
	if index < 0 || index >= t.size {
		panic("piecetable: remove index out of range")
	}

	if t.removeFastPath(index) {
		return
	}
	t.removeSlow(index)
}

// removeFastPath attempts to shrink the piece named by a RemoveLeft or
// RemoveRight cache entry in place, avoiding a linear scan. It reports
// whether it performed the removal.
func (t *Table[T]) removeFastPath(index int) bool {
	if !t.cacheValid() {
		return false
	}
	i, s := t.cache.index, t.cache.start
	p := t.pieces[i]

	switch t.cache.kind {
	case cacheRemoveRight:
		if index != s {
			return false
		}
		t.shrinkRight(i)
	case cacheRemoveLeft:
		if index != s+p.length-1 {
			return false
		}
		t.shrinkLeft(i)
	default:
		return false
	}
	t.size--
	return true
}

// shrinkRight advances piece i's start by one and shrinks its length by
// one, dropping the piece entirely if that would leave it empty.
func (t *Table[T]) shrinkRight(i int) {
	if t.pieces[i].length == 1 {
		t.pieces = slices.Delete(t.pieces, i, i+1)
		t.cache = editCache{}
		return
	}
	t.pieces[i].start++
	t.pieces[i].length--
	// index and start are unchanged; the cache remains RemoveRight.
}

// shrinkLeft shrinks piece i's length by one from the right, dropping the
// piece entirely if that would leave it empty.
func (t *Table[T]) shrinkLeft(i int) {
	if t.pieces[i].length == 1 {
		t.pieces = slices.Delete(t.pieces, i, i+1)
		t.cache = editCache{}
		return
	}
	t.pieces[i].length--
	// index and start are unchanged; the cache remains RemoveLeft.
}

// removeSlow locates the piece covering logical position index and updates
// or splits it as required.
func (t *Table[T]) removeSlow(index int) {
	start := 0
	for i, p := range t.pieces {
		if index >= start+p.length {
			start += p.length
			continue
		}

		o := index - start
		switch {
		case p.length == 1:
			t.pieces = slices.Delete(t.pieces, i, i+1)
			t.cache = editCache{}
		case o == 0:
			t.pieces[i].start++
			t.pieces[i].length--
			t.cache = editCache{kind: cacheRemoveRight, index: i, start: start}
		case o == p.length-1:
			t.pieces[i].length--
			t.cache = editCache{kind: cacheRemoveLeft, index: i, start: start}
		default:
			t.pieces = slices.Replace(t.pieces, i, i+1,
				piece{tag: p.tag, start: p.start, length: o},
				piece{tag: p.tag, start: p.start + o + 1, length: p.length - o - 1},
			)
			// The right half continues to fast-path a repeated forward delete
			// at the same logical position.
			t.cache = editCache{kind: cacheRemoveRight, index: i + 1, start: start + o}
		}
		t.size--
		return
	}
}

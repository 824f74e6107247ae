package quilt

import "unicode"

// Word deletion is a higher-level policy than character staging: it scans
// the document from the given position, classifying runes as whitespace or
// not, and removes the whole span with a single commit. Looping
// single-character stages would force a flush per discontiguity and touch
// the piece sequence O(word length) times.

// DeleteWordBackward removes the word ending at pos along with any
// whitespace between it and pos, then moves the cursor to the start of the
// removed span. At the start of the document (or on an empty document) it
// is a no-op returning success.
func (q *Quilt) DeleteWordBackward(pos int) error {
	q.FlushPending()
	if pos < 0 || pos > q.pieces.totalLength() {
		return ErrOutOfRange
	}

	start := pos
	for start > 0 && unicode.IsSpace(q.runeAt(start-1)) {
		start--
	}
	for start > 0 && !unicode.IsSpace(q.runeAt(start-1)) {
		start--
	}
	if start == pos {
		return nil
	}

	q.pieces = q.pieces.delete(start, pos-start)
	q.cursor = start
	q.reclampCursor()
	return nil
}

// DeleteWordForward removes the word starting at pos along with any
// whitespace between pos and it. The cursor stays at pos. At the end of the
// document it is a no-op returning success.
func (q *Quilt) DeleteWordForward(pos int) error {
	q.FlushPending()
	n := q.pieces.totalLength()
	if pos < 0 || pos > n {
		return ErrOutOfRange
	}

	end := pos
	for end < n && unicode.IsSpace(q.runeAt(end)) {
		end++
	}
	for end < n && !unicode.IsSpace(q.runeAt(end)) {
		end++
	}
	if end == pos {
		return nil
	}

	q.pieces = q.pieces.delete(pos, end-pos)
	q.cursor = pos
	q.reclampCursor()
	return nil
}

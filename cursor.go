package quilt

// The position tracker is a single logical offset bounded to
// [0, effective length]. Edits move it as a side effect; MoveCursor moves
// it directly. Movement is pure bookkeeping and never commits staged edits,
// so an insertion after a cursor jump surfaces as ErrDiscontinuity rather
// than a silent flush.

// MoveCursor shifts the cursor by delta, clamping to the document bounds,
// and returns the new offset.
func (q *Quilt) MoveCursor(delta int) int {
	q.cursor += delta
	q.reclampCursor()
	return q.cursor
}

// CursorPosition returns the cursor's logical offset.
func (q *Quilt) CursorPosition() int {
	return q.cursor
}

// reclampCursor bounds the cursor after any operation that may have changed
// the document length.
func (q *Quilt) reclampCursor() {
	if q.cursor < 0 {
		q.cursor = 0
	}
	if n := q.effectiveLen(); q.cursor > n {
		q.cursor = n
	}
}

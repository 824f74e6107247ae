package quilt

// pieceSource identifies which backing store a piece references.
type pieceSource int

const (
	// sourceOriginal references the immutable text loaded at Open.
	sourceOriginal pieceSource = iota

	// sourceAddition references the append-only store of inserted text.
	sourceAddition
)

// piece references one contiguous span of a backing store. Pieces are value
// objects; the stores they point into never move, so a piece stays valid for
// the life of the document. A retained piece always has length > 0.
type piece struct {
	src    pieceSource
	start  int
	length int
}

// pieceList is the ordered piece sequence. Concatenating the referenced
// spans in list order reconstructs the current document exactly. An empty
// list is a valid, zero-length document.
type pieceList []piece

// totalLength returns the logical document length: the sum of all piece
// lengths.
func (pl pieceList) totalLength() int {
	n := 0
	for _, p := range pl {
		n += p.length
	}
	return n
}

// locate maps a logical offset to the index of the piece containing it and
// the offset within that piece. An offset that lands exactly on a piece
// boundary resolves to the following piece at offset 0; the end of the
// document resolves to (len(pl), 0).
func (pl pieceList) locate(pos int) (idx, offset int) {
	cur := 0
	for i, p := range pl {
		if pos < cur+p.length {
			return i, pos - cur
		}
		cur += p.length
	}
	return len(pl), 0
}

// insert splices p into the sequence at logical offset pos. A piece
// containing pos is split into left and right remainders around p; a
// zero-length remainder is dropped, so an insertion at a piece boundary is
// a plain list insertion. Pieces after the splice point shift logically but
// their (source, start, length) triples are untouched.
func (pl pieceList) insert(pos int, p piece) pieceList {
	idx, offset := pl.locate(pos)
	if idx >= len(pl) {
		return append(pl, p)
	}

	cur := pl[idx]
	out := make(pieceList, 0, len(pl)+2)
	out = append(out, pl[:idx]...)
	if offset > 0 {
		out = append(out, piece{src: cur.src, start: cur.start, length: offset})
	}
	out = append(out, p)
	if offset < cur.length {
		out = append(out, piece{src: cur.src, start: cur.start + offset, length: cur.length - offset})
	}
	out = append(out, pl[idx+1:]...)
	return out
}

// delete removes the logical range [start, start+length). Pieces fully
// inside the range vanish; a piece partially overlapping at the head or
// tail of the range is shrunk; a piece straddling the whole range is split
// into a prefix and a suffix. The range clips to the document bounds and a
// zero-length range is a no-op. No store content is touched.
func (pl pieceList) delete(start, length int) pieceList {
	if start < 0 {
		length += start
		start = 0
	}
	total := pl.totalLength()
	if start >= total {
		return pl
	}
	if start+length > total {
		length = total - start
	}
	if length <= 0 {
		return pl
	}
	end := start + length

	startIdx, endIdx := -1, len(pl)-1
	startOffset, endOffset := 0, 0
	cur := 0
	for i, p := range pl {
		pieceEnd := cur + p.length
		if startIdx < 0 && start >= cur && start < pieceEnd {
			startIdx = i
			startOffset = start - cur
		}
		// end may land exactly on a piece boundary
		if end > cur && end <= pieceEnd {
			endIdx = i
			endOffset = end - cur
			break
		}
		cur = pieceEnd
	}
	if startIdx < 0 {
		return pl
	}

	out := make(pieceList, 0, len(pl)+1)
	out = append(out, pl[:startIdx]...)
	if startOffset > 0 {
		head := pl[startIdx]
		out = append(out, piece{src: head.src, start: head.start, length: startOffset})
	}
	if tail := pl[endIdx]; endOffset < tail.length {
		out = append(out, piece{src: tail.src, start: tail.start + endOffset, length: tail.length - endOffset})
	}
	out = append(out, pl[endIdx+1:]...)
	return out
}

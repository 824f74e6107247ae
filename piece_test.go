package quilt

import "testing"

func piecesEqual(a, b pieceList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLocate(t *testing.T) {
	pl := pieceList{
		{src: sourceOriginal, start: 0, length: 3},
		{src: sourceAddition, start: 0, length: 2},
	}

	cases := []struct {
		pos, idx, offset int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0}, // boundary resolves to the following piece
		{4, 1, 1},
		{5, 2, 0}, // end of document
	}
	for _, c := range cases {
		idx, offset := pl.locate(c.pos)
		if idx != c.idx || offset != c.offset {
			t.Errorf("locate(%d) = (%d, %d), want (%d, %d)", c.pos, idx, offset, c.idx, c.offset)
		}
	}
}

func TestInsertSplitsPiece(t *testing.T) {
	pl := pieceList{{src: sourceOriginal, start: 0, length: 11}}

	pl = pl.insert(5, piece{src: sourceAddition, start: 0, length: 10})

	want := pieceList{
		{src: sourceOriginal, start: 0, length: 5},
		{src: sourceAddition, start: 0, length: 10},
		{src: sourceOriginal, start: 5, length: 6},
	}
	if !piecesEqual(pl, want) {
		t.Errorf("after middle insert: %v, want %v", pl, want)
	}
}

func TestInsertAtBoundaries(t *testing.T) {
	pl := pieceList{{src: sourceOriginal, start: 0, length: 6}}

	pl = pl.insert(0, piece{src: sourceAddition, start: 0, length: 7})
	want := pieceList{
		{src: sourceAddition, start: 0, length: 7},
		{src: sourceOriginal, start: 0, length: 6},
	}
	if !piecesEqual(pl, want) {
		t.Fatalf("after insert at start: %v, want %v", pl, want)
	}

	pl = pl.insert(13, piece{src: sourceAddition, start: 7, length: 1})
	want = append(want, piece{src: sourceAddition, start: 7, length: 1})
	if !piecesEqual(pl, want) {
		t.Errorf("after insert at end: %v, want %v", pl, want)
	}
}

func TestInsertIntoEmptyList(t *testing.T) {
	var pl pieceList
	pl = pl.insert(0, piece{src: sourceAddition, start: 0, length: 3})
	want := pieceList{{src: sourceAddition, start: 0, length: 3}}
	if !piecesEqual(pl, want) {
		t.Errorf("insert into empty list: %v, want %v", pl, want)
	}
}

func TestRepeatedSplits(t *testing.T) {
	// Alphabet document; each insert lands inside the surviving original
	// tail and splits it again.
	pl := pieceList{{src: sourceOriginal, start: 0, length: 26}}

	pl = pl.insert(3, piece{src: sourceAddition, start: 0, length: 3})
	pl = pl.insert(9, piece{src: sourceAddition, start: 3, length: 3})
	pl = pl.insert(16, piece{src: sourceAddition, start: 6, length: 3})

	want := pieceList{
		{src: sourceOriginal, start: 0, length: 3},
		{src: sourceAddition, start: 0, length: 3},
		{src: sourceOriginal, start: 3, length: 3},
		{src: sourceAddition, start: 3, length: 3},
		{src: sourceOriginal, start: 6, length: 4},
		{src: sourceAddition, start: 6, length: 3},
		{src: sourceOriginal, start: 10, length: 16},
	}
	if !piecesEqual(pl, want) {
		t.Errorf("after three splitting inserts: %v, want %v", pl, want)
	}
	if got := pl.totalLength(); got != 35 {
		t.Errorf("totalLength() = %d, want 35", got)
	}
}

func TestDeleteWithinPiece(t *testing.T) {
	pl := pieceList{{src: sourceOriginal, start: 0, length: 10}}

	pl = pl.delete(3, 4)

	want := pieceList{
		{src: sourceOriginal, start: 0, length: 3},
		{src: sourceOriginal, start: 7, length: 3},
	}
	if !piecesEqual(pl, want) {
		t.Errorf("after interior delete: %v, want %v", pl, want)
	}
}

func TestDeleteAtPieceEdges(t *testing.T) {
	pl := pieceList{{src: sourceOriginal, start: 0, length: 10}}

	head := pl.delete(0, 4)
	if want := (pieceList{{src: sourceOriginal, start: 4, length: 6}}); !piecesEqual(head, want) {
		t.Errorf("after head delete: %v, want %v", head, want)
	}

	tail := pl.delete(6, 4)
	if want := (pieceList{{src: sourceOriginal, start: 0, length: 6}}); !piecesEqual(tail, want) {
		t.Errorf("after tail delete: %v, want %v", tail, want)
	}
}

func TestDeleteAcrossPieces(t *testing.T) {
	pl := pieceList{
		{src: sourceOriginal, start: 0, length: 2},
		{src: sourceAddition, start: 0, length: 3},
		{src: sourceOriginal, start: 2, length: 4},
		{src: sourceAddition, start: 3, length: 3},
		{src: sourceOriginal, start: 6, length: 4},
	}

	// Range [3, 11) clips the addition piece's tail, swallows the middle
	// original piece and the second addition piece whole.
	pl = pl.delete(3, 8)

	want := pieceList{
		{src: sourceOriginal, start: 0, length: 2},
		{src: sourceAddition, start: 0, length: 1},
		{src: sourceOriginal, start: 7, length: 3},
	}
	if !piecesEqual(pl, want) {
		t.Errorf("after cross-piece delete: %v, want %v", pl, want)
	}
}

func TestDeleteEntireDocument(t *testing.T) {
	pl := pieceList{
		{src: sourceOriginal, start: 0, length: 5},
		{src: sourceAddition, start: 0, length: 5},
	}

	pl = pl.delete(0, 10)
	if len(pl) != 0 {
		t.Errorf("deleting everything left %d pieces, want 0", len(pl))
	}
	if pl.totalLength() != 0 {
		t.Errorf("totalLength() = %d, want 0", pl.totalLength())
	}
}

func TestDeleteClipsAndIgnoresEmptyRange(t *testing.T) {
	pl := pieceList{{src: sourceOriginal, start: 0, length: 5}}

	if got := pl.delete(2, 0); !piecesEqual(got, pl) {
		t.Errorf("zero-length delete changed pieces: %v", got)
	}
	if got := pl.delete(5, 3); !piecesEqual(got, pl) {
		t.Errorf("delete past end changed pieces: %v", got)
	}

	clipped := pl.delete(3, 99)
	want := pieceList{{src: sourceOriginal, start: 0, length: 3}}
	if !piecesEqual(clipped, want) {
		t.Errorf("clipped delete: %v, want %v", clipped, want)
	}
}

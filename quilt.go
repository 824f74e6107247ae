package quilt

import "strings"

// DefaultStagingCapacity is the staging buffer capacity used when Options
// leaves a threshold at zero.
const DefaultStagingCapacity = 64

// StageOutcome reports how a staged edit was absorbed.
type StageOutcome int

const (
	// Buffered means the edit sits in a staging buffer and is not yet
	// reflected in the piece sequence.
	Buffered StageOutcome = iota

	// Committed means accepting the edit forced at least one staging buffer
	// to commit into the piece sequence (a capacity threshold was reached,
	// or the edit switched kind or direction).
	Committed
)

// Options configures a document opened with Open.
type Options struct {
	// Text is the initial document content. It becomes the immutable
	// original store; an empty string opens a valid zero-length document.
	Text string

	// MaxStagedChars caps the insertion staging buffer. A buffer already
	// holding this many characters is committed before the next character
	// is accepted. Zero selects DefaultStagingCapacity.
	MaxStagedChars int

	// MaxStagedDeletions caps the deletion staging buffer the same way.
	MaxStagedDeletions int
}

// Quilt is an editable in-memory document backed by a piece table.
//
// All positions accepted and reported by a Quilt are effective logical
// offsets: offsets into the document as Text would return it, with staged
// edits applied. Reads (Text, Len) commit whichever staging buffer is
// active before answering, so a caller never observes staged and committed
// state disagreeing.
type Quilt struct {
	original []rune // immutable after Open
	added    []rune // append-only; committed insertions accumulate here
	pieces   pieceList

	inserts insertStaging
	deletes deleteStaging

	cursor int

	maxStagedChars     int
	maxStagedDeletions int
}

// Open creates a document whose original store holds options.Text.
func Open(options Options) (*Quilt, error) {
	if options.MaxStagedChars < 0 || options.MaxStagedDeletions < 0 {
		return nil, ErrInvalidCapacity
	}

	q := &Quilt{
		original:           []rune(options.Text),
		maxStagedChars:     options.MaxStagedChars,
		maxStagedDeletions: options.MaxStagedDeletions,
	}
	if q.maxStagedChars == 0 {
		q.maxStagedChars = DefaultStagingCapacity
	}
	if q.maxStagedDeletions == 0 {
		q.maxStagedDeletions = DefaultStagingCapacity
	}

	if len(q.original) > 0 {
		q.pieces = pieceList{{src: sourceOriginal, start: 0, length: len(q.original)}}
	}
	q.cursor = len(q.original)
	return q, nil
}

// InsertChar stages ch for insertion at pos. Contiguous insertions (each at
// the trailing edge of the previous one) accumulate and commit as a single
// piece. A non-contiguous position is rejected with ErrDiscontinuity and no
// state change; the caller flushes and retries the same insertion.
//
// An active deletion run is committed first, and a full insertion buffer is
// committed before the new character is accepted; both cases report
// Committed.
func (q *Quilt) InsertChar(pos int, ch rune) (StageOutcome, error) {
	if pos < 0 || (q.inserts.empty() && pos > q.effectiveLen()) {
		return Buffered, ErrOutOfRange
	}

	outcome := Buffered
	if !q.deletes.empty() {
		q.flushDeletes()
		outcome = Committed
	}
	if !q.inserts.empty() && len(q.inserts.pending) >= q.maxStagedChars && pos == q.inserts.tail() {
		q.flushInserts()
		outcome = Committed
	}

	if err := q.inserts.stage(pos, ch); err != nil {
		return Buffered, err
	}
	q.cursor = pos + 1
	return outcome, nil
}

// DeleteBackward stages removal of the character left of pos (Backspace).
// Consecutive backspaces extend one leftward run; a direction switch, a
// non-adjacent position, an active insertion buffer, or a full run commits
// before the new deletion is staged. DeleteBackward(0) is ErrOutOfRange.
func (q *Quilt) DeleteBackward(pos int) (StageOutcome, error) {
	if pos <= 0 || pos > q.effectiveLen() {
		return Buffered, ErrOutOfRange
	}

	outcome := Buffered
	if !q.inserts.empty() {
		q.flushInserts()
		outcome = Committed
	}
	if q.deletes.length >= q.maxStagedDeletions {
		q.flushDeletes()
		outcome = Committed
	}
	if !q.deletes.stageBackward(pos) {
		q.flushDeletes()
		outcome = Committed
		q.deletes.stageBackward(pos)
	}

	q.cursor = pos - 1
	return outcome, nil
}

// DeleteForward stages removal of the character at pos (Delete key),
// extending a rightward run under the same rules as DeleteBackward.
// DeleteForward at the end of the document is ErrOutOfRange.
func (q *Quilt) DeleteForward(pos int) (StageOutcome, error) {
	if pos < 0 || pos >= q.effectiveLen() {
		return Buffered, ErrOutOfRange
	}

	outcome := Buffered
	if !q.inserts.empty() {
		q.flushInserts()
		outcome = Committed
	}
	if q.deletes.length >= q.maxStagedDeletions {
		q.flushDeletes()
		outcome = Committed
	}
	if !q.deletes.stageForward(pos) {
		q.flushDeletes()
		outcome = Committed
		q.deletes.stageForward(pos)
	}

	q.cursor = pos
	return outcome, nil
}

// FlushPending commits whichever staging buffer is active. Flushing with
// nothing staged has no observable effect.
func (q *Quilt) FlushPending() {
	q.flushInserts()
	q.flushDeletes()
}

// Text commits any staged edits and returns the document content.
func (q *Quilt) Text() string {
	q.FlushPending()
	return q.materialize()
}

// Len commits any staged edits and returns the document length in runes.
func (q *Quilt) Len() int {
	q.FlushPending()
	return q.pieces.totalLength()
}

// PieceCount returns the number of pieces in the committed sequence. It
// does not flush, so it can observe batching: a contiguous typing burst
// adds one piece on commit regardless of its length.
func (q *Quilt) PieceCount() int {
	return len(q.pieces)
}

// effectiveLen is the document length with staged edits applied: what Len
// would report after a flush. At most one staging buffer is non-empty.
func (q *Quilt) effectiveLen() int {
	return q.pieces.totalLength() + len(q.inserts.pending) - q.deletes.length
}

func (q *Quilt) flushInserts() {
	if q.inserts.empty() {
		return
	}
	start := len(q.added)
	q.added = append(q.added, q.inserts.pending...)
	q.pieces = q.pieces.insert(q.inserts.anchor, piece{
		src:    sourceAddition,
		start:  start,
		length: len(q.inserts.pending),
	})
	q.inserts.clear()
	q.reclampCursor()
}

func (q *Quilt) flushDeletes() {
	if q.deletes.empty() {
		return
	}
	q.pieces = q.pieces.delete(q.deletes.start, q.deletes.length)
	q.deletes.clear()
	q.reclampCursor()
}

// runeAt reads the committed document at pos. Callers guard bounds.
func (q *Quilt) runeAt(pos int) rune {
	idx, offset := q.pieces.locate(pos)
	p := q.pieces[idx]
	if p.src == sourceOriginal {
		return q.original[p.start+offset]
	}
	return q.added[p.start+offset]
}

func (q *Quilt) materialize() string {
	var b strings.Builder
	for _, p := range q.pieces {
		if p.src == sourceOriginal {
			b.WriteString(string(q.original[p.start : p.start+p.length]))
		} else {
			b.WriteString(string(q.added[p.start : p.start+p.length]))
		}
	}
	return b.String()
}

package quilt

// insertStaging accumulates consecutive same-direction character insertions
// at a single advancing logical position, so a typing burst commits into the
// piece sequence as one piece instead of one per keystroke.
type insertStaging struct {
	// anchor is the logical offset at which pending would be spliced into
	// the document if committed right now. Only meaningful while pending is
	// non-empty.
	anchor  int
	pending []rune
}

func (s *insertStaging) empty() bool {
	return len(s.pending) == 0
}

// tail is the only position the next character may be staged at.
func (s *insertStaging) tail() int {
	return s.anchor + len(s.pending)
}

// stage appends ch at pos. An empty buffer accepts any position and anchors
// there; a non-empty buffer accepts only its trailing edge and otherwise
// reports ErrDiscontinuity without changing state.
func (s *insertStaging) stage(pos int, ch rune) error {
	if len(s.pending) == 0 {
		s.anchor = pos
	} else if pos != s.tail() {
		return ErrDiscontinuity
	}
	s.pending = append(s.pending, ch)
	return nil
}

func (s *insertStaging) clear() {
	s.anchor = 0
	s.pending = s.pending[:0]
}

package quilt

// deleteDirection distinguishes a backspace run from a delete-key run.
// A single run never mixes directions.
type deleteDirection int

const (
	deleteBackward deleteDirection = iota
	deleteForward
)

// deleteStaging marks a contiguous logical range for removal without
// applying it, so a run of backspaces or deletes commits into the piece
// sequence as one deletion. start and length are committed-document
// coordinates; the range is guaranteed in bounds at commit time because
// every staged position was validated against the effective length.
type deleteStaging struct {
	direction deleteDirection
	start     int
	length    int
}

func (s *deleteStaging) empty() bool {
	return s.length == 0
}

// stageBackward records a backspace issued at effective position pos, which
// removes the character to its left. It reports false when the run cannot
// absorb the deletion (wrong direction, or not adjacent to the run's left
// edge); the caller must flush and retry.
func (s *deleteStaging) stageBackward(pos int) bool {
	if s.length == 0 {
		s.direction = deleteBackward
		s.start = pos - 1
		s.length = 1
		return true
	}
	if s.direction != deleteBackward || pos != s.start {
		return false
	}
	s.start--
	s.length++
	return true
}

// stageForward records a delete-key press at effective position pos, which
// removes the character under it. Symmetric to stageBackward: the run grows
// rightward, and a forward run keeps absorbing deletes issued at the same
// effective position because each one targets the next surviving character.
func (s *deleteStaging) stageForward(pos int) bool {
	if s.length == 0 {
		s.direction = deleteForward
		s.start = pos
		s.length = 1
		return true
	}
	if s.direction != deleteForward || pos != s.start {
		return false
	}
	s.length++
	return true
}

func (s *deleteStaging) clear() {
	s.start = 0
	s.length = 0
}

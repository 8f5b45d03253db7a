package extract

// Cursor is the transient scan state threaded through the engine's
// phases. Position only ever advances or resets to Checkpoint; it never
// jumps past a block the engine has not visited in this pass.
type Cursor struct {
	Position   int
	Checkpoint int

	// SubjectBeforeParty records the phase-3 lookahead outcome: the
	// subject line precedes the party lines in this document, so the
	// party phases run on the subject-first branch.
	SubjectBeforeParty bool

	// SubjectCaptured is set once the subject field has been consumed,
	// whichever branch did it.
	SubjectCaptured bool
}

// commit finalizes a phase: a scan that ran off the end of the sequence
// reverts to the last known-good position so the next phase restarts
// there; otherwise the current position becomes the new checkpoint.
func (c *Cursor) commit(n int) {
	if c.Position >= n {
		c.Position = c.Checkpoint
	} else {
		c.Checkpoint = c.Position
	}
}

// revert abandons the current phase's progress.
func (c *Cursor) revert() {
	c.Position = c.Checkpoint
}

package nonogram

// Verify reports whether a fully-assigned grid satisfies every row and
// column clue of the puzzle exactly. It checks block structure directly and
// does not involve the search engine.
func Verify(g Grid, p *Puzzle) bool {
	if p == nil || g.Height() != p.Height() || g.Width() != p.Width() {
		return false
	}
	for r := 0; r < p.Height(); r++ {
		if !p.RowClue(r).SatisfiedBy(g.Row(r)) {
			return false
		}
	}
	for c := 0; c < p.Width(); c++ {
		if !p.ColClue(c).SatisfiedBy(g.Column(c)) {
			return false
		}
	}
	return true
}

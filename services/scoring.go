package services

// Score adjustments consumed by the external ranking engine. Intentionally
// asymmetric: a positive signal outweighs a single negative one, so
// recommendations with any positive history stay ranked above ones a user
// reported once as not working.
const (
	scoreWorked     = 10
	scoreDidNotWork = -5
)

// ScoreAdjustment maps a feedback outcome to its stored numeric adjustment.
// Pure and total. Stored values are historical facts: if this rule ever
// changes, it must become an explicitly versioned rule rather than a silent
// edit, so old rows keep their meaning.
func ScoreAdjustment(worked bool) int {
	if worked {
		return scoreWorked
	}
	return scoreDidNotWork
}

package component

// Session holds the bookkeeping for one run from Start to game over.
// HighScore outlives sessions; everything else is reset on Start.
type Session struct {
	Wave      int
	Score     int
	HighScore int
	GameOver  bool

	// RecordSet is true once Score has passed the high score it started with.
	RecordSet bool
}

// Reset starts a new session at wave 1 with no score. HighScore is kept.
func (s *Session) Reset() {
	s.Wave = 1
	s.Score = 0
	s.GameOver = false
	s.RecordSet = false
}

// AddPoint increments the score and raises the high score if it was beaten.
// It reports whether this point is the one that first beat the old record.
func (s *Session) AddPoint() bool {
	s.Score++
	if s.Score <= s.HighScore {
		return false
	}
	s.HighScore = s.Score
	if s.RecordSet {
		return false
	}
	s.RecordSet = true
	return true
}

package quiz

// ScoreWeights holds the named constants of the priority score policy.
// They are configuration: callers may override any of them, and the
// defaults match DefaultScoreWeights.
type ScoreWeights struct {
	// NeverAsked is the fixed score for questions with no history.
	NeverAsked float64
	// NeverCorrect is the fixed score for questions asked exactly once
	// and never answered correctly.
	NeverCorrect float64
	// LowAccuracy scales the (1 - accuracy) base term.
	LowAccuracy float64
	// FrequencyCap bounds the total frequency penalty.
	FrequencyCap float64
	// FrequencyPenalty is subtracted per recorded ask, up to FrequencyCap.
	FrequencyPenalty float64
	// MinScore is the floor applied after the frequency penalty.
	MinScore float64
	// NeverCorrectBoost is added for questions asked more than once and
	// never answered correctly.
	NeverCorrectBoost float64
}

// DefaultScoreWeights returns the standard scoring configuration.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		NeverAsked:        100,
		NeverCorrect:      90,
		LowAccuracy:       60,
		FrequencyCap:      20,
		FrequencyPenalty:  2,
		MinScore:          10,
		NeverCorrectBoost: 20,
	}
}

// Score maps a question's ask/correct history to a priority score; higher
// means more urgent to ask again. Never-asked questions always score the
// highest, then once-asked-never-correct; everything else scores by
// inaccuracy, discounted for questions the user has already seen often.
func (w ScoreWeights) Score(timesAsked, timesCorrect int) float64 {
	if timesAsked == 0 {
		return w.NeverAsked
	}
	if timesAsked == 1 && timesCorrect == 0 {
		return w.NeverCorrect
	}

	accuracy := float64(timesCorrect) / float64(timesAsked)
	score := (1 - accuracy) * w.LowAccuracy

	penalty := float64(timesAsked) * w.FrequencyPenalty
	if penalty > w.FrequencyCap {
		penalty = w.FrequencyCap
	}
	score -= penalty

	if score < w.MinScore {
		score = w.MinScore
	}

	if timesCorrect == 0 {
		score += w.NeverCorrectBoost
	}
	return score
}

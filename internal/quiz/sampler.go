package quiz

import (
	"math/rand"
	"sort"
	"time"

	"github.com/example/quizbank/pkg/models"
)

// Sampler selects a bounded, non-repeating subset of the bank for one quiz
// session, biased toward high priority scores.
type Sampler struct {
	weights ScoreWeights
	rng     *rand.Rand
}

// NewSampler creates a sampler. A nil rng gets a time-seeded source;
// tests inject a fixed seed for determinism.
func NewSampler(weights ScoreWeights, rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{weights: weights, rng: rng}
}

// Select returns min(count, bank size) distinct questions.
//
// When the bank fits within count every question is returned in uniform
// random order. Otherwise questions are drawn one at a time with
// probability proportional to their priority score (weighted sampling
// without replacement); if the weighted draw stalls on numeric edge cases
// the highest-scoring remaining questions fill the gap deterministically.
// The returned order is shuffled independently of selection order, so
// position carries no priority information.
func (s *Sampler) Select(bank []models.QuestionPerformance, count int) []models.Question {
	if count <= 0 || len(bank) == 0 {
		return nil
	}

	if len(bank) <= count {
		selected := make([]models.Question, len(bank))
		for i := range bank {
			selected[i] = bank[i].Question
		}
		s.shuffle(selected)
		return selected
	}

	type scored struct {
		question models.Question
		score    float64
	}
	remaining := make([]scored, len(bank))
	total := 0.0
	for i := range bank {
		score := s.weights.Score(bank[i].TimesAsked, bank[i].TimesCorrect)
		remaining[i] = scored{question: bank[i].Question, score: score}
		total += score
	}

	selected := make([]models.Question, 0, count)
	for len(selected) < count {
		if total <= 0 {
			break
		}
		target := s.rng.Float64() * total
		picked := -1
		cumulative := 0.0
		for i := range remaining {
			cumulative += remaining[i].score
			if target <= cumulative {
				picked = i
				break
			}
		}
		if picked < 0 {
			// Floating point left target past the last bucket.
			break
		}
		selected = append(selected, remaining[picked].question)
		total -= remaining[picked].score
		remaining[picked] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	// Fallback: fill deterministically with the highest-scoring remaining
	// questions, never introducing duplicates.
	if len(selected) < count {
		sort.SliceStable(remaining, func(i, j int) bool {
			if remaining[i].score != remaining[j].score {
				return remaining[i].score > remaining[j].score
			}
			return remaining[i].question.ID < remaining[j].question.ID
		})
		for i := 0; len(selected) < count && i < len(remaining); i++ {
			selected = append(selected, remaining[i].question)
		}
	}

	s.shuffle(selected)
	return selected
}

// shuffle randomizes presentation order in place.
func (s *Sampler) shuffle(questions []models.Question) {
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

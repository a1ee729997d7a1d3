// Package mastery tracks per-topic mastery scores. Every score lives in
// [0,100] and moves by a fixed step per graded answer: +8 when correct,
// -4 when not. Unseen topics score 0.
package mastery

import (
	"math/rand"
	"sort"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/state"
)

const (
	correctStep = 8
	wrongStep   = 4
	maxScore    = 100
)

// Diagnostic baselines per self-reported level.
const (
	baseBasico = 20
	baseMedio  = 45
	baseAlto   = 70
)

// TopicScore pairs a catalog topic with its current mastery score.
type TopicScore struct {
	Topic catalog.Topic
	Score int
}

// Tracker reads and mutates the mastery map inside the learner record.
type Tracker struct {
	st *state.Manager
}

// NewTracker creates a Tracker over the given state manager.
func NewTracker(st *state.Manager) *Tracker {
	return &Tracker{st: st}
}

// Get returns the mastery score for a topic, 0 if never practiced.
func (t *Tracker) Get(topicID string) int {
	return t.st.Data().Mastery[topicID]
}

// Bump applies the fixed-step rule to one topic and returns the new score.
func (t *Tracker) Bump(topicID string, correct bool) int {
	score := t.st.Data().Mastery[topicID]
	if correct {
		score += correctStep
	} else {
		score -= wrongStep
	}
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	t.st.Data().Mastery[topicID] = score
	return score
}

// BumpByQuestion resolves the owning topic of a question and bumps it.
// A question no topic claims produces no change; the bool reports whether
// a topic was found.
func (t *Tracker) BumpByQuestion(questionID string, correct bool) (string, bool) {
	topicID, ok := catalog.TopicForQuestion(questionID)
	if !ok {
		return "", false
	}
	t.Bump(topicID, correct)
	return topicID, true
}

// HasData reports whether any topic has a mastery entry at all.
func (t *Tracker) HasData() bool {
	return len(t.st.Data().Mastery) > 0
}

// WeakestTopics returns every catalog topic annotated with its score,
// weakest first. Ties keep catalog order.
func (t *Tracker) WeakestTopics() []TopicScore {
	topics := catalog.Topics()
	out := make([]TopicScore, 0, len(topics))
	for _, topic := range topics {
		out = append(out, TopicScore{Topic: topic, Score: t.Get(topic.ID)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

// Mean is the average score across topics that have an entry. Returns 0
// when nothing has been practiced yet.
func (t *Tracker) Mean() float64 {
	m := t.st.Data().Mastery
	if len(m) == 0 {
		return 0
	}
	sum := 0
	for _, v := range m {
		sum += v
	}
	return float64(sum) / float64(len(m))
}

// SeedDiagnostic initializes mastery for every topic matching the chosen
// track from a level baseline plus a small jitter in [-5,5]. Track "MIX"
// covers everything. Topics outside the track keep their existing scores.
func (t *Tracker) SeedDiagnostic(track, level string, rnd *rand.Rand) {
	base := baseMedio
	switch level {
	case "basico":
		base = baseBasico
	case "alto":
		base = baseAlto
	}

	for _, topic := range catalog.Topics() {
		subj, err := catalog.GetSubject(topic.Subject)
		if err != nil {
			continue
		}
		if track == "PAES" && subj.Track != "PAES" {
			continue
		}
		if track == "IB" && subj.Track != "IB" {
			continue
		}

		score := base + rnd.Intn(11) - 5
		if score < 0 {
			score = 0
		}
		if score > maxScore {
			score = maxScore
		}
		t.st.Data().Mastery[topic.ID] = score
	}
}

// Package progress summarizes the learner record into the numbers and
// messages the dashboard shows: personal average, estimated score band,
// qualitative feedback and the single next-step suggestion.
package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/store"
)

// NoEstimate is shown when no mastery data exists to estimate from.
const NoEstimate = "—"

const (
	estimateFloor = 350
	estimateSpan  = 350
)

// AverageScore is the rounded mean over all attempt scores, 0 with no
// attempts yet.
func AverageScore(attempts []store.AttemptData) int {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0
	for _, a := range attempts {
		sum += a.ScorePct
	}
	return int(math.Round(float64(sum) / float64(len(attempts))))
}

// EstimateScore translates mean mastery into an illustrative score in
// [350,700]. The bool is false when there is no mastery data at all.
func EstimateScore(tracker *mastery.Tracker) (int, bool) {
	if !tracker.HasData() {
		return 0, false
	}
	est := math.Round(estimateFloor + tracker.Mean()/100*estimateSpan)
	return int(est), true
}

// EstimateScoreText is EstimateScore rendered for display, with the
// em-dash sentinel when nothing can be estimated.
func EstimateScoreText(tracker *mastery.Tracker) string {
	est, ok := EstimateScore(tracker)
	if !ok {
		return NoEstimate
	}
	return fmt.Sprintf("%d", est)
}

// ScoreMessage gives three-tier feedback on one score against the
// personal average.
func ScoreMessage(scorePct, avg int) string {
	if scorePct >= avg {
		return "Vas bien. Se nota avance."
	}
	if scorePct >= avg-10 {
		return "Normal. La consistencia te sube."
	}
	return "Tranquila/o: esto es parte del proceso."
}

// NextStepText recommends a single action: the earliest due review,
// otherwise the weakest topic, otherwise a short exam.
func NextStepText(sched *review.Scheduler, tracker *mastery.Tracker, now time.Time) string {
	if due := sched.Due(now); len(due) > 0 {
		return fmt.Sprintf("repasar %q", catalog.TopicTitle(due[0].TopicID))
	}
	if tracker.HasData() {
		weakest := tracker.WeakestTopics()
		if len(weakest) > 0 {
			return fmt.Sprintf("reforzar %q con miniclase + práctica", weakest[0].Topic.Title)
		}
	}
	return "hacer un ensayo corto para medir avance"
}

// RecentScores returns the last n attempt scores, oldest first, for the
// score trend strip.
func RecentScores(attempts []store.AttemptData, n int) []int {
	if n > len(attempts) {
		n = len(attempts)
	}
	out := make([]int, 0, n)
	for _, a := range attempts[len(attempts)-n:] {
		out = append(out, a.ScorePct)
	}
	return out
}

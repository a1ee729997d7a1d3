// Package plan builds the "today plan": an ordered action list that puts
// due reviews first, then reinforcement for the weakest topics, and falls
// back to starter content on a fresh record.
package plan

import (
	"fmt"
	"time"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/review"
)

// Kind classifies a plan item.
type Kind string

const (
	KindReview    Kind = "review"
	KindReinforce Kind = "reinforce"
	KindStart     Kind = "start"
)

const (
	maxReviewItems    = 2
	maxReinforceItems = 2
	starterItems      = 3
)

// Item is one ranked, actionable recommendation.
type Item struct {
	Kind      Kind
	Title     string
	Subtitle  string
	Tag       string
	Page      string
	SubjectID string
	TopicID   string
}

// Build assembles the plan for the given moment. Reviews due at or before
// now come first, then up to two weakest topics not already represented.
// With no due reviews and no mastery data yet, the first three catalog
// topics become starter items.
func Build(sched *review.Scheduler, tracker *mastery.Tracker, now time.Time) []Item {
	var items []Item
	represented := map[string]bool{}

	for _, r := range sched.Due(now) {
		if len(items) >= maxReviewItems {
			break
		}
		topic, err := catalog.GetTopic(r.TopicID)
		if err != nil {
			continue
		}
		items = append(items, Item{
			Kind:  KindReview,
			Title: "Repaso: " + topic.Title,
			Subtitle: fmt.Sprintf("Spaced repetition • %s • vence %s",
				catalog.SubjectName(topic.Subject), prettyDate(r.DueISO)),
			Tag:       "Repaso",
			Page:      "study",
			SubjectID: topic.Subject,
			TopicID:   topic.ID,
		})
		represented[topic.ID] = true
	}

	if tracker.HasData() {
		added := 0
		for _, ts := range tracker.WeakestTopics() {
			if added >= maxReinforceItems {
				break
			}
			if represented[ts.Topic.ID] {
				continue
			}
			items = append(items, Item{
				Kind:  KindReinforce,
				Title: "Refuerzo: " + ts.Topic.Title,
				Subtitle: fmt.Sprintf("Debilidad detectada • %s • explicaciones alternativas",
					catalog.SubjectName(ts.Topic.Subject)),
				Tag:       "Refuerzo",
				Page:      "study",
				SubjectID: ts.Topic.Subject,
				TopicID:   ts.Topic.ID,
			})
			represented[ts.Topic.ID] = true
			added++
		}
	}

	if len(items) == 0 {
		topics := catalog.Topics()
		if len(topics) > starterItems {
			topics = topics[:starterItems]
		}
		for _, topic := range topics {
			items = append(items, Item{
				Kind:      KindStart,
				Title:     "Comienza: " + topic.Title,
				Subtitle:  "Miniclases + práctica • " + catalog.SubjectName(topic.Subject),
				Tag:       "Inicio",
				Page:      "study",
				SubjectID: topic.Subject,
				TopicID:   topic.ID,
			})
		}
	}

	return items
}

var (
	spanishDays   = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	spanishMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic"}
)

// prettyDate renders an RFC 3339 date as a short Spanish label, e.g.
// "mar 1 sep". Unparseable input comes back unchanged.
func prettyDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%s %d %s",
		spanishDays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1])
}

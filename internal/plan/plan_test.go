package plan

import (
	"strings"
	"testing"
	"time"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newFixture() (*state.Manager, *review.Scheduler, *mastery.Tracker) {
	st := state.NewManager(nil, nil)
	return st, review.NewScheduler(st), mastery.NewTracker(st)
}

func addReview(st *state.Manager, topicID string, due time.Time) {
	st.Data().Reviews = append(st.Data().Reviews, store.ReviewData{
		TopicID:      topicID,
		DueISO:       due.Format(time.RFC3339),
		IntervalDays: 1,
	})
}

func TestBuild_FreshStateYieldsStarters(t *testing.T) {
	_, sched, tracker := newFixture()

	items := Build(sched, tracker, testNow)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	topics := catalog.Topics()
	for i, it := range items {
		if it.Kind != KindStart {
			t.Errorf("item %d kind = %s, want start", i, it.Kind)
		}
		if it.TopicID != topics[i].ID {
			t.Errorf("item %d topic = %s, want %s (catalog order)", i, it.TopicID, topics[i].ID)
		}
		if !strings.HasPrefix(it.Title, "Comienza: ") {
			t.Errorf("item %d title = %q", i, it.Title)
		}
		if it.Tag != "Inicio" || it.Page != "study" {
			t.Errorf("item %d tag/page = %s/%s", i, it.Tag, it.Page)
		}
	}
}

func TestBuild_DueReviewsComeFirst(t *testing.T) {
	st, sched, tracker := newFixture()
	addReview(st, "funciones", testNow.Add(-time.Hour))
	st.Data().Mastery["mrua"] = 10

	items := Build(sched, tracker, testNow)
	if len(items) < 2 {
		t.Fatalf("got %d items, want review + reinforcement", len(items))
	}
	if items[0].Kind != KindReview || items[0].TopicID != "funciones" {
		t.Errorf("item 0 = %+v, want review of funciones", items[0])
	}
	if !strings.HasPrefix(items[0].Title, "Repaso: ") {
		t.Errorf("title = %q", items[0].Title)
	}
	if items[0].SubjectID != "paes_m1" {
		t.Errorf("subject = %s, want paes_m1", items[0].SubjectID)
	}
	for _, it := range items[1:] {
		if it.Kind == KindReview {
			t.Error("reviews must all precede reinforcement items")
		}
	}
}

func TestBuild_CapsReviewsAtTwo(t *testing.T) {
	st, sched, tracker := newFixture()
	addReview(st, "funciones", testNow.Add(-3*time.Hour))
	addReview(st, "mrua", testNow.Add(-2*time.Hour))
	addReview(st, "comprension", testNow.Add(-time.Hour))

	items := Build(sched, tracker, testNow)
	reviews := 0
	for _, it := range items {
		if it.Kind == KindReview {
			reviews++
		}
	}
	if reviews != 2 {
		t.Errorf("got %d review items, want 2", reviews)
	}
	// Earliest due first.
	if items[0].TopicID != "funciones" || items[1].TopicID != "mrua" {
		t.Errorf("review order = %s, %s; want funciones, mrua", items[0].TopicID, items[1].TopicID)
	}
}

func TestBuild_ReinforceSkipsReviewedTopics(t *testing.T) {
	st, sched, tracker := newFixture()
	// funciones is both due and the weakest topic.
	addReview(st, "funciones", testNow.Add(-time.Hour))
	st.Data().Mastery["funciones"] = 5
	st.Data().Mastery["mrua"] = 90

	items := Build(sched, tracker, testNow)
	seen := map[string]int{}
	for _, it := range items {
		seen[it.TopicID]++
	}
	if seen["funciones"] != 1 {
		t.Errorf("funciones appears %d times, want 1", seen["funciones"])
	}
	reinforce := 0
	for _, it := range items {
		if it.Kind == KindReinforce {
			reinforce++
			if it.TopicID == "funciones" {
				t.Error("reinforcement duplicated a review topic")
			}
		}
	}
	if reinforce != 2 {
		t.Errorf("got %d reinforce items, want 2", reinforce)
	}
}

func TestBuild_FutureReviewsExcluded(t *testing.T) {
	st, sched, tracker := newFixture()
	addReview(st, "funciones", testNow.Add(48*time.Hour))

	items := Build(sched, tracker, testNow)
	// Not due and no mastery data: fall back to starters.
	if len(items) != 3 || items[0].Kind != KindStart {
		t.Errorf("items = %+v, want 3 starters", items)
	}
}

func TestBuild_UnknownReviewTopicSkipped(t *testing.T) {
	st, sched, tracker := newFixture()
	addReview(st, "deleted-topic", testNow.Add(-time.Hour))
	st.Data().Mastery["mrua"] = 30

	items := Build(sched, tracker, testNow)
	for _, it := range items {
		if it.Kind == KindReview {
			t.Errorf("unknown topic produced a review item: %+v", it)
		}
	}
}

func TestPrettyDate(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	got := prettyDate("2026-09-01T12:00:00Z")
	if got != "mar 1 sep" {
		t.Errorf("got %q, want %q", got, "mar 1 sep")
	}

	if got := prettyDate("garbage"); got != "garbage" {
		t.Errorf("got %q, want input passthrough", got)
	}
}

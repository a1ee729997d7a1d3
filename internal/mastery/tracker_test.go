package mastery

import (
	"math/rand"
	"testing"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/state"
)

func newTestTracker() *Tracker {
	return NewTracker(state.NewManager(nil, nil))
}

func TestGet_DefaultsToZero(t *testing.T) {
	tr := newTestTracker()
	if got := tr.Get("funciones"); got != 0 {
		t.Errorf("got %d, want 0 for unseen topic", got)
	}
}

func TestBump_FixedSteps(t *testing.T) {
	tr := newTestTracker()

	if got := tr.Bump("funciones", true); got != 8 {
		t.Errorf("after correct: got %d, want 8", got)
	}
	if got := tr.Bump("funciones", true); got != 16 {
		t.Errorf("after second correct: got %d, want 16", got)
	}
	if got := tr.Bump("funciones", false); got != 12 {
		t.Errorf("after wrong: got %d, want 12", got)
	}
}

func TestBump_ClampsAtBounds(t *testing.T) {
	tr := newTestTracker()

	if got := tr.Bump("mrua", false); got != 0 {
		t.Errorf("wrong answer at zero: got %d, want 0", got)
	}

	tr.st.Data().Mastery["mrua"] = 97
	if got := tr.Bump("mrua", true); got != 100 {
		t.Errorf("correct answer near cap: got %d, want 100", got)
	}
}

func TestBumpByQuestion_ResolvesTopic(t *testing.T) {
	tr := newTestTracker()

	topicID, ok := tr.BumpByQuestion("q2", true)
	if !ok {
		t.Fatal("expected q2 to resolve to a topic")
	}
	if topicID != "funciones" {
		t.Errorf("topic = %q, want funciones", topicID)
	}
	if got := tr.Get("funciones"); got != 8 {
		t.Errorf("score = %d, want 8", got)
	}
}

func TestBumpByQuestion_UnmappedIsNoOp(t *testing.T) {
	tr := newTestTracker()

	_, ok := tr.BumpByQuestion("no-such-question", true)
	if ok {
		t.Fatal("expected unmapped question to report no topic")
	}
	if len(tr.st.Data().Mastery) != 0 {
		t.Errorf("mastery = %v, want untouched", tr.st.Data().Mastery)
	}
}

func TestWeakestTopics_SortsAscending(t *testing.T) {
	tr := newTestTracker()
	tr.st.Data().Mastery["funciones"] = 60
	tr.st.Data().Mastery["mrua"] = 10

	out := tr.WeakestTopics()
	if len(out) != len(catalog.Topics()) {
		t.Fatalf("got %d entries, want full catalog (%d)", len(out), len(catalog.Topics()))
	}

	// All zero-score topics come first, then mrua (10), then funciones (60).
	var mruaIdx, funcIdx int
	for i, ts := range out {
		switch ts.Topic.ID {
		case "mrua":
			mruaIdx = i
		case "funciones":
			funcIdx = i
		}
	}
	if mruaIdx >= funcIdx {
		t.Errorf("mrua (10) at %d should come before funciones (60) at %d", mruaIdx, funcIdx)
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score < out[i-1].Score {
			t.Fatalf("not sorted ascending at %d: %d < %d", i, out[i].Score, out[i-1].Score)
		}
	}
}

func TestWeakestTopics_TiesKeepCatalogOrder(t *testing.T) {
	tr := newTestTracker()

	out := tr.WeakestTopics()
	topics := catalog.Topics()
	for i, ts := range out {
		if ts.Topic.ID != topics[i].ID {
			t.Fatalf("all-zero tie broke catalog order at %d: got %s, want %s",
				i, ts.Topic.ID, topics[i].ID)
		}
	}
}

func TestMean(t *testing.T) {
	tr := newTestTracker()

	if got := tr.Mean(); got != 0 {
		t.Errorf("empty mean = %v, want 0", got)
	}

	tr.st.Data().Mastery["mrua"] = 40
	tr.st.Data().Mastery["funciones"] = 60
	if got := tr.Mean(); got != 50 {
		t.Errorf("mean = %v, want 50", got)
	}
}

func TestSeedDiagnostic_LevelBaselines(t *testing.T) {
	tests := []struct {
		level string
		base  int
	}{
		{"basico", 20},
		{"medio", 45},
		{"alto", 70},
	}

	for _, tt := range tests {
		tr := newTestTracker()
		tr.SeedDiagnostic("MIX", tt.level, rand.New(rand.NewSource(1)))

		if len(tr.st.Data().Mastery) != len(catalog.Topics()) {
			t.Fatalf("%s: seeded %d topics, want all %d",
				tt.level, len(tr.st.Data().Mastery), len(catalog.Topics()))
		}
		for topicID, score := range tr.st.Data().Mastery {
			if score < tt.base-5 || score > tt.base+5 {
				t.Errorf("%s: %s = %d, want within 5 of %d", tt.level, topicID, score, tt.base)
			}
		}
	}
}

func TestSeedDiagnostic_TrackFiltersTopics(t *testing.T) {
	tr := newTestTracker()
	tr.SeedDiagnostic("IB", "medio", rand.New(rand.NewSource(1)))

	for topicID := range tr.st.Data().Mastery {
		topic, err := catalog.GetTopic(topicID)
		if err != nil {
			t.Fatalf("seeded unknown topic %s", topicID)
		}
		subj, err := catalog.GetSubject(topic.Subject)
		if err != nil {
			t.Fatalf("topic %s has unknown subject", topicID)
		}
		if subj.Track != "IB" {
			t.Errorf("IB diagnostic seeded %s track topic %s", subj.Track, topicID)
		}
	}
	if len(tr.st.Data().Mastery) == 0 {
		t.Fatal("IB diagnostic seeded nothing")
	}
}

func TestSeedDiagnostic_PreservesOtherTracks(t *testing.T) {
	tr := newTestTracker()
	tr.st.Data().Mastery["funciones"] = 88 // PAES topic

	tr.SeedDiagnostic("IB", "basico", rand.New(rand.NewSource(1)))
	if got := tr.Get("funciones"); got != 88 {
		t.Errorf("funciones = %d, want untouched 88", got)
	}
}

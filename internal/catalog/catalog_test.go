package catalog

import "testing"

func TestEmbeddedCatalog_Valid(t *testing.T) {
	doc, err := parseDocument(rawCatalog)
	if err != nil {
		t.Fatalf("parseDocument() error = %v", err)
	}
	if len(doc.Subjects) != 10 {
		t.Errorf("subjects = %d, want 10", len(doc.Subjects))
	}
	if len(doc.Topics) == 0 || len(doc.Questions) == 0 {
		t.Error("expected non-empty topics and questions")
	}
}

func TestParseDocument_RejectsCorruptJSON(t *testing.T) {
	if _, err := parseDocument([]byte("{not json")); err == nil {
		t.Error("expected error for corrupt JSON")
	}
}

func TestParseDocument_RejectsSchemaViolation(t *testing.T) {
	// Missing required top-level fields.
	if _, err := parseDocument([]byte(`{"subjects": []}`)); err == nil {
		t.Error("expected schema validation error")
	}
}

func TestParseDocument_RejectsAnswerIndexOutOfRange(t *testing.T) {
	raw := []byte(`{
		"subjects": [{"id": "s1", "name": "S1", "track": "PAES"}],
		"topics": [{
			"id": "t1", "subject": "s1", "title": "T1", "axis": "A", "level": "basico",
			"learn": {"miniClasses": [], "deepClasses": [], "altStyles": []},
			"practice": {"questionIds": ["q1"]}
		}],
		"questions": [{
			"id": "q1", "subject": "s1", "stem": "?",
			"options": ["a", "b"], "answerIndex": 5, "explanation": []
		}],
		"motivationalMessages": [],
		"vocational": {"careers": []}
	}`)
	if _, err := parseDocument(raw); err == nil {
		t.Error("expected answerIndex range error")
	}
}

func TestGetTopic_Found(t *testing.T) {
	topic, err := GetTopic("mrua")
	if err != nil {
		t.Fatalf("GetTopic(mrua) error = %v", err)
	}
	if topic.Subject != "ib_phy_sl" {
		t.Errorf("subject = %q, want ib_phy_sl", topic.Subject)
	}
}

func TestGetTopic_NotFound(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestSubjectName_FallsBackToID(t *testing.T) {
	if got := SubjectName("unknown_subject"); got != "unknown_subject" {
		t.Errorf("SubjectName() = %q, want id fallback", got)
	}
}

func TestTopicForQuestion_Resolves(t *testing.T) {
	topicID, ok := TopicForQuestion("q1")
	if !ok || topicID != "mrua" {
		t.Errorf("TopicForQuestion(q1) = %q, %v; want mrua, true", topicID, ok)
	}
}

func TestTopicForQuestion_Unmapped(t *testing.T) {
	if _, ok := TopicForQuestion("q999"); ok {
		t.Error("expected unmapped question to resolve to nothing")
	}
}

func TestTopicForQuestion_FirstMatchWins(t *testing.T) {
	// Two topics claiming the same question: catalog order decides.
	doc := &Document{
		Topics: []Topic{
			{ID: "alpha", Practice: Practice{QuestionIDs: []string{"shared"}}},
			{ID: "beta", Practice: Practice{QuestionIDs: []string{"shared"}}},
		},
	}
	ix := buildIndex(doc)
	if got := ix.topicForQuest["shared"]; got != "alpha" {
		t.Errorf("shared question resolved to %q, want alpha", got)
	}
}

func TestTopicsBySubject_CatalogOrder(t *testing.T) {
	topics := TopicsBySubject("paes_m1")
	if len(topics) != 2 {
		t.Fatalf("topics for paes_m1 = %d, want 2", len(topics))
	}
	if topics[0].ID != "funciones" || topics[1].ID != "ecuaciones" {
		t.Errorf("order = [%s, %s], want [funciones, ecuaciones]", topics[0].ID, topics[1].ID)
	}
}

func TestQuestionsByIDs_SkipsUnknown(t *testing.T) {
	qs := QuestionsByIDs([]string{"q1", "missing", "q2"})
	if len(qs) != 2 {
		t.Fatalf("resolved %d questions, want 2", len(qs))
	}
	if qs[0].ID != "q1" || qs[1].ID != "q2" {
		t.Errorf("ids = [%s, %s], want [q1, q2]", qs[0].ID, qs[1].ID)
	}
}

func TestSearch_MatchesAcrossTypes(t *testing.T) {
	hits := Search("m1")
	if len(hits) == 0 {
		t.Fatal("expected hits for m1")
	}
	if hits[0].Type != HitSubject {
		t.Errorf("first hit type = %q, want subject hits first", hits[0].Type)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	if hits := Search("   "); hits != nil {
		t.Errorf("Search(blank) = %v, want nil", hits)
	}
}

func TestSearch_CapsResults(t *testing.T) {
	// "a" matches nearly everything in the catalog.
	hits := Search("a")
	if len(hits) > maxSearchHits {
		t.Errorf("hits = %d, want <= %d", len(hits), maxSearchHits)
	}
}

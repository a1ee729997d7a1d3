// Package catalog provides the read-only content catalog: subjects, topics,
// questions, vocational weight tables, and motivational messages. The data is
// embedded, validated at init, and indexed once. Nothing in this package
// mutates after init.
package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// index holds the catalog with precomputed lookup tables.
type index struct {
	doc           *Document
	subjectByID   map[string]*Subject
	topicByID     map[string]*Topic
	questionByID  map[string]*Question
	topicsBySubj  map[string][]Topic
	topicForQuest map[string]string
}

// c is the package-level singleton, set by init() in load.go.
var c *index

// buildIndex constructs the lookup tables from a document.
// The question→topic table takes the first topic in catalog order whose
// practice list contains the question id; later topics referencing the same
// question do not overwrite it.
func buildIndex(doc *Document) *index {
	ix := &index{
		doc:           doc,
		subjectByID:   make(map[string]*Subject, len(doc.Subjects)),
		topicByID:     make(map[string]*Topic, len(doc.Topics)),
		questionByID:  make(map[string]*Question, len(doc.Questions)),
		topicsBySubj:  make(map[string][]Topic),
		topicForQuest: make(map[string]string),
	}
	for i := range doc.Subjects {
		ix.subjectByID[doc.Subjects[i].ID] = &doc.Subjects[i]
	}
	for i := range doc.Topics {
		t := &doc.Topics[i]
		ix.topicByID[t.ID] = t
		ix.topicsBySubj[t.Subject] = append(ix.topicsBySubj[t.Subject], *t)
		for _, qid := range t.Practice.QuestionIDs {
			if _, claimed := ix.topicForQuest[qid]; !claimed {
				ix.topicForQuest[qid] = t.ID
			}
		}
	}
	for i := range doc.Questions {
		ix.questionByID[doc.Questions[i].ID] = &doc.Questions[i]
	}
	return ix
}

// Subjects returns all subjects in catalog order.
func Subjects() []Subject {
	out := make([]Subject, len(c.doc.Subjects))
	copy(out, c.doc.Subjects)
	return out
}

// Topics returns all topics in catalog order.
func Topics() []Topic {
	out := make([]Topic, len(c.doc.Topics))
	copy(out, c.doc.Topics)
	return out
}

// TopicsBySubject returns the topics belonging to a subject, in catalog order.
func TopicsBySubject(subjectID string) []Topic {
	src := c.topicsBySubj[subjectID]
	out := make([]Topic, len(src))
	copy(out, src)
	return out
}

// GetSubject returns the subject with the given id.
func GetSubject(id string) (Subject, error) {
	if s, ok := c.subjectByID[id]; ok {
		return *s, nil
	}
	return Subject{}, fmt.Errorf("subject %q not found", id)
}

// GetTopic returns the topic with the given id.
func GetTopic(id string) (Topic, error) {
	if t, ok := c.topicByID[id]; ok {
		return *t, nil
	}
	return Topic{}, fmt.Errorf("topic %q not found", id)
}

// GetQuestion returns the question with the given id.
func GetQuestion(id string) (Question, error) {
	if q, ok := c.questionByID[id]; ok {
		return *q, nil
	}
	return Question{}, fmt.Errorf("question %q not found", id)
}

// SubjectName returns the display name for a subject id, or the id itself
// when the subject is unknown.
func SubjectName(id string) string {
	if s, ok := c.subjectByID[id]; ok {
		return s.Name
	}
	return id
}

// TopicTitle returns the title for a topic id, or "Tema" when unknown,
// matching what the UI shows for a dangling reference.
func TopicTitle(id string) string {
	if t, ok := c.topicByID[id]; ok {
		return t.Title
	}
	return "Tema"
}

// TopicForQuestion resolves the owning topic of a question id.
// Returns "" and false when the question is not in any topic's practice list.
func TopicForQuestion(questionID string) (string, bool) {
	id, ok := c.topicForQuest[questionID]
	return id, ok
}

// QuestionsBySubject returns the questions of a subject in catalog order.
func QuestionsBySubject(subjectID string) []Question {
	var out []Question
	for _, q := range c.doc.Questions {
		if q.Subject == subjectID {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsByIDs resolves a list of question ids, silently skipping any that
// do not exist.
func QuestionsByIDs(ids []string) []Question {
	var out []Question
	for _, id := range ids {
		if q, ok := c.questionByID[id]; ok {
			out = append(out, *q)
		}
	}
	return out
}

// Careers returns the vocational career weight tables.
func Careers() []Career {
	out := make([]Career, len(c.doc.Vocational.Careers))
	copy(out, c.doc.Vocational.Careers)
	return out
}

// RandomMessage returns a random motivational message.
func RandomMessage() string {
	msgs := c.doc.MotivationalMessages
	if len(msgs) == 0 {
		return ""
	}
	return msgs[rand.Intn(len(msgs))]
}

// HitType classifies a search hit.
type HitType string

const (
	HitSubject  HitType = "subject"
	HitTopic    HitType = "topic"
	HitQuestion HitType = "question"
)

// Hit is one global-search result.
type Hit struct {
	Type       HitType
	Title      string
	Meta       string
	SubjectID  string
	TopicID    string
	QuestionID string
}

// maxSearchHits caps the result list, as the search box shows a short list.
const maxSearchHits = 8

// Search performs a case-insensitive substring search over subject names,
// topic titles/axes/levels, and question stems. Results keep catalog order
// within each type: subjects first, then topics, then questions.
func Search(query string) []Hit {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var hits []Hit
	for _, s := range c.doc.Subjects {
		if strings.Contains(strings.ToLower(s.Name), q) {
			hits = append(hits, Hit{Type: HitSubject, Title: s.Name, Meta: s.Track, SubjectID: s.ID})
		}
	}
	for _, t := range c.doc.Topics {
		hay := strings.ToLower(t.Title + " " + t.Axis + " " + SubjectName(t.Subject) + " " + t.Level)
		if strings.Contains(hay, q) {
			hits = append(hits, Hit{
				Type:      HitTopic,
				Title:     t.Title,
				Meta:      SubjectName(t.Subject) + " • " + t.Axis + " • " + t.Level,
				SubjectID: t.Subject,
				TopicID:   t.ID,
			})
		}
	}
	for _, qq := range c.doc.Questions {
		if strings.Contains(strings.ToLower(qq.Stem), q) {
			title := qq.Stem
			if len([]rune(title)) > 60 {
				title = string([]rune(title)[:60]) + "…"
			}
			hits = append(hits, Hit{
				Type:       HitQuestion,
				Title:      title,
				Meta:       SubjectName(qq.Subject),
				SubjectID:  qq.Subject,
				QuestionID: qq.ID,
			})
		}
	}

	if len(hits) > maxSearchHits {
		hits = hits[:maxSearchHits]
	}
	return hits
}

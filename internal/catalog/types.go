package catalog

// Subject is an exam subject (PAES or IB track).
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Track string `json:"track"`
}

// Resource is a curated learning resource (video mini-class or deep class).
type Resource struct {
	Title   string `json:"title"`
	Minutes int    `json:"minutes,omitempty"`
	URL     string `json:"url"`
}

// LearnSet groups the learning resources attached to a topic.
type LearnSet struct {
	MiniClasses []Resource `json:"miniClasses"`
	DeepClasses []Resource `json:"deepClasses"`
	AltStyles   []Resource `json:"altStyles"`
}

// Practice lists the question ids used to drill a topic.
type Practice struct {
	QuestionIDs []string `json:"questionIds"`
}

// Topic is a single study topic within a subject.
type Topic struct {
	ID       string   `json:"id"`
	Subject  string   `json:"subject"`
	Title    string   `json:"title"`
	Axis     string   `json:"axis"`
	Level    string   `json:"level"`
	Learn    LearnSet `json:"learn"`
	Practice Practice `json:"practice"`
}

// Question is a multiple-choice question with a worked explanation.
type Question struct {
	ID             string   `json:"id"`
	Subject        string   `json:"subject"`
	Stem           string   `json:"stem"`
	Options        []string `json:"options"`
	AnswerIndex    int      `json:"answerIndex"`
	Explanation    []string `json:"explanation"`
	CommonMistakes []string `json:"commonMistakes,omitempty"`
}

// Career holds the admission weight table for one career.
// Weights map subject categories (leng, m1, m2, ciencias, historia)
// to a fraction of the composite score.
type Career struct {
	Name   string             `json:"name"`
	Weight map[string]float64 `json:"weight"`
}

// Vocational wraps the career weight tables.
type Vocational struct {
	Careers []Career `json:"careers"`
}

// Document is the top-level catalog file layout.
type Document struct {
	Subjects             []Subject  `json:"subjects"`
	Topics               []Topic    `json:"topics"`
	Questions            []Question `json:"questions"`
	MotivationalMessages []string   `json:"motivationalMessages"`
	Vocational           Vocational `json:"vocational"`
}

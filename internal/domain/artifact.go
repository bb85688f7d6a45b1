package domain

import "fmt"

// Artifact is one generated content object for a feature.
// Implementations are plain records; Validate enforces the structural
// invariants the generation collaborator's output is never trusted with.
type Artifact interface {
	Feature() Feature
	Validate() error
}

// WordCard is the Daily feature's artifact: one programming term per day.
type WordCard struct {
	Term    string        `json:"term"`
	Meaning BilingualText `json:"meaning"`
	Example BilingualText `json:"example"`
	Tip     BilingualText `json:"tip"`
}

func (WordCard) Feature() Feature { return FeatureDaily }

func (c WordCard) Validate() error {
	if c.Term == "" {
		return NewValidationError("term", "must not be empty")
	}
	for _, f := range []struct {
		name string
		text BilingualText
	}{
		{"meaning", c.Meaning},
		{"example", c.Example},
		{"tip", c.Tip},
	} {
		if err := f.text.Validate(f.name); err != nil {
			return err
		}
	}
	return nil
}

// Quiz is a single multiple-choice question.
// Invariant: CorrectIndex addresses a valid element of Options.
type Quiz struct {
	Question     BilingualText   `json:"question"`
	Options      []BilingualText `json:"options"`
	CorrectIndex int             `json:"correctIndex"`
	Explanation  BilingualText   `json:"explanation"`
}

func (Quiz) Feature() Feature { return FeatureQuiz }

func (q Quiz) Validate() error {
	if err := q.Question.Validate("question"); err != nil {
		return err
	}
	if len(q.Options) == 0 {
		return NewValidationError("options", "must not be empty")
	}
	for i, opt := range q.Options {
		if err := opt.Validate(fmt.Sprintf("options[%d]", i)); err != nil {
			return err
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewValidationError("correctIndex",
			fmt.Sprintf("must be in [0, %d), got %d", len(q.Options), q.CorrectIndex))
	}
	if err := q.Explanation.Validate("explanation"); err != nil {
		return err
	}
	return nil
}

// StudyDay is one entry of a weekly plan. Day labels are free-form strings
// supplied by the generator; no uniqueness is enforced.
type StudyDay struct {
	Day   string        `json:"day"`
	Topic BilingualText `json:"topic"`
	Goal  BilingualText `json:"goal"`
}

// WeeklyPlan is the Plan feature's artifact: an ordered sequence of days.
type WeeklyPlan struct {
	Days []StudyDay `json:"days"`
}

func (WeeklyPlan) Feature() Feature { return FeaturePlan }

func (p WeeklyPlan) Validate() error {
	if len(p.Days) == 0 {
		return NewValidationError("days", "must not be empty")
	}
	for i, d := range p.Days {
		if d.Day == "" {
			return NewValidationError(fmt.Sprintf("days[%d].day", i), "must not be empty")
		}
		if err := d.Topic.Validate(fmt.Sprintf("days[%d].topic", i)); err != nil {
			return err
		}
		if err := d.Goal.Validate(fmt.Sprintf("days[%d].goal", i)); err != nil {
			return err
		}
	}
	return nil
}

// Source is a grounding reference accompanying free-text generation output.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Watch is the Watch feature's artifact: a free-text video recommendation
// plus its grounding sources, de-duplicated by URI.
type Watch struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

func (Watch) Feature() Feature { return FeatureWatch }

func (w Watch) Validate() error {
	if w.Text == "" {
		return NewValidationError("text", "must not be empty")
	}
	seen := make(map[string]struct{}, len(w.Sources))
	for i, s := range w.Sources {
		if s.URI == "" {
			return NewValidationError(fmt.Sprintf("sources[%d].uri", i), "must not be empty")
		}
		if _, dup := seen[s.URI]; dup {
			return NewValidationError(fmt.Sprintf("sources[%d].uri", i), "duplicate URI")
		}
		seen[s.URI] = struct{}{}
	}
	return nil
}

// DedupeSources removes entries sharing a URI, keeping the first occurrence.
// Order of survivors is preserved.
func DedupeSources(sources []Source) []Source {
	if len(sources) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(sources))
	out := make([]Source, 0, len(sources))
	for _, s := range sources {
		if _, ok := seen[s.URI]; ok {
			continue
		}
		seen[s.URI] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Story is a bilingual narrative explanation of a programming concept.
type Story struct {
	Title BilingualText `json:"title"`
	Body  BilingualText `json:"body"`
}

func (Story) Feature() Feature { return FeatureStory }

func (s Story) Validate() error {
	if err := s.Title.Validate("title"); err != nil {
		return err
	}
	return s.Body.Validate("body")
}

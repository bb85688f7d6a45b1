package domain

import (
	"errors"
	"testing"
)

func bt(en, kr string) BilingualText { return BilingualText{EN: en, KR: kr} }

func validQuiz() Quiz {
	return Quiz{
		Question: bt("What does a pointer store?", "포인터는 무엇을 저장하나요?"),
		Options: []BilingualText{
			bt("A value", "값"),
			bt("A memory address", "메모리 주소"),
			bt("A type", "타입"),
			bt("A function", "함수"),
		},
		CorrectIndex: 1,
		Explanation:  bt("A pointer stores the address of a value.", "포인터는 값의 주소를 저장합니다."),
	}
}

func TestWordCard_Validate(t *testing.T) {
	t.Parallel()

	card := WordCard{
		Term:    "recursion",
		Meaning: bt("A function calling itself", "자기 자신을 호출하는 함수"),
		Example: bt("The tree walk uses recursion.", "트리 순회는 재귀를 사용합니다."),
		Tip:     bt("Always define a base case.", "항상 기저 사례를 정의하세요."),
	}
	if err := card.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	card.Term = ""
	if err := card.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("empty term: expected ErrValidation, got %v", err)
	}

	card.Term = "recursion"
	card.Tip.KR = ""
	if err := card.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("half-empty tip: expected ErrValidation, got %v", err)
	}
}

func TestQuiz_Validate_CorrectIndexBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		correctIndex int
		wantErr      bool
	}{
		{"first option", 0, false},
		{"last option", 3, false},
		{"negative", -1, true},
		{"past end", 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := validQuiz()
			q.CorrectIndex = tt.correctIndex
			err := q.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestQuiz_Validate_NoOptions(t *testing.T) {
	t.Parallel()

	q := validQuiz()
	q.Options = nil
	q.CorrectIndex = 0
	if err := q.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestWeeklyPlan_Validate(t *testing.T) {
	t.Parallel()

	plan := WeeklyPlan{Days: []StudyDay{
		{Day: "Monday", Topic: bt("Slices", "슬라이스"), Goal: bt("Understand growth", "증가 방식 이해하기")},
		{Day: "Monday", Topic: bt("Maps", "맵"), Goal: bt("Iterate safely", "안전하게 순회하기")},
	}}
	// Duplicate day labels are caller-supplied strings; no uniqueness constraint.
	if err := plan.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan.Days[1].Day = ""
	if err := plan.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}

	empty := WeeklyPlan{}
	if err := empty.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty plan, got %v", err)
	}
}

func TestWatch_Validate_RejectsDuplicateURIs(t *testing.T) {
	t.Parallel()

	w := Watch{
		Text: "Start with this channel.",
		Sources: []Source{
			{URI: "https://x/y", Title: "first"},
			{URI: "https://x/y", Title: "second"},
		},
	}
	if err := w.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for duplicate URIs, got %v", err)
	}
}

func TestDedupeSources_FirstSeenWins(t *testing.T) {
	t.Parallel()

	got := DedupeSources([]Source{
		{URI: "https://x/y", Title: "first"},
		{URI: "https://a/b", Title: "other"},
		{URI: "https://x/y", Title: "second"},
	})

	if len(got) != 2 {
		t.Fatalf("got %d sources, want 2", len(got))
	}
	if got[0].URI != "https://x/y" || got[0].Title != "first" {
		t.Errorf("first entry should keep first-seen title, got %+v", got[0])
	}
	if got[1].URI != "https://a/b" {
		t.Errorf("order not preserved, got %+v", got[1])
	}
}

func TestDedupeSources_Empty(t *testing.T) {
	t.Parallel()

	if got := DedupeSources(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestStory_Validate(t *testing.T) {
	t.Parallel()

	s := Story{
		Title: bt("The Tale of the Stack", "스택 이야기"),
		Body:  bt("Once upon a time...", "옛날 옛적에..."),
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Body = BilingualText{}
	if err := s.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestArtifact_FeatureBinding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		artifact Artifact
		want     Feature
	}{
		{WordCard{}, FeatureDaily},
		{Quiz{}, FeatureQuiz},
		{WeeklyPlan{}, FeaturePlan},
		{Watch{}, FeatureWatch},
		{Story{}, FeatureStory},
	}
	for _, tt := range tests {
		if got := tt.artifact.Feature(); got != tt.want {
			t.Errorf("%T.Feature() = %q, want %q", tt.artifact, got, tt.want)
		}
	}
}

package generation

import (
	"fmt"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// outputShape returns the declared JSON output shape for one feature.
// Every text field is a {"en","kr"} pair; the decoder rejects anything
// the shape does not declare.
func outputShape(f domain.Feature) string {
	switch f {
	case domain.FeatureDaily:
		return `{
  "term": "<programming term>",
  "meaning": {"en": "<English meaning>", "kr": "<Korean meaning>"},
  "example": {"en": "<English usage example>", "kr": "<Korean usage example>"},
  "tip": {"en": "<English learning tip>", "kr": "<Korean learning tip>"}
}`
	case domain.FeatureQuiz:
		return `{
  "question": {"en": "<English question>", "kr": "<Korean question>"},
  "options": [
    {"en": "<English option>", "kr": "<Korean option>"}
  ],
  "correctIndex": <0-based index into options>,
  "explanation": {"en": "<English explanation>", "kr": "<Korean explanation>"}
}`
	case domain.FeaturePlan:
		return `{
  "days": [
    {
      "day": "<day label, e.g. Mon>",
      "topic": {"en": "<English topic>", "kr": "<Korean topic>"},
      "goal": {"en": "<English goal>", "kr": "<Korean goal>"}
    }
  ]
}`
	case domain.FeatureWatch:
		return `{
  "text": "<free-text recommendation of programming videos to watch>",
  "sources": [
    {"uri": "<source URI>", "title": "<source title>"}
  ]
}`
	case domain.FeatureStory:
		return `{
  "title": {"en": "<English title>", "kr": "<Korean title>"},
  "body": {"en": "<English story body>", "kr": "<Korean story body>"}
}`
	default:
		return ""
	}
}

// instruction returns the natural-language task for one feature.
func instruction(f domain.Feature) string {
	switch f {
	case domain.FeatureDaily:
		return "Pick one programming term that is useful for a Korean developer studying English. " +
			"Explain its meaning, give a natural usage example, and add a short learning tip."
	case domain.FeatureQuiz:
		return "Write one multiple-choice quiz question about programming vocabulary or concepts " +
			"for a Korean developer studying English. Provide exactly 4 options and mark the correct one."
	case domain.FeaturePlan:
		return "Create a 7-day weekly study plan for a Korean developer improving their English " +
			"for software work. Each day has a topic and a concrete goal."
	case domain.FeatureWatch:
		return "Recommend English-language programming videos or talks worth watching for a Korean " +
			"developer, as one short free-text paragraph, and list the sources you ground the " +
			"recommendation on."
	case domain.FeatureStory:
		return "Write a short bilingual story that explains one programming concept through a " +
			"narrative a beginner can follow."
	default:
		return ""
	}
}

// buildPrompt assembles the full prompt sent to the collaborator:
// the instruction plus the declared output shape and formatting rules.
func buildPrompt(f domain.Feature) (string, error) {
	inst := instruction(f)
	shape := outputShape(f)
	if inst == "" || shape == "" {
		return "", fmt.Errorf("no prompt defined for feature %q", f)
	}

	return fmt.Sprintf(`You are a bilingual (English/Korean) programming-education content writer.

Task: %s

Output ONLY a valid JSON object matching this exact schema:
%s

Rules:
- Fill BOTH "en" and "kr" for every bilingual field; the Korean text is a faithful translation, not a transliteration
- Keep the content practical for working developers
- Do not add fields the schema does not declare
- Output ONLY the JSON, no markdown, no explanations`, inst, shape), nil
}

package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// decodeArtifact strictly decodes collaborator output into the feature's
// artifact type. Unknown fields are rejected and the typed result is
// validated; the raw payload is never stored.
func decodeArtifact(f domain.Feature, data []byte) (domain.Artifact, error) {
	var artifact domain.Artifact

	switch f {
	case domain.FeatureDaily:
		var card domain.WordCard
		if err := strictUnmarshal(data, &card); err != nil {
			return nil, err
		}
		artifact = card
	case domain.FeatureQuiz:
		var quiz domain.Quiz
		if err := strictUnmarshal(data, &quiz); err != nil {
			return nil, err
		}
		artifact = quiz
	case domain.FeaturePlan:
		var plan domain.WeeklyPlan
		if err := strictUnmarshal(data, &plan); err != nil {
			return nil, err
		}
		artifact = plan
	case domain.FeatureWatch:
		var watch domain.Watch
		if err := strictUnmarshal(data, &watch); err != nil {
			return nil, err
		}
		// Grounding sources are de-duplicated by URI before the artifact
		// is validated or stored; the first occurrence wins.
		watch.Sources = domain.DedupeSources(watch.Sources)
		artifact = watch
	case domain.FeatureStory:
		var story domain.Story
		if err := strictUnmarshal(data, &story); err != nil {
			return nil, err
		}
		artifact = story
	default:
		return nil, fmt.Errorf("unknown feature %q", f)
	}

	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("validate artifact: %w", err)
	}

	return artifact, nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

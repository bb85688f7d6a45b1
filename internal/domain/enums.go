package domain

import "fmt"

// Feature identifies one of the five study tabs, each backed by its own
// generated artifact type.
type Feature string

const (
	FeatureDaily Feature = "daily"
	FeatureQuiz  Feature = "quiz"
	FeaturePlan  Feature = "plan"
	FeatureWatch Feature = "watch"
	FeatureStory Feature = "story"
)

func (f Feature) String() string { return string(f) }

func (f Feature) IsValid() bool {
	switch f {
	case FeatureDaily, FeatureQuiz, FeaturePlan, FeatureWatch, FeatureStory:
		return true
	}
	return false
}

// Features lists all features in tab order.
func Features() []Feature {
	return []Feature{FeatureDaily, FeatureQuiz, FeaturePlan, FeatureWatch, FeatureStory}
}

// ParseFeature converts a string into a Feature or returns a validation error.
func ParseFeature(s string) (Feature, error) {
	f := Feature(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: unknown feature %q", ErrValidation, s)
	}
	return f, nil
}

// RequestStatus is the lifecycle state of one feature's content request.
type RequestStatus string

const (
	StatusIdle    RequestStatus = "idle"
	StatusLoading RequestStatus = "loading"
	StatusReady   RequestStatus = "ready"
	StatusError   RequestStatus = "error"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusIdle, StatusLoading, StatusReady, StatusError:
		return true
	}
	return false
}

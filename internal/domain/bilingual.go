package domain

// BilingualText is a pair of equivalent strings in the two supported locales.
// It is a value type: once populated both halves are set and never mutated.
// Which half is shown is decided solely by the session-wide translation
// toggle, never by per-field state.
type BilingualText struct {
	EN string `json:"en"`
	KR string `json:"kr"`
}

// Display returns exactly one locale of the pair. With showTranslation false
// the English text is shown; with true, the Korean translation.
func (b BilingualText) Display(showTranslation bool) string {
	if showTranslation {
		return b.KR
	}
	return b.EN
}

// IsZero reports whether neither locale is populated.
func (b BilingualText) IsZero() bool {
	return b.EN == "" && b.KR == ""
}

// Validate checks that both locales are non-empty.
func (b BilingualText) Validate(field string) error {
	var errs []FieldError
	if b.EN == "" {
		errs = append(errs, FieldError{Field: field + ".en", Message: "must not be empty"})
	}
	if b.KR == "" {
		errs = append(errs, FieldError{Field: field + ".kr", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

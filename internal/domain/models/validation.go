package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the scores and annotations of a match. Of the job only the id is checked;
// the job itself belongs to the fetch side.
func (m JobMatch) Validate() error {
	if m.Job.ID == "" {
		return errors.New("invalid match: job id is empty")
	}
	if err := validate.StructExcept(m, "Job"); err != nil {
		return fmt.Errorf("invalid match for job %q: %w", m.Job.ID, err)
	}
	return nil
}

// ParseRelevance accepts relevance labels in any letter case.
func ParseRelevance(s string) (Relevance, bool) {
	for _, r := range []Relevance{RelevanceHigh, RelevanceMedium, RelevanceLow} {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, true
		}
	}
	return "", false
}

func (s SavedSearch) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	return s.Filters.Validate()
}

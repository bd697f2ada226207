package services

import (
	"fmt"
	"strings"

	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
)

// requiredField trims surrounding whitespace and rejects blank values.
func requiredField(value, name string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apierr.BadRequest("missing_field", fmt.Errorf("%s is required", name))
	}
	return trimmed, nil
}

// optionalField collapses blank values to absent.
func optionalField(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

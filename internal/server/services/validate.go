package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/common"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, fmt.Sprintf(format, args...))
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

// optionalDate accepts "" or a YYYY-MM-DD date.
func optionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return invalid("%s must be YYYY-MM-DD", field)
	}
	return nil
}

// trimmed returns nil for a nil or blank value.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

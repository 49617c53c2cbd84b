package pkg

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	maxSlugLength   = 50
	maxSlugAttempts = 1000
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug normalizes free text into a URL-safe token: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphen, at most 50 characters. It is total and never fails; empty
// or all-punctuation input yields an empty string, which callers must treat
// as invalid for slug-required resources.
func GenerateSlug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.Trim(s[:maxSlugLength], "-")
	}
	return s
}

// GenerateUniqueSlug computes the base slug for text and probes isAvailable
// for the base, then base-1, base-2, ... until a free candidate is found.
// After 1000 failed probes it falls back to a timestamp suffix so the
// function always terminates with a plausibly unique value. Errors from
// isAvailable propagate unchanged.
//
// The returned slug is only probabilistically unique under concurrent
// creates; the database unique index on the slug column is the real
// correctness guarantee.
func GenerateUniqueSlug(text string, isAvailable func(string) (bool, error)) (string, error) {
	base := GenerateSlug(text)

	candidate := base
	for i := 0; i < maxSlugAttempts; i++ {
		ok, err := isAvailable(candidate)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i+1)
	}

	return base + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10), nil
}

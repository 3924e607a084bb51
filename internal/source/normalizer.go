package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vanshika/bankreviews/internal/domain"
)

var (
	errMissingRating = errors.New("missing rating")
	errMissingID     = errors.New("missing review id")
)

// normalizeRating coerces a source rating label into a 1-5 star value.
func normalizeRating(label string) (int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, errMissingRating
	}
	rating, err := strconv.Atoi(label)
	if err != nil {
		return 0, fmt.Errorf("rating %q: %w", label, err)
	}
	if !domain.ValidRating(rating) {
		return 0, fmt.Errorf("rating %d out of range", rating)
	}
	return rating, nil
}

// normalizeScore coerces a numeric play score into a 1-5 star value.
func normalizeScore(score any) (int, error) {
	value, ok := score.(float64)
	if !ok {
		return 0, errMissingRating
	}
	rating := int(value)
	if float64(rating) != value || !domain.ValidRating(rating) {
		return 0, fmt.Errorf("score %v out of range", value)
	}
	return rating, nil
}

// lastPathSegment returns the text after the final slash of an entry id.
func lastPathSegment(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		value = value[idx+1:]
	}
	return value
}

// parseDatePrefix reads the calendar date at the start of a timestamp label.
// Labels without a parseable date yield nil.
func parseDatePrefix(label string) *time.Time {
	label = strings.TrimSpace(label)
	if len(label) < len(domain.DateLayout) {
		return nil
	}
	date, err := time.Parse(domain.DateLayout, label[:len(domain.DateLayout)])
	if err != nil {
		return nil
	}
	return &date
}

// dateFromEpoch truncates a unix timestamp to its UTC calendar date.
func dateFromEpoch(seconds float64) *time.Time {
	if seconds <= 0 {
		return nil
	}
	t := time.Unix(int64(seconds), 0).UTC()
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &date
}

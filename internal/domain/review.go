package domain

import (
	"strconv"
	"time"
)

// DateLayout is the calendar date format used for review dates.
const DateLayout = time.DateOnly

// churnThreshold is the highest rating still counted as a churn signal.
const churnThreshold = 2

// Review is one normalized customer review.
type Review struct {
	ReviewID   string
	Date       *time.Time
	BankName   string
	Rating     int
	Churn      int
	Platform   Platform
	DataSource string
	Profile    *CustomerProfile
}

// ChurnFor derives the churn flag from a rating: 1 for ratings of 2 or less.
// Every code path that builds a Review must use it.
func ChurnFor(rating int) int {
	if rating <= churnThreshold {
		return 1
	}
	return 0
}

// ValidRating reports whether rating is a 1-5 star value.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// NewReview builds a Review with the churn flag derived from rating.
func NewReview(id string, date *time.Time, bankName string, rating int, platform Platform, dataSource string) Review {
	return Review{
		ReviewID:   id,
		Date:       date,
		BankName:   bankName,
		Rating:     rating,
		Churn:      ChurnFor(rating),
		Platform:   platform,
		DataSource: dataSource,
	}
}

// BankCode is the upper-case three letter prefix of a bank name used in synthetic review ids.
func BankCode(bankName string) string {
	return prefixCode(bankName, 3)
}

// FormattedDate renders the review date, or an empty string when unknown.
func (r Review) FormattedDate() string {
	if r.Date == nil {
		return ""
	}
	return r.Date.Format(DateLayout)
}

// Field returns the textual value of a named output column and whether the
// row carries that column at all.
func (r Review) Field(column string) (string, bool) {
	switch column {
	case ColumnReviewID:
		return r.ReviewID, true
	case ColumnDate:
		return r.FormattedDate(), true
	case ColumnBankName:
		return r.BankName, true
	case ColumnRating:
		return strconv.Itoa(r.Rating), true
	case ColumnChurn:
		return strconv.Itoa(r.Churn), true
	case ColumnPlatform:
		return string(r.Platform), true
	case ColumnDataSource:
		return r.DataSource, r.DataSource != ""
	}
	if r.Profile == nil {
		return "", false
	}
	return r.Profile.field(column)
}

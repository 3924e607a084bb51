package domain

import "strconv"

// Output column names.
const (
	ColumnReviewID       = "review_id"
	ColumnDate           = "date"
	ColumnBankName       = "bank_name"
	ColumnRating         = "rating"
	ColumnChurn          = "churn"
	ColumnPlatform       = "platform"
	ColumnSex            = "sex"
	ColumnAge            = "age"
	ColumnTenure         = "tenure"
	ColumnCreditScore    = "credit_score"
	ColumnBalance        = "balance"
	ColumnProductsNumber = "products_number"
	ColumnCreditCard     = "credit_card"
	ColumnActiveMember   = "active_member"
	ColumnDataSource     = "data_source"
)

// CanonicalColumns is the output column order.
var CanonicalColumns = []string{
	ColumnReviewID,
	ColumnDate,
	ColumnBankName,
	ColumnRating,
	ColumnChurn,
	ColumnPlatform,
	ColumnSex,
	ColumnAge,
	ColumnTenure,
	ColumnCreditScore,
	ColumnBalance,
	ColumnProductsNumber,
	ColumnCreditCard,
	ColumnActiveMember,
	ColumnDataSource,
}

// Profile bounds.
const (
	MinAge         = 18
	MaxAge         = 70
	MaxTenure      = 20
	MinCreditScore = 300
	MaxCreditScore = 850
	MaxBalanceVND  = 2_000_000_000
)

// CustomerProfile holds synthetic customer attributes attached to a review.
type CustomerProfile struct {
	Sex            string
	Age            int
	Tenure         int
	CreditScore    int
	Balance        float64
	ProductsNumber int
	CreditCard     int
	ActiveMember   int
}

// MaxTenureForAge is the largest tenure allowed for a customer of the given
// age: years since turning 18, capped at 20.
func MaxTenureForAge(age int) int {
	years := age - MinAge
	if years < 0 {
		return 0
	}
	return min(MaxTenure, years)
}

func (p *CustomerProfile) field(column string) (string, bool) {
	switch column {
	case ColumnSex:
		return p.Sex, true
	case ColumnAge:
		return strconv.Itoa(p.Age), true
	case ColumnTenure:
		return strconv.Itoa(p.Tenure), true
	case ColumnCreditScore:
		return strconv.Itoa(p.CreditScore), true
	case ColumnBalance:
		return strconv.FormatFloat(p.Balance, 'f', 0, 64), true
	case ColumnProductsNumber:
		return strconv.Itoa(p.ProductsNumber), true
	case ColumnCreditCard:
		return strconv.Itoa(p.CreditCard), true
	case ColumnActiveMember:
		return strconv.Itoa(p.ActiveMember), true
	}
	return "", false
}

package pipeline

import (
	"fmt"
	"io"
	"sort"

	"github.com/vanshika/bankreviews/internal/domain"
)

// Summary describes a finished run.
type Summary struct {
	RunID         string
	OutputPath    string
	Rows          int
	Banks         int
	Platforms     map[domain.Platform]int
	ChurnRate     float64
	AverageRating float64
	Columns       []string
}

// Summarize computes the run statistics over the merged rows.
func Summarize(rows []domain.Review) Summary {
	s := Summary{Rows: len(rows), Platforms: make(map[domain.Platform]int)}
	if len(rows) == 0 {
		return s
	}

	banks := make(map[string]struct{})
	var churned, ratingSum int
	for _, r := range rows {
		banks[r.BankName] = struct{}{}
		s.Platforms[r.Platform]++
		churned += r.Churn
		ratingSum += r.Rating
	}
	s.Banks = len(banks)
	s.ChurnRate = float64(churned) / float64(len(rows))
	s.AverageRating = float64(ratingSum) / float64(len(rows))
	return s
}

// Fprint writes the console summary.
func (s Summary) Fprint(w io.Writer) {
	if s.RunID != "" {
		fmt.Fprintf(w, "Run %s\n", s.RunID)
	}
	fmt.Fprintf(w, "Collected %d reviews for %d banks into %s\n", s.Rows, s.Banks, s.OutputPath)

	platforms := make([]string, 0, len(s.Platforms))
	for p := range s.Platforms {
		platforms = append(platforms, string(p))
	}
	sort.Strings(platforms)
	for _, p := range platforms {
		fmt.Fprintf(w, "  %-18s %d\n", p, s.Platforms[domain.Platform(p)])
	}
	fmt.Fprintf(w, "Churn rate: %.2f%%\n", s.ChurnRate*100)
	fmt.Fprintf(w, "Average rating: %.2f\n", s.AverageRating)
}

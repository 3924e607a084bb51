package generator

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vanshika/bankreviews/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 15, 17, 30, 0, 0, time.UTC)
}

func TestGenerateShapesRows(t *testing.T) {
	gen := New(Config{Seed: 7}).WithClock(fixedClock)

	reviews, err := gen.Generate(Request{BankName: "Vietcombank", Platform: domain.PlatformFacebook, Count: 500})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(reviews) != 500 {
		t.Fatalf("expected 500 reviews, got %d", len(reviews))
	}

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, -30)
	seen := make(map[string]struct{}, len(reviews))
	for i, r := range reviews {
		if !strings.HasPrefix(r.ReviewID, "FA_VIE_") {
			t.Fatalf("row %d: unexpected id %s", i, r.ReviewID)
		}
		if _, dup := seen[r.ReviewID]; dup {
			t.Fatalf("row %d: duplicate id %s", i, r.ReviewID)
		}
		seen[r.ReviewID] = struct{}{}
		if !domain.ValidRating(r.Rating) {
			t.Fatalf("row %d: rating %d out of range", i, r.Rating)
		}
		if r.Churn != domain.ChurnFor(r.Rating) {
			t.Fatalf("row %d: churn %d does not match rating %d", i, r.Churn, r.Rating)
		}
		if r.Date == nil || r.Date.Before(earliest) || r.Date.After(today) {
			t.Fatalf("row %d: date %v outside window", i, r.Date)
		}
		if r.DataSource != domain.DataSourceSynthetic {
			t.Fatalf("row %d: expected synthetic data source, got %q", i, r.DataSource)
		}
		if r.BankName != "Vietcombank" || r.Platform != domain.PlatformFacebook {
			t.Fatalf("row %d: unexpected bank/platform %s/%s", i, r.BankName, r.Platform)
		}
	}
	if reviews[0].ReviewID != "FA_VIE_0000" || reviews[499].ReviewID != "FA_VIE_0499" {
		t.Fatalf("ids must be zero padded and sequential, got %s..%s", reviews[0].ReviewID, reviews[499].ReviewID)
	}
}

func TestGenerateHonoursRatingWeights(t *testing.T) {
	gen := New(Config{Seed: 11}).WithClock(fixedClock)

	reviews, err := gen.Generate(Request{
		BankName:      "ACB",
		Platform:      domain.PlatformAppStoreDummy,
		Count:         200,
		RatingWeights: MustWeights(0, 0, 0, 0, 1),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, r := range reviews {
		if r.Rating != 5 || r.Churn != 0 {
			t.Fatalf("expected only five star rows, got rating %d churn %d", r.Rating, r.Churn)
		}
	}
}

func TestGenerateRejectsMismatchedWeights(t *testing.T) {
	gen := New(Config{Seed: 3})
	_, err := gen.Generate(Request{BankName: "ACB", Platform: domain.PlatformFacebook, Count: 1, RatingWeights: MustWeights(1, 1)})
	if err == nil {
		t.Fatalf("expected error for a two category rating vector")
	}
}

func TestGenerateZeroCount(t *testing.T) {
	reviews, err := New(Config{Seed: 3}).Generate(Request{BankName: "ACB", Platform: domain.PlatformFacebook})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected no rows, got %d", len(reviews))
	}
}

func TestGenerateSameSeedSameRows(t *testing.T) {
	a, _ := New(Config{Seed: 99}).WithClock(fixedClock).Generate(Request{BankName: "BIDV", Platform: domain.PlatformFacebook, Count: 50})
	b, _ := New(Config{Seed: 99}).WithClock(fixedClock).Generate(Request{BankName: "BIDV", Platform: domain.PlatformFacebook, Count: 50})
	for i := range a {
		if a[i].Rating != b[i].Rating || !a[i].Date.Equal(*b[i].Date) {
			t.Fatalf("row %d differs between identically seeded generators", i)
		}
	}
}

func TestIntegerAndFractionalWeightsAgree(t *testing.T) {
	integer := MustWeights(48, 52)
	fractional := MustWeights(0.48, 0.52)

	r1 := rand.New(rand.NewSource(5))
	r2 := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		if integer.Index(r1) != fractional.Index(r2) {
			t.Fatalf("draw %d differs between integer and fractional encodings", i)
		}
	}
}

func TestNewWeightsValidation(t *testing.T) {
	if _, err := NewWeights(); err == nil {
		t.Fatalf("expected error for empty weights")
	}
	if _, err := NewWeights(1, -1); err == nil {
		t.Fatalf("expected error for negative weight")
	}
	if _, err := NewWeights(0, 0); err == nil {
		t.Fatalf("expected error for zero sum")
	}
	probs := MustWeights(12, 13, 25, 25, 25).Probabilities()
	if len(probs) != 5 || probs[0] < 0.119 || probs[0] > 0.121 {
		t.Fatalf("unexpected probabilities %v", probs)
	}
}

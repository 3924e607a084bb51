package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/bankreviews/internal/domain"
)

// Request describes one batch of synthetic reviews. Zero RatingWeights and a
// non-positive DaysBack fall back to the generator defaults.
type Request struct {
	BankName      string
	Platform      domain.Platform
	Count         int
	RatingWeights Weights
	DaysBack      int
}

// Generator produces plausible review rows without any live source.
type Generator struct {
	cfg  Config
	rand *rand.Rand
	now  func() time.Time
}

// New returns a Generator seeded from cfg.Seed, or from the wall clock when
// the seed is zero.
func New(cfg Config) *Generator {
	if cfg.DaysBack <= 0 {
		cfg.DaysBack = DefaultConfig().DaysBack
	}
	if cfg.RatingWeights.IsZero() {
		cfg.RatingWeights = DefaultConfig().RatingWeights
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
		now:  time.Now,
	}
}

// WithClock overrides the clock used to anchor the date window.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	if now != nil {
		g.now = now
	}
	return g
}

// Generate returns req.Count synthetic reviews for one bank and platform.
// Dates fall in the inclusive window [today-DaysBack, today].
func (g *Generator) Generate(req Request) ([]domain.Review, error) {
	if req.Count <= 0 {
		return []domain.Review{}, nil
	}
	weights := req.RatingWeights
	if weights.IsZero() {
		weights = g.cfg.RatingWeights
	}
	ratings, err := RatingDistribution(weights)
	if err != nil {
		return nil, fmt.Errorf("rating weights for %s/%s: %w", req.BankName, req.Platform, err)
	}
	daysBack := req.DaysBack
	if daysBack <= 0 {
		daysBack = g.cfg.DaysBack
	}

	today := truncateToDay(g.now())
	start := today.AddDate(0, 0, -daysBack)
	platformCode := req.Platform.Code()
	bankCode := domain.BankCode(req.BankName)

	reviews := make([]domain.Review, req.Count)
	for i := 0; i < req.Count; i++ {
		rating := ratings.Draw(g.rand)
		date := start.AddDate(0, 0, g.rand.Intn(daysBack+1))

		reviews[i] = domain.NewReview(
			fmt.Sprintf("%s_%s_%04d", platformCode, bankCode, i),
			&date,
			req.BankName,
			rating,
			req.Platform,
			domain.DataSourceSynthetic,
		)
	}
	return reviews, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

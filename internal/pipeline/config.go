package pipeline

import (
	"github.com/vanshika/bankreviews/internal/domain"
	"github.com/vanshika/bankreviews/internal/generator"
)

// Config holds the compiled-in tunables of a collection run.
type Config struct {
	AppStorePages            int
	AppStoreFallbackCount    int
	AppStoreFallbackWeights  generator.Weights
	PlayStoreReviews         int
	PlayStoreFallbackCount   int
	PlayStoreFallbackWeights generator.Weights
	SocialReviews            int
	DaysBack                 int
	GeneratorSeed            int64
	AugmentSeed              int64
	Columns                  []string
}

// DefaultConfig returns the production tunables.
func DefaultConfig() Config {
	return Config{
		AppStorePages:            10,
		AppStoreFallbackCount:    300,
		AppStoreFallbackWeights:  generator.AppStoreFallbackRatingWeights,
		PlayStoreReviews:         3000,
		PlayStoreFallbackCount:   500,
		PlayStoreFallbackWeights: generator.DefaultRatingWeights,
		SocialReviews:            500,
		DaysBack:                 30,
		GeneratorSeed:            generator.DefaultConfig().Seed,
		AugmentSeed:              generator.DefaultAugmentSeed,
		Columns:                  append([]string(nil), domain.CanonicalColumns...),
	}
}

package generator

// Config drives the synthetic review generator.
type Config struct {
	DaysBack      int
	RatingWeights Weights
	Seed          int64
}

// DefaultConfig returns the thirty day window and the default rating skew.
func DefaultConfig() Config {
	return Config{
		DaysBack:      30,
		RatingWeights: DefaultRatingWeights,
		Seed:          2024,
	}
}

package generator

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidWeights is returned when a weight vector cannot back a categorical draw.
var ErrInvalidWeights = errors.New("invalid weights")

// Weights is a normalized categorical weight vector. Integer percentages such
// as {48, 52} and fractions such as {0.48, 0.52} produce identical draws.
type Weights struct {
	cumulative []float64
}

// NewWeights normalizes raw weights into cumulative probabilities.
func NewWeights(raw ...float64) (Weights, error) {
	if len(raw) == 0 {
		return Weights{}, fmt.Errorf("%w: empty vector", ErrInvalidWeights)
	}
	var total float64
	for i, w := range raw {
		if w < 0 {
			return Weights{}, fmt.Errorf("%w: weight %d is negative", ErrInvalidWeights, i)
		}
		total += w
	}
	if total <= 0 {
		return Weights{}, fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}

	cumulative := make([]float64, len(raw))
	var acc float64
	for i, w := range raw {
		acc += w / total
		cumulative[i] = acc
	}
	cumulative[len(cumulative)-1] = 1
	return Weights{cumulative: cumulative}, nil
}

// MustWeights is NewWeights for compiled-in tables.
func MustWeights(raw ...float64) Weights {
	w, err := NewWeights(raw...)
	if err != nil {
		panic(err)
	}
	return w
}

// Len returns the number of categories.
func (w Weights) Len() int {
	return len(w.cumulative)
}

// IsZero reports whether the vector was never initialised.
func (w Weights) IsZero() bool {
	return len(w.cumulative) == 0
}

// Probabilities returns the per-category probabilities.
func (w Weights) Probabilities() []float64 {
	out := make([]float64, len(w.cumulative))
	prev := 0.0
	for i, c := range w.cumulative {
		out[i] = c - prev
		prev = c
	}
	return out
}

// Index draws a category index.
func (w Weights) Index(r *rand.Rand) int {
	u := r.Float64()
	for i, c := range w.cumulative {
		if u < c {
			return i
		}
	}
	return len(w.cumulative) - 1
}

// Distribution pairs category values with their weights.
type Distribution[T any] struct {
	Values  []T
	Weights Weights
}

// NewDistribution checks that values and weights line up.
func NewDistribution[T any](values []T, weights Weights) (Distribution[T], error) {
	if len(values) != weights.Len() {
		return Distribution[T]{}, fmt.Errorf("%w: %d values for %d weights", ErrInvalidWeights, len(values), weights.Len())
	}
	return Distribution[T]{Values: values, Weights: weights}, nil
}

func mustDistribution[T any](values []T, weights Weights) Distribution[T] {
	d, err := NewDistribution(values, weights)
	if err != nil {
		panic(err)
	}
	return d
}

// Draw picks one value.
func (d Distribution[T]) Draw(r *rand.Rand) T {
	return d.Values[d.Weights.Index(r)]
}

// Ratings are the star values a review can carry.
var Ratings = []int{1, 2, 3, 4, 5}

// Canonical distribution table. Every generator and the augmenter draw from
// these values; call sites never declare their own weights.
var (
	// DefaultRatingWeights skews synthetic reviews toward 3-5 stars.
	DefaultRatingWeights = MustWeights(12, 13, 25, 25, 25)
	// AppStoreFallbackRatingWeights backs synthetic rows that replace app-store reviews.
	AppStoreFallbackRatingWeights = MustWeights(10, 15, 25, 25, 25)

	SexDistribution            = mustDistribution([]string{"Male", "Female"}, MustWeights(48, 52))
	ProductsNumberDistribution = mustDistribution([]int{1, 2, 3, 4, 5}, MustWeights(30, 30, 20, 15, 5))
	CreditCardDistribution     = mustDistribution([]int{0, 1}, MustWeights(40, 60))
	ActiveMemberDistribution   = mustDistribution([]int{0, 1}, MustWeights(30, 70))
)

// RatingDistribution builds a distribution over Ratings.
func RatingDistribution(weights Weights) (Distribution[int], error) {
	return NewDistribution(Ratings, weights)
}

// intBetween draws uniformly from [lo, hi].
func intBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

package generator

import (
	"math"
	"math/rand"

	"github.com/vanshika/bankreviews/internal/domain"
)

// DefaultAugmentSeed seeds the augmentation pass of a pipeline run.
const DefaultAugmentSeed int64 = 42

// Profiles draws n customer profiles from a generator seeded with seed. The
// result depends only on (n, seed). Attributes are drawn column by column,
// so every age is known before any tenure is drawn.
func Profiles(n int, seed int64) []domain.CustomerProfile {
	r := rand.New(rand.NewSource(seed))
	profiles := make([]domain.CustomerProfile, n)

	for i := range profiles {
		profiles[i].Sex = SexDistribution.Draw(r)
	}
	for i := range profiles {
		profiles[i].Age = intBetween(r, domain.MinAge, domain.MaxAge)
	}
	for i := range profiles {
		profiles[i].Tenure = intBetween(r, 0, domain.MaxTenureForAge(profiles[i].Age))
	}
	for i := range profiles {
		profiles[i].CreditScore = intBetween(r, domain.MinCreditScore, domain.MaxCreditScore)
	}
	for i := range profiles {
		profiles[i].Balance = math.Round(r.Float64() * domain.MaxBalanceVND)
	}
	for i := range profiles {
		profiles[i].ProductsNumber = ProductsNumberDistribution.Draw(r)
	}
	for i := range profiles {
		profiles[i].CreditCard = CreditCardDistribution.Draw(r)
	}
	for i := range profiles {
		profiles[i].ActiveMember = ActiveMemberDistribution.Draw(r)
	}
	return profiles
}

// Augment attaches a synthetic profile to every review and returns the same
// slice. Existing review fields are left untouched.
func Augment(reviews []domain.Review, seed int64) []domain.Review {
	profiles := Profiles(len(reviews), seed)
	for i := range reviews {
		reviews[i].Profile = &profiles[i]
	}
	return reviews
}

package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vanshika/bankreviews/internal/domain"
	"github.com/vanshika/bankreviews/internal/generator"
	"github.com/vanshika/bankreviews/internal/tracing"
)

// Source produces the review rows of one bank on one platform. An
// unavailable live source is never reported as an error: the rows are
// replaced by synthetic ones. Errors are reserved for misconfiguration.
type Source interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, bank domain.Bank) ([]domain.Review, error)
}

// HTTPDoer is the subset of *http.Client used by the live clients.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fallback substitutes synthetic rows for a live source that produced nothing.
type Fallback struct {
	Generator     *generator.Generator
	Count         int
	RatingWeights generator.Weights
	DaysBack      int
}

// Reviews generates the fallback batch tagged with the platform's fallback tag.
func (f Fallback) Reviews(bankName string, platform domain.Platform) ([]domain.Review, error) {
	if f.Generator == nil {
		return nil, fmt.Errorf("fallback for %s/%s: generator is not configured", bankName, platform)
	}
	return f.Generator.Generate(generator.Request{
		BankName:      bankName,
		Platform:      platform.Fallback(),
		Count:         f.Count,
		RatingWeights: f.RatingWeights,
		DaysBack:      f.DaysBack,
	})
}

// liveFetch is the live half of a fetcher: rows gathered, and the reason
// gathering stopped when it produced nothing.
type liveFetch func(ctx context.Context, bank domain.Bank) ([]domain.Review, error)

// fetchWithFallback runs live and switches to fallback when it yields no rows.
func fetchWithFallback(
	ctx context.Context,
	logger *slog.Logger,
	tracer *tracing.Tracer,
	platform domain.Platform,
	bank domain.Bank,
	live liveFetch,
	fallback Fallback,
) ([]domain.Review, error) {
	ctx, span := tracer.Start(ctx, "source.fetch",
		attribute.String("bank", bank.Name),
		attribute.String("platform", string(platform)),
	)

	rows, liveErr := live(ctx, bank)
	if len(rows) > 0 {
		if liveErr != nil {
			logger.Debug("live fetch stopped early", "bank", bank.Name, "platform", platform, "rows", len(rows), "reason", liveErr)
		}
		span.SetAttributes(attribute.Int("rows", len(rows)), attribute.Bool("fallback", false))
		tracing.End(span, nil)
		return rows, nil
	}

	if liveErr == nil {
		liveErr = unavailable(ErrNoReviews)
	}
	logger.Info("falling back to synthetic reviews", "bank", bank.Name, "platform", platform, "reason", liveErr)

	rows, err := fallback.Reviews(bank.Name, platform)
	span.SetAttributes(attribute.Int("rows", len(rows)), attribute.Bool("fallback", true))
	tracing.End(span, err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

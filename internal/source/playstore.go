package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vanshika/bankreviews/internal/domain"
	"github.com/vanshika/bankreviews/internal/logging"
	"github.com/vanshika/bankreviews/internal/tracing"
)

// PlayStoreFetcher lists the newest play-store reviews of a bank.
type PlayStoreFetcher struct {
	client   *PlayStoreClient
	count    int
	fallback Fallback
	logger   *slog.Logger
	tracer   *tracing.Tracer
}

// NewPlayStoreFetcher builds a fetcher asking for up to count reviews per bank.
func NewPlayStoreFetcher(client *PlayStoreClient, count int, fallback Fallback, logger *slog.Logger, tracer *tracing.Tracer) *PlayStoreFetcher {
	if count <= 0 {
		count = playMaxPageSize
	}
	return &PlayStoreFetcher{
		client:   client,
		count:    count,
		fallback: fallback,
		logger:   logging.OrDiscard(logger).With("component", "playstore"),
		tracer:   tracing.OrNoop(tracer),
	}
}

func (f *PlayStoreFetcher) Platform() domain.Platform {
	return domain.PlatformPlayStore
}

// Fetch returns live reviews, or the fallback batch when the bank has no
// package id, the call fails, or it yields nothing.
func (f *PlayStoreFetcher) Fetch(ctx context.Context, bank domain.Bank) ([]domain.Review, error) {
	return fetchWithFallback(ctx, f.logger, f.tracer, domain.PlatformPlayStore, bank, f.live, f.fallback)
}

// live is a single attempt: any failed page discards the whole listing.
func (f *PlayStoreFetcher) live(ctx context.Context, bank domain.Bank) ([]domain.Review, error) {
	if !bank.HasPlayStoreApp() {
		return nil, unavailable(ErrNoIdentifier)
	}
	if f.client == nil {
		return nil, unavailable(fmt.Errorf("play store client is not configured"))
	}

	var (
		reviews []domain.Review
		skipped SkippedEntries
		token   string
	)
	for len(reviews) < f.count {
		page, err := f.client.Page(ctx, *bank.PlayPackageID, min(f.count-len(reviews), playMaxPageSize), token)
		if err != nil {
			return nil, unavailable(err)
		}
		before := len(reviews)
		for _, raw := range page.Reviews {
			review, err := normalizePlayReview(raw, bank.Name)
			if err != nil {
				skipped.add(err)
				continue
			}
			reviews = append(reviews, review)
		}
		// A page without usable rows or a repeated token would page forever.
		if page.Token == "" || page.Token == token || len(reviews) == before {
			break
		}
		token = page.Token
	}

	if err := skipped.asError(); err != nil {
		f.logger.Debug("skipped play reviews", "bank", bank.Name, "count", skipped.Len(), "error", err)
	}
	if len(reviews) > f.count {
		reviews = reviews[:f.count]
	}
	return reviews, nil
}

// normalizePlayReview maps the external score straight into the rating; the
// churn flag is derived from that rating only.
func normalizePlayReview(raw playReview, bankName string) (domain.Review, error) {
	id := raw.id()
	if id == "" {
		return domain.Review{}, errMissingID
	}
	rating, err := normalizeScore(raw.score())
	if err != nil {
		return domain.Review{}, fmt.Errorf("review %s: %w", id, err)
	}
	return domain.NewReview(id, dateFromEpoch(raw.epochSeconds()), bankName, rating, domain.PlatformPlayStore, domain.DataSourceLive), nil
}

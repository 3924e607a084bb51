package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vanshika/bankreviews/internal/domain"
	"github.com/vanshika/bankreviews/internal/logging"
	"github.com/vanshika/bankreviews/internal/tracing"
)

// AppStoreFetcher pages through the app-store review feed of a bank.
type AppStoreFetcher struct {
	client   *AppStoreClient
	pages    int
	fallback Fallback
	logger   *slog.Logger
	tracer   *tracing.Tracer
}

// NewAppStoreFetcher builds a fetcher reading up to pages feed pages per bank.
func NewAppStoreFetcher(client *AppStoreClient, pages int, fallback Fallback, logger *slog.Logger, tracer *tracing.Tracer) *AppStoreFetcher {
	if pages <= 0 {
		pages = 1
	}
	return &AppStoreFetcher{
		client:   client,
		pages:    pages,
		fallback: fallback,
		logger:   logging.OrDiscard(logger).With("component", "appstore"),
		tracer:   tracing.OrNoop(tracer),
	}
}

func (f *AppStoreFetcher) Platform() domain.Platform {
	return domain.PlatformAppStore
}

// Fetch returns live feed reviews, or the fallback batch when the bank has
// no app-store id or the feed yields nothing.
func (f *AppStoreFetcher) Fetch(ctx context.Context, bank domain.Bank) ([]domain.Review, error) {
	return fetchWithFallback(ctx, f.logger, f.tracer, domain.PlatformAppStore, bank, f.live, f.fallback)
}

// live reads pages sequentially. It stops at the first failed page, and at
// the first page without usable entries once some rows were collected.
func (f *AppStoreFetcher) live(ctx context.Context, bank domain.Bank) ([]domain.Review, error) {
	if !bank.HasAppStoreApp() {
		return nil, unavailable(ErrNoIdentifier)
	}
	if f.client == nil {
		return nil, unavailable(fmt.Errorf("app store client is not configured"))
	}

	var (
		reviews []domain.Review
		skipped SkippedEntries
	)
	for page := 1; page <= f.pages; page++ {
		entries, err := f.client.Page(ctx, *bank.AppStoreID, page)
		if err != nil {
			f.logSkipped(bank, &skipped)
			return reviews, unavailable(err)
		}

		batch := normalizeFeedEntries(entries, bank.Name, &skipped)
		if len(batch) == 0 {
			if len(reviews) > 0 {
				break
			}
			continue
		}
		reviews = append(reviews, batch...)
	}

	f.logSkipped(bank, &skipped)
	return reviews, nil
}

func (f *AppStoreFetcher) logSkipped(bank domain.Bank, skipped *SkippedEntries) {
	if err := skipped.asError(); err != nil {
		f.logger.Debug("skipped feed entries", "bank", bank.Name, "count", skipped.Len(), "error", err)
	}
}

func normalizeFeedEntries(entries []rssEntry, bankName string, skipped *SkippedEntries) []domain.Review {
	batch := make([]domain.Review, 0, len(entries))
	for _, e := range entries {
		review, err := normalizeFeedEntry(e, bankName)
		if err != nil {
			skipped.add(err)
			continue
		}
		batch = append(batch, review)
	}
	return batch
}

func normalizeFeedEntry(e rssEntry, bankName string) (domain.Review, error) {
	if e.Rating == nil {
		return domain.Review{}, errMissingRating
	}
	rating, err := normalizeRating(e.Rating.Label)
	if err != nil {
		return domain.Review{}, err
	}
	id := lastPathSegment(e.ID.Label)
	if id == "" {
		return domain.Review{}, errMissingID
	}
	return domain.NewReview(id, parseDatePrefix(e.Updated.Label), bankName, rating, domain.PlatformAppStore, domain.DataSourceLive), nil
}

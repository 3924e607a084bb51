package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vanshika/bankreviews/internal/config"
	"github.com/vanshika/bankreviews/internal/domain"
	"github.com/vanshika/bankreviews/internal/generator"
	"github.com/vanshika/bankreviews/internal/logging"
	"github.com/vanshika/bankreviews/internal/registry"
	"github.com/vanshika/bankreviews/internal/source"
	"github.com/vanshika/bankreviews/internal/tracing"
)

// Pipeline fetches every bank from every source, merges the batches,
// augments them once and writes the result.
type Pipeline struct {
	cfg      Config
	sources  []source.Source
	logger   *slog.Logger
	tracer   *tracing.Tracer
	progress io.Writer
}

// New returns a Pipeline invoking sources in the given order for each bank.
func New(cfg Config, sources []source.Source, logger *slog.Logger, tracer *tracing.Tracer) *Pipeline {
	if len(cfg.Columns) == 0 {
		cfg.Columns = DefaultConfig().Columns
	}
	return &Pipeline{
		cfg:      cfg,
		sources:  sources,
		logger:   logging.OrDiscard(logger).With("component", "pipeline"),
		tracer:   tracing.OrNoop(tracer),
		progress: io.Discard,
	}
}

// WithProgress sets the writer receiving per bank console notices.
func (p *Pipeline) WithProgress(w io.Writer) *Pipeline {
	if w != nil {
		p.progress = w
	}
	return p
}

// NewSources wires the app-store, play-store and social sources in their
// fixed order. All three share gen, so synthetic rows form one stream.
func NewSources(cfg Config, sc config.SourcesConfig, client *http.Client, gen *generator.Generator, logger *slog.Logger, tracer *tracing.Tracer) []source.Source {
	if client == nil {
		client = &http.Client{Timeout: sc.HTTPTimeout}
	}
	appStore := source.NewAppStoreFetcher(
		source.NewAppStoreClient(sc.AppStoreBaseURL, sc.Country, client),
		cfg.AppStorePages,
		source.Fallback{
			Generator:     gen,
			Count:         cfg.AppStoreFallbackCount,
			RatingWeights: cfg.AppStoreFallbackWeights,
			DaysBack:      cfg.DaysBack,
		},
		logger, tracer,
	)
	playStore := source.NewPlayStoreFetcher(
		source.NewPlayStoreClient(sc.PlayStoreBaseURL, sc.Country, sc.Language, client),
		cfg.PlayStoreReviews,
		source.Fallback{
			Generator:     gen,
			Count:         cfg.PlayStoreFallbackCount,
			RatingWeights: cfg.PlayStoreFallbackWeights,
			DaysBack:      cfg.DaysBack,
		},
		logger, tracer,
	)
	social := source.NewSocialFeed(gen, cfg.SocialReviews, tracer)
	return []source.Source{appStore, playStore, social}
}

// Merge runs every source for every bank, in registry order, and
// concatenates the batches without augmenting them.
func (p *Pipeline) Merge(ctx context.Context, banks []domain.Bank) ([]domain.Review, error) {
	if len(banks) == 0 {
		return nil, registry.ErrEmptyRegistry
	}

	var merged []domain.Review
	for _, bank := range banks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch, err := p.fetchBank(ctx, bank)
		if err != nil {
			return nil, err
		}
		merged = append(merged, batch...)
	}
	return merged, nil
}

func (p *Pipeline) fetchBank(ctx context.Context, bank domain.Bank) (batch []domain.Review, err error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.bank", attribute.String("bank", bank.Name))
	defer func() { tracing.End(span, err) }()

	fmt.Fprintf(p.progress, "Processing %s\n", bank.Name)
	for _, src := range p.sources {
		fmt.Fprintf(p.progress, "  -> %s\n", src.Platform())
		rows, err := src.Fetch(ctx, bank)
		if err != nil {
			return nil, fmt.Errorf("%s for %s: %w", src.Platform(), bank.Name, err)
		}
		batch = append(batch, rows...)
	}
	fmt.Fprintf(p.progress, "  total reviews for %s: %d\n", bank.Name, len(batch))
	p.logger.Debug("bank collected", "bank", bank.Name, "rows", len(batch))
	span.SetAttributes(attribute.Int("rows", len(batch)))
	return batch, nil
}

// Collect merges every batch and augments the combined table in a single
// pass, so the profile draws form one seeded stream over all rows.
func (p *Pipeline) Collect(ctx context.Context, banks []domain.Bank) ([]domain.Review, error) {
	merged, err := p.Merge(ctx, banks)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(p.progress, "Adding synthetic customer features to %d reviews\n", len(merged))
	return generator.Augment(merged, p.cfg.AugmentSeed), nil
}

// Run collects all banks and writes the canonical columns to outputPath.
// Nothing is written unless collection completes.
func (p *Pipeline) Run(ctx context.Context, banks []domain.Bank, outputPath string) (summary Summary, err error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.run", attribute.Int("banks", len(banks)))
	defer func() { tracing.End(span, err) }()

	rows, err := p.Collect(ctx, banks)
	if err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	columns := SelectColumns(p.cfg.Columns, rows)
	if err := WriteCSV(outputPath, columns, rows); err != nil {
		return Summary{}, err
	}

	summary = Summarize(rows)
	summary.OutputPath = outputPath
	summary.Columns = columns
	span.SetAttributes(attribute.Int("rows", summary.Rows))
	p.logger.Info("dataset written", "path", outputPath, "rows", summary.Rows, "banks", summary.Banks, "churn_rate", summary.ChurnRate)
	return summary, nil
}

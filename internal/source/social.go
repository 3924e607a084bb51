package source

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vanshika/bankreviews/internal/domain"
	"github.com/vanshika/bankreviews/internal/generator"
	"github.com/vanshika/bankreviews/internal/tracing"
)

// SocialFeed stands in for the social-media source, which has no public
// API: every row comes from the synthetic generator.
type SocialFeed struct {
	generator *generator.Generator
	count     int
	tracer    *tracing.Tracer
}

// NewSocialFeed builds a feed producing count reviews per bank.
func NewSocialFeed(gen *generator.Generator, count int, tracer *tracing.Tracer) *SocialFeed {
	return &SocialFeed{generator: gen, count: count, tracer: tracing.OrNoop(tracer)}
}

func (s *SocialFeed) Platform() domain.Platform {
	return domain.PlatformFacebook
}

func (s *SocialFeed) Fetch(ctx context.Context, bank domain.Bank) ([]domain.Review, error) {
	_, span := s.tracer.Start(ctx, "source.fetch",
		attribute.String("bank", bank.Name),
		attribute.String("platform", string(domain.PlatformFacebook)),
	)
	if s.generator == nil {
		err := fmt.Errorf("social feed for %s: generator is not configured", bank.Name)
		tracing.End(span, err)
		return nil, err
	}
	rows, err := s.generator.Generate(generator.Request{
		BankName: bank.Name,
		Platform: domain.PlatformFacebook,
		Count:    s.count,
	})
	span.SetAttributes(attribute.Int("rows", len(rows)))
	tracing.End(span, err)
	return rows, err
}

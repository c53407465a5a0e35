package queries

import (
	"context"

	"logiflow/internal/core/ports"
)

// ListQuotesQueryHandler reads quotes back through the quote repository.
// Stored records that no longer form a valid quote are skipped by the repository.
type ListQuotesQueryHandler struct {
	quoteRepo ports.QuoteRepository
}

// NewListQuotesQueryHandler creates a handler for quote listing.
func NewListQuotesQueryHandler(quoteRepo ports.QuoteRepository) ListQuotesQueryHandler {
	return ListQuotesQueryHandler{quoteRepo: quoteRepo}
}

// Handle returns up to query.Limit() quotes in store order.
func (h ListQuotesQueryHandler) Handle(ctx context.Context, query ListQuotesQuery) ([]ListQuotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "ListQuotes")
	defer span.End()

	quotes, err := h.quoteRepo.List(ctx, query.Limit())
	if err != nil {
		return nil, failSpan(span, err)
	}

	result := make([]ListQuotesQueryResponse, 0, len(quotes))
	for _, q := range quotes {
		result = append(result, ListQuotesQueryResponse{
			Origin:      q.Route().Origin(),
			Destination: q.Route().Destination(),
			Mode:        q.Mode().String(),
			WeightKg:    q.Cargo().WeightKg(),
			VolumeCbm:   q.Cargo().VolumeCbm(),
			PriceUSD:    q.PriceUSD(),
			ETADays:     q.ETADays(),
		})
	}

	return result, nil
}

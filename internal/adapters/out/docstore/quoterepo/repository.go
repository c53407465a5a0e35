package quoterepo

import (
	"context"
	"log/slog"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/domain/model/quote"
	"logiflow/internal/core/ports"
)

var _ ports.QuoteRepository = (*DocumentQuoteRepository)(nil)

// DocumentQuoteRepository implements QuoteRepository over a DocumentStore.
type DocumentQuoteRepository struct {
	store  ports.DocumentStore
	logger *slog.Logger
}

// NewDocumentQuoteRepository creates a new quote repository.
func NewDocumentQuoteRepository(store ports.DocumentStore, logger *slog.Logger) *DocumentQuoteRepository {
	return &DocumentQuoteRepository{
		store:  store,
		logger: logger.With("component", "quote-repository"),
	}
}

// Add saves a new quote.
func (r *DocumentQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	return r.store.CreateDocument(ctx, ports.QuoteCollection, fromDomain(aggregate))
}

// List retrieves up to limit quotes. Documents that do not decode into a quote are skipped.
func (r *DocumentQuoteRepository) List(ctx context.Context, limit int) ([]*quote.Quote, error) {
	docs, err := r.store.GetDocuments(ctx, ports.QuoteCollection, nil, limit)
	if err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(docs))
	for _, doc := range docs {
		q, decodeErr := toDomain(doc)
		if decodeErr != nil {
			r.logger.WarnContext(ctx, "skipping undecodable quote",
				"id", doc[docstore.IDField],
				"error", decodeErr,
			)
			continue
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

package commands

import (
	"context"
	"log/slog"

	"logiflow/internal/core/domain/model/quote"
	"logiflow/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// CreateQuoteCommandHandler prices a freight request and stores the resulting quote.
//
// Example:
//
//	handler := NewCreateQuoteCommandHandler(quoteRepo, services.NewQuoteEngine(), logger)
//	cmd, _ := NewCreateQuoteCommand("Shanghai", "Rotterdam", "air", 10, 2)
//
//	q, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quote failed: %w", err)
//	}
//	// q.PriceUSD() == 146.0, q.ETADays() == 3
type CreateQuoteCommandHandler struct {
	quoteRepo ports.QuoteRepository
	pricer    quote.Pricer
	logger    *slog.Logger
}

// NewCreateQuoteCommandHandler creates a handler for quote creation.
func NewCreateQuoteCommandHandler(
	quoteRepo ports.QuoteRepository,
	pricer quote.Pricer,
	logger *slog.Logger,
) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{
		quoteRepo: quoteRepo,
		pricer:    pricer,
		logger:    logger.With("component", "create-quote-handler"),
	}
}

// Handle computes price and ETA, persists the quote and returns it.
// The store identifier is not part of the returned quote.
func (h CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) (*quote.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "CreateQuote")
	defer span.End()
	span.SetAttributes(attribute.String("quote.mode", cmd.Mode().String()))

	q, err := quote.NewQuote(cmd.Route(), cmd.Mode(), cmd.Cargo(), h.pricer)
	if err != nil {
		return nil, failSpan(span, err)
	}

	id, err := h.quoteRepo.Add(ctx, q)
	if err != nil {
		return nil, failSpan(span, err)
	}

	h.logger.InfoContext(ctx, "quote created",
		"id", id,
		"mode", q.Mode().String(),
		"price_usd", q.PriceUSD(),
		"eta_days", q.ETADays(),
	)
	return q, nil
}

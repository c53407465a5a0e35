package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	httpin "logiflow/internal/adapters/in/http"
	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/adapters/out/docstore/quoterepo"
	"logiflow/internal/adapters/out/docstore/shipmentrepo"
	"logiflow/internal/adapters/out/docstore/trackingrepo"
	"logiflow/internal/adapters/out/mongo"
	"logiflow/internal/adapters/out/postgres"
	"logiflow/internal/core/application/usecases/commands"
	"logiflow/internal/core/application/usecases/queries"
	"logiflow/internal/core/domain/services"
	"logiflow/internal/core/ports"
)

// ConnectTimeout bounds the store connection attempt made at startup.
const ConnectTimeout = 10 * time.Second

// ErrUnsupportedDatabaseURL is returned for a DATABASE_URL with an unknown scheme.
var ErrUnsupportedDatabaseURL = errors.New("unsupported DATABASE_URL scheme")

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	store     ports.DocumentStore
	inspector ports.StoreInspector
	closer    func(context.Context) error
}

// NewCompositionRoot opens the document store named by cfg.DatabaseURL.
//
// The service always starts: without a DATABASE_URL, or when the store cannot
// be reached, it runs in degraded mode where every store operation fails with
// errs.ErrStorageUnavailable.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		closer: func(context.Context) error { return nil },
	}

	if cfg.DatabaseURL == "" {
		logger.WarnContext(ctx, "DATABASE_URL is not set, running without a document store")
		root.store = docstore.NewUnavailableStore(nil)
		return root
	}

	connectCtx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	if err := root.openStore(connectCtx); err != nil {
		logger.ErrorContext(ctx, "document store is unavailable, running in degraded mode", "error", err)
		root.store = docstore.NewUnavailableStore(err)
		root.inspector = nil
		return root
	}

	logger.InfoContext(ctx, "document store connected", "database", root.inspector.DatabaseName())
	return root
}

func (c *CompositionRoot) openStore(ctx context.Context) error {
	switch scheme := databaseScheme(c.cfg.DatabaseURL); scheme {
	case "mongodb", "mongodb+srv":
		store, err := mongo.Connect(ctx, c.cfg.DatabaseURL, c.cfg.DatabaseName)
		if err != nil {
			return err
		}
		c.store, c.inspector, c.closer = store, store, store.Close
	case "postgres", "postgresql":
		store, err := postgres.Open(ctx, c.cfg.DatabaseURL)
		if err != nil {
			return err
		}
		c.store, c.inspector = store, store
		c.closer = func(context.Context) error { return store.Close() }
	case "memory":
		store := docstore.NewMemoryStore(c.cfg.DatabaseName)
		c.store, c.inspector = store, store
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDatabaseURL, scheme)
	}
	return nil
}

func databaseScheme(url string) string {
	scheme, _, found := strings.Cut(url, "://")
	if !found {
		return ""
	}
	return strings.ToLower(scheme)
}

// Close releases the document store connection.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return c.closer(ctx)
}

func (c *CompositionRoot) quoteRepository() ports.QuoteRepository {
	return quoterepo.NewDocumentQuoteRepository(c.store, c.logger)
}

func (c *CompositionRoot) shipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewDocumentShipmentRepository(c.store)
}

func (c *CompositionRoot) trackingEventRepository() ports.TrackingEventRepository {
	return trackingrepo.NewDocumentTrackingEventRepository(c.store, c.logger)
}

func (c *CompositionRoot) CreateCreateQuoteCommandHandler() commands.CreateQuoteCommandHandler {
	return commands.NewCreateQuoteCommandHandler(c.quoteRepository(), services.NewQuoteEngine(), c.logger)
}

func (c *CompositionRoot) CreateBookShipmentCommandHandler() commands.BookShipmentCommandHandler {
	return commands.NewBookShipmentCommandHandler(c.shipmentRepository(), c.trackingEventRepository(), c.logger)
}

func (c *CompositionRoot) CreateListQuotesQueryHandler() queries.ListQuotesQueryHandler {
	return queries.NewListQuotesQueryHandler(c.quoteRepository())
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.shipmentRepository())
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.trackingEventRepository())
}

func (c *CompositionRoot) CreateGetDiagnosticsQueryHandler() queries.GetDiagnosticsQueryHandler {
	return queries.NewGetDiagnosticsQueryHandler(c.inspector, c.cfg.DatabaseURL != "")
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateQuoteCommandHandler(),
		c.CreateBookShipmentCommandHandler(),
		c.CreateListQuotesQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.CreateGetTrackingQueryHandler(),
		c.CreateGetDiagnosticsQueryHandler(),
	)
}

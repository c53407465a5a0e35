package http

import (
	"errors"
	"net/http"

	"logiflow/internal/core/application/usecases/commands"
	"logiflow/internal/core/application/usecases/queries"
	"logiflow/internal/core/domain/model/quote"
	"logiflow/internal/core/domain/model/shipment"
	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// RootMessage is returned by GET /.
const RootMessage = "LogiFlow backend running"

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Errors are returned to echo and rendered by NewHTTPErrorHandler.
type Server struct {
	// Command handlers
	createQuoteHandler  commands.CreateQuoteCommandHandler
	bookShipmentHandler commands.BookShipmentCommandHandler

	// Query handlers
	listQuotesHandler     queries.ListQuotesQueryHandler
	listShipmentsHandler  queries.ListShipmentsQueryHandler
	getTrackingHandler    queries.GetTrackingQueryHandler
	getDiagnosticsHandler queries.GetDiagnosticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createQuoteHandler commands.CreateQuoteCommandHandler,
	bookShipmentHandler commands.BookShipmentCommandHandler,
	listQuotesHandler queries.ListQuotesQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
	getDiagnosticsHandler queries.GetDiagnosticsQueryHandler,
) *Server {
	return &Server{
		createQuoteHandler:    createQuoteHandler,
		bookShipmentHandler:   bookShipmentHandler,
		listQuotesHandler:     listQuotesHandler,
		listShipmentsHandler:  listShipmentsHandler,
		getTrackingHandler:    getTrackingHandler,
		getDiagnosticsHandler: getDiagnosticsHandler,
	}
}

// GetRoot handles GET / - reports that the service is up. It never touches the store.
func (s *Server) GetRoot(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Message{Message: RootMessage})
}

// GetDiagnostics handles GET /test - describes the store connection.
func (s *Server) GetDiagnostics(ctx echo.Context) error {
	report, err := s.getDiagnosticsHandler.Handle(ctx.Request().Context(), queries.NewGetDiagnosticsQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Diagnostics{
		Backend:          report.Backend,
		Database:         report.Database,
		DatabaseURL:      report.DatabaseURL,
		DatabaseName:     report.DatabaseName,
		ConnectionStatus: report.ConnectionStatus,
		Collections:      report.Collections,
	})
}

// CreateQuote handles POST /api/quotes - prices and stores a quote.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var req QuoteRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateQuoteCommand(req.Origin, req.Destination, req.Mode, *req.WeightKg, *req.VolumeCbm)
	if err != nil {
		return err
	}

	q, err := s.createQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toQuote(q))
}

// ListQuotes handles GET /api/quotes - returns stored quotes.
func (s *Server) ListQuotes(ctx echo.Context, params ListParams) error {
	query, err := queries.NewListQuotesQuery(limitOrDefault(params))
	if err != nil {
		return err
	}

	quotes, err := s.listQuotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Quote, len(quotes))
	for i, q := range quotes {
		response[i] = Quote{
			Origin:      q.Origin,
			Destination: q.Destination,
			Mode:        q.Mode,
			WeightKg:    q.WeightKg,
			VolumeCbm:   q.VolumeCbm,
			PriceUSD:    q.PriceUSD,
			ETADays:     q.ETADays,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// BookShipment handles POST /api/shipments - books a shipment and records its first tracking event.
func (s *Server) BookShipment(ctx echo.Context) error {
	var req BookShipmentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewBookShipmentCommand(
		req.Origin, req.Destination, req.Mode,
		*req.WeightKg, *req.VolumeCbm,
		req.ShipperName, req.ShipperEmail,
	)
	if err != nil {
		return err
	}

	booked, err := s.bookShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toShipment(booked))
}

// ListShipments handles GET /api/shipments - returns stored shipment documents as they are.
func (s *Server) ListShipments(ctx echo.Context, params ListParams) error {
	query, err := queries.NewListShipmentsQuery(limitOrDefault(params))
	if err != nil {
		return err
	}

	docs, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, docs)
}

// GetTracking handles GET /api/track/{tracking_number} - returns the tracking history.
func (s *Server) GetTracking(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewGetTrackingQuery(trackingNumber)
	if err != nil {
		return err
	}

	history, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Tracking number not found",
		})
	}
	if err != nil {
		return err
	}

	events := make([]TrackingEvent, len(history.Events))
	for i, e := range history.Events {
		events[i] = TrackingEvent{
			TrackingNumber: e.TrackingNumber,
			Status:         e.Status,
			Location:       e.Location,
			Note:           e.Note,
			Timestamp:      e.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, Tracking{
		TrackingNumber: history.TrackingNumber,
		Events:         events,
	})
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

func limitOrDefault(params ListParams) int {
	if params.Limit == nil {
		return ports.DefaultListLimit
	}
	return *params.Limit
}

func toQuote(q *quote.Quote) Quote {
	return Quote{
		Origin:      q.Route().Origin(),
		Destination: q.Route().Destination(),
		Mode:        q.Mode().String(),
		WeightKg:    q.Cargo().WeightKg(),
		VolumeCbm:   q.Cargo().VolumeCbm(),
		PriceUSD:    q.PriceUSD(),
		ETADays:     q.ETADays(),
	}
}

func toShipment(s *shipment.Shipment) Shipment {
	return Shipment{
		TrackingNumber: s.TrackingNumber().String(),
		Origin:         s.Route().Origin(),
		Destination:    s.Route().Destination(),
		Mode:           s.Mode().String(),
		WeightKg:       s.Cargo().WeightKg(),
		VolumeCbm:      s.Cargo().VolumeCbm(),
		ShipperName:    s.ShipperName(),
		ShipperEmail:   s.ShipperEmail(),
		Status:         s.Status().String(),
		QuoteID:        s.QuoteID(),
	}
}

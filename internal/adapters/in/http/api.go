package http

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError explains why one request field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Message is the body of GET /.
type Message struct {
	Message string `json:"message"`
}

// Diagnostics is the body of GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// QuoteRequest describes a freight movement to be priced.
// Numbers are pointers so that a missing field is told apart from zero.
type QuoteRequest struct {
	Origin      string   `json:"origin"      validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	Mode        string   `json:"mode"        validate:"omitempty,oneof=air sea road"`
	WeightKg    *float64 `json:"weight_kg"   validate:"required,gt=0"`
	VolumeCbm   *float64 `json:"volume_cbm"  validate:"required,gt=0"`
}

// BookShipmentRequest is a QuoteRequest plus the booking party.
type BookShipmentRequest struct {
	QuoteRequest

	ShipperName  string `json:"shipper_name"  validate:"required"`
	ShipperEmail string `json:"shipper_email" validate:"required"`
}

// Quote is a priced freight movement.
type Quote struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Mode        string  `json:"mode"`
	WeightKg    float64 `json:"weight_kg"`
	VolumeCbm   float64 `json:"volume_cbm"`
	PriceUSD    float64 `json:"price_usd"`
	ETADays     int     `json:"eta_days"`
}

// Shipment is a booked freight movement.
type Shipment struct {
	TrackingNumber string  `json:"tracking_number"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Mode           string  `json:"mode"`
	WeightKg       float64 `json:"weight_kg"`
	VolumeCbm      float64 `json:"volume_cbm"`
	ShipperName    string  `json:"shipper_name"`
	ShipperEmail   string  `json:"shipper_email"`
	Status         string  `json:"status"`
	QuoteID        *string `json:"quote_id"`
}

// TrackingEvent is one entry of a tracking history.
type TrackingEvent struct {
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	Location       *string    `json:"location"`
	Note           *string    `json:"note"`
	Timestamp      *time.Time `json:"timestamp"`
}

// Tracking is the body of GET /api/track/{tracking_number}.
type Tracking struct {
	TrackingNumber string          `json:"tracking_number"`
	Events         []TrackingEvent `json:"events"`
}

// ListParams holds the query parameters of the list endpoints.
type ListParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Service liveness message
	// (GET /)
	GetRoot(ctx echo.Context) error
	// Store diagnostics
	// (GET /test)
	GetDiagnostics(ctx echo.Context) error
	// List stored quotes
	// (GET /api/quotes)
	ListQuotes(ctx echo.Context, params ListParams) error
	// Price a freight movement
	// (POST /api/quotes)
	CreateQuote(ctx echo.Context) error
	// List stored shipments
	// (GET /api/shipments)
	ListShipments(ctx echo.Context, params ListParams) error
	// Book a shipment
	// (POST /api/shipments)
	BookShipment(ctx echo.Context) error
	// Tracking history of a shipment
	// (GET /api/track/{tracking_number})
	GetTracking(ctx echo.Context, trackingNumber string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetRoot converts echo context to params.
func (w *ServerInterfaceWrapper) GetRoot(ctx echo.Context) error {
	return w.Handler.GetRoot(ctx)
}

// GetDiagnostics converts echo context to params.
func (w *ServerInterfaceWrapper) GetDiagnostics(ctx echo.Context) error {
	return w.Handler.GetDiagnostics(ctx)
}

// ListQuotes converts echo context to params.
func (w *ServerInterfaceWrapper) ListQuotes(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListQuotes(ctx, params)
}

// CreateQuote converts echo context to params.
func (w *ServerInterfaceWrapper) CreateQuote(ctx echo.Context) error {
	return w.Handler.CreateQuote(ctx)
}

// ListShipments converts echo context to params.
func (w *ServerInterfaceWrapper) ListShipments(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListShipments(ctx, params)
}

// BookShipment converts echo context to params.
func (w *ServerInterfaceWrapper) BookShipment(ctx echo.Context) error {
	return w.Handler.BookShipment(ctx)
}

// GetTracking converts echo context to params.
func (w *ServerInterfaceWrapper) GetTracking(ctx echo.Context) error {
	var trackingNumber string

	err := runtime.BindStyledParameterWithOptions("simple", "tracking_number", ctx.Param("tracking_number"),
		&trackingNumber, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return newParamError("tracking_number", fmt.Sprintf("Invalid format for parameter tracking_number: %s", err))
	}

	return w.Handler.GetTracking(ctx, trackingNumber)
}

func bindListParams(ctx echo.Context) (ListParams, error) {
	var params ListParams

	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return ListParams{}, newParamError("limit", "Invalid format for parameter limit: must be an integer")
	}

	return params, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET("/", wrapper.GetRoot)
	router.GET("/test", wrapper.GetDiagnostics)
	router.GET("/api/quotes", wrapper.ListQuotes)
	router.POST("/api/quotes", wrapper.CreateQuote)
	router.GET("/api/shipments", wrapper.ListShipments)
	router.POST("/api/shipments", wrapper.BookShipment)
	router.GET("/api/track/:tracking_number", wrapper.GetTracking)
}

// paramError is a request parameter that failed to bind.
type paramError struct {
	field   string
	message string
}

func newParamError(field, message string) *paramError {
	return &paramError{field: field, message: message}
}

func (e *paramError) Error() string {
	return e.message
}

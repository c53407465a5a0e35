package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// AllowOrigins lists the CORS origins; empty means any origin.
	AllowOrigins []string
	Logger       *slog.Logger
}

// NewRouter builds the echo instance serving the API, its documentation and metrics.
func NewRouter(ctx context.Context, server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwagger(docJSON)

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	metrics := NewMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	e.Use(
		middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: origins}),
		RequestLogger(cfg.Logger),
		metrics.Middleware(),
		middleware.Recover(),
	)

	RegisterHandlers(e, server)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

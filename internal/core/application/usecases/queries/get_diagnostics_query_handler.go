package queries

import (
	"context"
	"errors"

	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"
)

// GetDiagnosticsQueryHandler reports whether the document store is configured and answering.
// It never fails: store errors are rendered into the response.
type GetDiagnosticsQueryHandler struct {
	inspector      ports.StoreInspector
	databaseURLSet bool
}

// NewGetDiagnosticsQueryHandler creates a diagnostics handler. inspector is nil
// when the service runs without an initialized store.
func NewGetDiagnosticsQueryHandler(inspector ports.StoreInspector, databaseURLSet bool) GetDiagnosticsQueryHandler {
	return GetDiagnosticsQueryHandler{inspector: inspector, databaseURLSet: databaseURLSet}
}

// Handle builds the diagnostics report.
func (h GetDiagnosticsQueryHandler) Handle(ctx context.Context, query GetDiagnosticsQuery) (GetDiagnosticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDiagnosticsQueryResponse{}, err
	}

	ctx, span := tracer.Start(ctx, "GetDiagnostics")
	defer span.End()

	report := GetDiagnosticsQueryResponse{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
	}

	if h.inspector == nil {
		report.Database = DatabaseNotReady
		return report, nil
	}

	url := DatabaseURLNotSet
	if h.databaseURLSet {
		url = DatabaseURLSet
	}
	name := h.inspector.DatabaseName()
	report.DatabaseURL = &url
	report.DatabaseName = &name

	if err := h.inspector.Ping(ctx); err != nil {
		span.RecordError(err)
		report.Database = DatabaseErrorPrefix + reportedError(err)
		return report, nil
	}
	report.ConnectionStatus = StatusConnected

	collections, err := h.inspector.ListCollections(ctx)
	if err != nil {
		span.RecordError(err)
		report.Database = DatabaseErrorPrefix + reportedError(err)
		return report, nil
	}

	if len(collections) > MaxReportedCollection {
		collections = collections[:MaxReportedCollection]
	}
	if collections != nil {
		report.Collections = collections
	}
	report.Database = DatabaseWorking
	return report, nil
}

// reportedError is the store's own message: the StorageUnavailableError
// wrapper would use up the rune budget before the cause.
func reportedError(err error) string {
	var unavailable *errs.StorageUnavailableError
	if errors.As(err, &unavailable) && unavailable.Cause != nil {
		err = unavailable.Cause
	}
	return truncate(err.Error(), MaxReportedErrorRunes)
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

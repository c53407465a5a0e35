package queries

import (
	"errors"

	"logiflow/internal/pkg/guard"
)

var ErrGetDiagnosticsQueryIsNotConstructed = errors.New(
	"GetDiagnosticsQuery must be created via NewGetDiagnosticsQuery constructor",
)

// Diagnostic texts reported by GetDiagnosticsQueryHandler.
const (
	BackendRunning        = "✅ Running"
	DatabaseNotAvailable  = "❌ Not Available"
	DatabaseNotReady      = "⚠️  Available but not initialized"
	DatabaseWorking       = "✅ Connected & Working"
	DatabaseErrorPrefix   = "⚠️  Connected but Error: "
	DatabaseURLSet        = "✅ Set"
	DatabaseURLNotSet     = "❌ Not Set"
	StatusConnected       = "Connected"
	StatusNotConnected    = "Not Connected"
	MaxReportedCollection = 10
	MaxReportedErrorRunes = 50
)

// GetDiagnosticsQuery asks for a description of the service and its store.
type GetDiagnosticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDiagnosticsQuery creates a diagnostics query.
func NewGetDiagnosticsQuery() GetDiagnosticsQuery {
	return GetDiagnosticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDiagnosticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDiagnosticsQueryIsNotConstructed)
}

// GetDiagnosticsQueryResponse describes the running service.
// DatabaseURL and DatabaseName are nil when no store is initialized.
type GetDiagnosticsQueryResponse struct {
	Backend          string
	Database         string
	DatabaseURL      *string
	DatabaseName     *string
	ConnectionStatus string
	Collections      []string
}

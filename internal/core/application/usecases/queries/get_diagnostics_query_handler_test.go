package queries_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/application/usecases/queries"
	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStoreInspector struct{ mock.Mock }

func (m *MockStoreInspector) DatabaseName() string {
	return m.Called().String(0)
}

func (m *MockStoreInspector) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockStoreInspector) ListCollections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func TestGetDiagnosticsQueryHandler_NoStore(t *testing.T) {
	report, err := queries.NewGetDiagnosticsQueryHandler(nil, false).Handle(t.Context(), queries.NewGetDiagnosticsQuery())
	require.NoError(t, err)
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "⚠️  Available but not initialized", report.Database)
	assert.Nil(t, report.DatabaseURL)
	assert.Nil(t, report.DatabaseName)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Empty(t, report.Collections)
}

func TestGetDiagnosticsQueryHandler_WorkingStore(t *testing.T) {
	ctx := t.Context()
	store := docstore.NewMemoryStore("freight")
	for i := range 12 {
		_, err := store.CreateDocument(ctx, fmt.Sprintf("c%02d", i), ports.Document{})
		require.NoError(t, err)
	}

	report, err := queries.NewGetDiagnosticsQueryHandler(store, true).Handle(ctx, queries.NewGetDiagnosticsQuery())
	require.NoError(t, err)
	assert.Equal(t, "✅ Connected & Working", report.Database)
	require.NotNil(t, report.DatabaseURL)
	assert.Equal(t, "✅ Set", *report.DatabaseURL)
	require.NotNil(t, report.DatabaseName)
	assert.Equal(t, "freight", *report.DatabaseName)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Len(t, report.Collections, 10)
	assert.Equal(t, "c00", report.Collections[0])
}

func TestGetDiagnosticsQueryHandler_ListError_Truncated(t *testing.T) {
	inspector := new(MockStoreInspector)
	inspector.On("DatabaseName").Return("logiflow")
	inspector.On("Ping", mock.Anything).Return(nil)
	inspector.On("ListCollections", mock.Anything).Return([]string(nil), errors.New(strings.Repeat("x", 80)))

	report, err := queries.NewGetDiagnosticsQueryHandler(inspector, false).Handle(t.Context(), queries.NewGetDiagnosticsQuery())
	require.NoError(t, err)
	assert.Equal(t, "⚠️  Connected but Error: "+strings.Repeat("x", 50), report.Database)
	assert.Equal(t, "❌ Not Set", *report.DatabaseURL)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Empty(t, report.Collections)
	inspector.AssertExpectations(t)
}

func TestGetDiagnosticsQueryHandler_PingError(t *testing.T) {
	inspector := new(MockStoreInspector)
	inspector.On("DatabaseName").Return("logiflow")
	inspector.On("Ping", mock.Anything).Return(errors.New("server selection timeout"))

	report, err := queries.NewGetDiagnosticsQueryHandler(inspector, true).Handle(t.Context(), queries.NewGetDiagnosticsQuery())
	require.NoError(t, err)
	assert.Equal(t, "⚠️  Connected but Error: server selection timeout", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	inspector.AssertNotCalled(t, "ListCollections", mock.Anything)
}

func TestGetDiagnosticsQueryHandler_ListError_ReportsStoreCause(t *testing.T) {
	inspector := new(MockStoreInspector)
	inspector.On("DatabaseName").Return("logiflow")
	inspector.On("Ping", mock.Anything).Return(nil)
	inspector.On("ListCollections", mock.Anything).Return([]string(nil),
		errs.NewStorageUnavailableErrorWithCause("list collections", errors.New("connection reset by peer")))

	report, err := queries.NewGetDiagnosticsQueryHandler(inspector, true).Handle(t.Context(), queries.NewGetDiagnosticsQuery())
	require.NoError(t, err)
	assert.Equal(t, "⚠️  Connected but Error: connection reset by peer", report.Database)
	inspector.AssertExpectations(t)
}

package commands_test

import (
	"context"

	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/core/domain/model/quote"
	"logiflow/internal/core/domain/model/shipment"
	"logiflow/internal/core/domain/model/tracking"
	"logiflow/internal/core/domain/services"
	"logiflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, q *quote.Quote) (string, error) {
	args := m.Called(ctx, q)
	return args.String(0), args.Error(1)
}

func (m *MockQuoteRepository) List(ctx context.Context, limit int) ([]*quote.Quote, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*quote.Quote), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *MockShipmentRepository) ListRaw(ctx context.Context, limit int) ([]ports.Document, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ports.Document), args.Error(1)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Add(ctx context.Context, e *tracking.Event) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *MockTrackingEventRepository) FindByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) ([]*tracking.Event, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).([]*tracking.Event), args.Error(1)
}

type MockPricer struct{ mock.Mock }

func (m *MockPricer) Compute(mode kernel.Mode, cargo kernel.Cargo) (services.Estimate, error) {
	args := m.Called(mode, cargo)
	return args.Get(0).(services.Estimate), args.Error(1)
}

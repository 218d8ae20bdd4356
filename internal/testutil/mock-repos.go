package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

// MockChecklistRepo is a mock of ChecklistRepository.
type MockChecklistRepo struct {
	mock.Mock
}

func (m *MockChecklistRepo) Create(ctx context.Context, c *domain.Checklist) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChecklistRepo) List(ctx context.Context, r *domain.DateRange) ([]*domain.Checklist, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Checklist), args.Error(1)
}

func (m *MockChecklistRepo) Update(ctx context.Context, id uuid.UUID, upd ports.ChecklistUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockChecklistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleRepo is a mock of VehicleRepository.
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Upsert(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepo) List(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) Delete(ctx context.Context, licensePlate string) error {
	args := m.Called(ctx, licensePlate)
	return args.Error(0)
}

// MockNotifier is a mock of Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, fields map[string]string) error {
	args := m.Called(ctx, fields)
	return args.Error(0)
}

// MockImageHost is a mock of ImageHost.
type MockImageHost struct {
	mock.Mock
}

func (m *MockImageHost) Upload(ctx context.Context, imageBase64 string) (string, error) {
	args := m.Called(ctx, imageBase64)
	return args.String(0), args.Error(1)
}

// MockReportCache is a mock of ReportCache.
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Put(ctx context.Context, records []*domain.Checklist) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockReportCache) Get(ctx context.Context) ([]*domain.Checklist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Checklist), args.Error(1)
}

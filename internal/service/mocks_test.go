package service

import (
	"context"

	"laundry_service/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	if args.Error(0) == nil {
		customer.ID = "c-new"
	}
	return args.Error(0)
}

func (m *mockCustomerRepo) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	args := m.Called(ctx, phone)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	if args.Error(0) == nil {
		booking.ID = "b-new"
		booking.Status = model.BookingStatusPending
	}
	return args.Error(0)
}

func (m *mockBookingRepo) FindByCustomer(ctx context.Context, customerID string) ([]model.Booking, error) {
	args := m.Called(ctx, customerID)
	b, _ := args.Get(0).([]model.Booking)
	return b, args.Error(1)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) ListServices(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]model.Service)
	return s, args.Error(1)
}

func (m *mockCatalogRepo) CreateService(ctx context.Context, s *model.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockCatalogRepo) ListBeforeAfterItems(ctx context.Context) ([]model.BeforeAfterItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.BeforeAfterItem)
	return items, args.Error(1)
}

func (m *mockCatalogRepo) CreateBeforeAfterItem(ctx context.Context, item *model.BeforeAfterItem) error {
	return m.Called(ctx, item).Error(0)
}

package service

import (
	"context"
	"fmt"

	"laundry_service/internal/model"
	"laundry_service/internal/repository"
)

// BookingService defines booking operations for an authenticated customer
type BookingService interface {
	CreateBooking(ctx context.Context, customerID string, req model.CreateBookingRequest) (*model.Booking, error)
	GetCustomerBookings(ctx context.Context, customerID string) ([]model.Booking, error)
}

type bookingService struct {
	repo repository.BookingRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID string, req model.CreateBookingRequest) (*model.Booking, error) {
	booking := &model.Booking{
		CustomerID:  customerID,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		Address:     req.Address,
		Landmark:    req.Landmark,
		City:        req.City,
	}
	if booking.Landmark != nil && *booking.Landmark == "" {
		booking.Landmark = nil
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking in repo: %w", err)
	}
	return booking, nil
}

func (s *bookingService) GetCustomerBookings(ctx context.Context, customerID string) ([]model.Booking, error) {
	bookings, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer bookings from repo: %w", err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, nil
}

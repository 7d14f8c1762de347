package repository

import (
	"context"
	"fmt"

	"laundry_service/internal/model"
	"laundry_service/internal/utils"
)

// BookingRepository defines operations for booking data
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByCustomer(ctx context.Context, customerID string) ([]model.Booking, error)
}

type bookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a booking as pending; the database stamps created_at.
func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	b.ID = utils.NewRecordID()
	b.Status = model.BookingStatusPending
	sql := `INSERT INTO bookings (id, customer_id, booking_date, booking_time, address, landmark, city, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, b.ID, b.CustomerID, b.BookingDate, b.BookingTime, b.Address, b.Landmark, b.City, b.Status).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindByCustomer retrieves only the bookings owned by customerID, newest first
func (r *bookingRepository) FindByCustomer(ctx context.Context, customerID string) ([]model.Booking, error) {
	sql := `SELECT id, customer_id, booking_date, booking_time, address, COALESCE(landmark, ''), city, status, created_at
            FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by customer: %w", err)
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		var landmark string
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.BookingDate, &b.BookingTime, &b.Address, &landmark,
			&b.City, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		if landmark != "" {
			b.Landmark = &landmark
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}
	return bookings, nil
}

package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"laundry_service/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2024, 4, 20, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs(pgxmock.AnyArg(), "c1", "2024-05-01", "10:00", "12, MG Road", pgxmock.AnyArg(), "Pune", model.BookingStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	b := &model.Booking{
		CustomerID:  "c1",
		BookingDate: "2024-05-01",
		BookingTime: "10:00",
		Address:     "12, MG Road",
		City:        "Pune",
		Status:      model.BookingStatusCompleted, // overridden
	}
	require.NoError(t, NewBookingRepository(mock).Create(context.Background(), b))

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, model.BookingStatusPending, b.Status)
	assert.Equal(t, created, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WillReturnError(errors.New("db down"))

	err = NewBookingRepository(mock).Create(context.Background(), &model.Booking{CustomerID: "c1"})
	assert.ErrorContains(t, err, "failed to create booking")
}

func TestBookingRepository_FindByCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "customer_id", "booking_date", "booking_time", "address", "landmark", "city", "status", "created_at"}).
		AddRow("b2", "c1", "2024-05-02", "11:00", "12, MG Road", "Near temple", "Pune", "pending", now).
		AddRow("b1", "c1", "2024-05-01", "10:00", "12, MG Road", "", "Pune", "pending", now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`)).
		WithArgs("c1").
		WillReturnRows(rows)

	bookings, err := NewBookingRepository(mock).FindByCustomer(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "b2", bookings[0].ID)
	require.NotNil(t, bookings[0].Landmark)
	assert.Equal(t, "Near temple", *bookings[0].Landmark)
	assert.Nil(t, bookings[1].Landmark)
	for _, b := range bookings {
		assert.Equal(t, "c1", b.CustomerID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByCustomer_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE customer_id = $1`)).
		WithArgs("nobody").
		WillReturnRows(pgxmock.NewRows([]string{"id", "customer_id", "booking_date", "booking_time", "address", "landmark", "city", "status", "created_at"}))

	bookings, err := NewBookingRepository(mock).FindByCustomer(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

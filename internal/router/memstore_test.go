package router

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"laundry_service/internal/model"
	"laundry_service/internal/repository"
)

// memStore implements every repository interface in memory.
type memStore struct {
	mu        sync.Mutex
	seq       int
	customers map[string]model.Customer // by phone
	bookings  []model.Booking
	services  []model.Service
	gallery   []model.BeforeAfterItem
	fail      error
}

func newMemStore() *memStore {
	return &memStore{customers: map[string]model.Customer{}}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) Create(ctx context.Context, c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.customers[c.Phone]; ok {
		return repository.ErrDuplicatePhone
	}
	c.ID = m.nextID("cust")
	m.customers[c.Phone] = *c
	return nil
}

func (m *memStore) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	c, ok := m.customers[phone]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

type memBookings struct{ *memStore }

func (m memBookings) Create(ctx context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	b.ID = m.nextID("book")
	b.Status = model.BookingStatusPending
	b.CreatedAt = time.Now().UTC()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m memBookings) FindByCustomer(ctx context.Context, customerID string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	out := []model.Booking{}
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memCatalog struct{ *memStore }

func (m memCatalog) ListServices(ctx context.Context) ([]model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Service{}, m.services...), nil
}

func (m memCatalog) CreateService(ctx context.Context, s *model.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextID("svc")
	m.services = append(m.services, *s)
	return nil
}

func (m memCatalog) ListBeforeAfterItems(ctx context.Context) ([]model.BeforeAfterItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.BeforeAfterItem{}, m.gallery...), nil
}

func (m memCatalog) CreateBeforeAfterItem(ctx context.Context, item *model.BeforeAfterItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.nextID("ba")
	m.gallery = append(m.gallery, *item)
	return nil
}

var errStorageDown = errors.New("storage down")

package repository

import (
	"context"
	"fmt"

	"laundry_service/internal/model"
	"laundry_service/internal/utils"
)

// CatalogRepository defines operations for the read-only catalog tables
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	CreateService(ctx context.Context, s *model.Service) error
	ListBeforeAfterItems(ctx context.Context) ([]model.BeforeAfterItem, error)
	CreateBeforeAfterItem(ctx context.Context, item *model.BeforeAfterItem) error
}

type catalogRepository struct {
	db DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, price_inr FROM services`)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.PriceInr); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}
	return services, nil
}

func (r *catalogRepository) CreateService(ctx context.Context, s *model.Service) error {
	id := utils.NewRecordID()
	sql := `INSERT INTO services (id, title, description, price_inr) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, sql, id, s.Title, s.Description, s.PriceInr); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	s.ID = id
	return nil
}

func (r *catalogRepository) ListBeforeAfterItems(ctx context.Context) ([]model.BeforeAfterItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, before_image_url, after_image_url FROM before_after_items`)
	if err != nil {
		return nil, fmt.Errorf("failed to query before/after items: %w", err)
	}
	defer rows.Close()

	items := []model.BeforeAfterItem{}
	for rows.Next() {
		var it model.BeforeAfterItem
		if err := rows.Scan(&it.ID, &it.Title, &it.BeforeImageURL, &it.AfterImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan before/after row: %w", err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating before/after rows: %w", err)
	}
	return items, nil
}

func (r *catalogRepository) CreateBeforeAfterItem(ctx context.Context, item *model.BeforeAfterItem) error {
	id := utils.NewRecordID()
	sql := `INSERT INTO before_after_items (id, title, before_image_url, after_image_url) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, sql, id, item.Title, item.BeforeImageURL, item.AfterImageURL); err != nil {
		return fmt.Errorf("failed to create before/after item: %w", err)
	}
	item.ID = id
	return nil
}

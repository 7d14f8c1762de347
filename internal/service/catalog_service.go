package service

import (
	"context"
	"fmt"

	"laundry_service/internal/model"
	"laundry_service/internal/repository"

	"go.uber.org/zap"
)

var defaultServices = []model.Service{
	{Title: "Wash & Fold", Description: "Everyday laundry washed, dried, and neatly folded.", PriceInr: 99},
	{Title: "Ironing", Description: "Crisp ironing for shirts, pants, sarees, and more.", PriceInr: 25},
	{Title: "Dry Cleaning", Description: "Gentle care for delicate and special fabrics.", PriceInr: 199},
	{Title: "Express Service", Description: "Priority processing for urgent orders.", PriceInr: 149},
}

var defaultBeforeAfterItems = []model.BeforeAfterItem{
	{
		Title:          "Stain removal (white shirt)",
		BeforeImageURL: "https://images.unsplash.com/photo-1520975958225-2ee0f2b5a1aa?auto=format&fit=crop&w=1200&q=80",
		AfterImageURL:  "https://images.unsplash.com/photo-1520975958225-2ee0f2b5a1aa?auto=format&fit=crop&w=1200&q=80",
	},
	{
		Title:          "Fresh bedding finish",
		BeforeImageURL: "https://images.unsplash.com/photo-1582582429416-6a3fcd8ce5d1?auto=format&fit=crop&w=1200&q=80",
		AfterImageURL:  "https://images.unsplash.com/photo-1582582429416-6a3fcd8ce5d1?auto=format&fit=crop&w=1200&q=80",
	},
	{
		Title:          "Ironed office wear",
		BeforeImageURL: "https://images.unsplash.com/photo-1520975693415-35a533d6fe98?auto=format&fit=crop&w=1200&q=80",
		AfterImageURL:  "https://images.unsplash.com/photo-1520975693415-35a533d6fe98?auto=format&fit=crop&w=1200&q=80",
	},
}

// CatalogService serves the public service list and gallery
type CatalogService interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	ListBeforeAfterItems(ctx context.Context) ([]model.BeforeAfterItem, error)
	SeedDefaults(ctx context.Context) error
}

type catalogService struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) ListBeforeAfterItems(ctx context.Context) ([]model.BeforeAfterItem, error) {
	items, err := s.repo.ListBeforeAfterItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list before/after items: %w", err)
	}
	return items, nil
}

// SeedDefaults fills each catalog table with its defaults when it is empty.
func (s *catalogService) SeedDefaults(ctx context.Context) error {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to check services: %w", err)
	}
	if len(services) == 0 {
		for _, svc := range defaultServices {
			svc := svc
			if err := s.repo.CreateService(ctx, &svc); err != nil {
				return fmt.Errorf("failed to seed service %q: %w", svc.Title, err)
			}
		}
		s.logger.Info("seeded default services", zap.Int("count", len(defaultServices)))
	}

	items, err := s.repo.ListBeforeAfterItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to check before/after items: %w", err)
	}
	if len(items) == 0 {
		for _, item := range defaultBeforeAfterItems {
			item := item
			if err := s.repo.CreateBeforeAfterItem(ctx, &item); err != nil {
				return fmt.Errorf("failed to seed before/after item %q: %w", item.Title, err)
			}
		}
		s.logger.Info("seeded default before/after items", zap.Int("count", len(defaultBeforeAfterItems)))
	}
	return nil
}

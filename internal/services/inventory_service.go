package services

import (
	"context"

	"salon-backend/internal/events"
	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
)

// InventoryService exposes the product catalog and stock operations.
type InventoryService struct {
	repo *repositories.InventoryRepository
	hub  *events.Hub
}

func NewInventoryService(repo *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// SetEventHub wires the optional change feed. Safe to leave nil in tests.
func (s *InventoryService) SetEventHub(hub *events.Hub) {
	s.hub = hub
}

func (s *InventoryService) publish(eventType string, payload interface{}) {
	if s.hub != nil {
		s.hub.Publish(eventType, payload)
	}
}

func (s *InventoryService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.publish("product.created", product)
	return product, nil
}

func (s *InventoryService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *InventoryService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.repo.List(ctx)
}

func (s *InventoryService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.publish("product.updated", product)
	return product, nil
}

func (s *InventoryService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("product.deleted", map[string]string{"id": id})
	return nil
}

// AdjustStock applies a batch of stock deltas atomically. Either every
// delta lands or none do; a delta that would push a product below zero
// fails the whole batch with ErrInsufficientStock.
func (s *InventoryService) AdjustStock(ctx context.Context, deltas []models.StockDelta) error {
	if err := s.repo.AdjustStock(ctx, deltas); err != nil {
		return err
	}
	s.publish("stock.adjusted", deltas)
	return nil
}

func (s *InventoryService) LowStockProducts(ctx context.Context) ([]*models.Product, error) {
	return s.repo.LowStock(ctx)
}

func (s *InventoryService) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	return s.repo.AddCategory(ctx, name)
}

func (s *InventoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *InventoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.repo.ListCategories(ctx)
}

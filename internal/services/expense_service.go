package services

import (
	"context"
	"fmt"

	"salon-backend/internal/events"
	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
	"salon-backend/internal/timeutil"
)

// ExpenseService records operating expenses and their categories.
type ExpenseService struct {
	repo *repositories.ExpenseRepository
	hub  *events.Hub
}

func NewExpenseService(repo *repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

func (s *ExpenseService) SetEventHub(hub *events.Hub) {
	s.hub = hub
}

func (s *ExpenseService) publish(eventType string, payload interface{}) {
	if s.hub != nil {
		s.hub.Publish(eventType, payload)
	}
}

// CreateExpense records an expense dated by its Date field, not by when it
// was entered. An empty date defaults to today.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if _, err := s.repo.GetCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	date := timeutil.Now()
	if req.Date != "" {
		parsed, err := timeutil.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDateRange, req.Date)
		}
		date = parsed
	}

	expense := &models.Expense{
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
	}
	expense, err := s.repo.Create(ctx, expense)
	if err != nil {
		return nil, err
	}

	s.publish("expense.created", expense)
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("expense.deleted", map[string]string{"id": id})
	return nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.repo.List(ctx)
}

func (s *ExpenseService) ExpensesByDateRange(ctx context.Context, start, end string) ([]*models.Expense, error) {
	return s.repo.ListByDateRange(ctx, start, end)
}

func (s *ExpenseService) AddCategory(ctx context.Context, name string) (*models.ExpenseCategory, error) {
	return s.repo.AddCategory(ctx, name)
}

func (s *ExpenseService) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *ExpenseService) ListCategories(ctx context.Context) ([]*models.ExpenseCategory, error) {
	return s.repo.ListCategories(ctx)
}

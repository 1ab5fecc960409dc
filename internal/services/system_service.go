package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"salon-backend/internal/events"
	"salon-backend/internal/repositories"
)

// SystemService owns the admin-only reset that wipes the operational ledgers
// back to their seeded state. Appointments survive a reset: the schedule is
// forward-looking and not part of the books being cleared.
type SystemService struct {
	inventory *repositories.InventoryRepository
	sales     *repositories.SalesRepository
	credits   *repositories.CreditRepository
	expenses  *repositories.ExpenseRepository
	guard     *StoreGuard
	hub       *events.Hub
}

func NewSystemService(
	inventory *repositories.InventoryRepository,
	sales *repositories.SalesRepository,
	credits *repositories.CreditRepository,
	expenses *repositories.ExpenseRepository,
	guard *StoreGuard,
) *SystemService {
	return &SystemService{
		inventory: inventory,
		sales:     sales,
		credits:   credits,
		expenses:  expenses,
		guard:     guard,
	}
}

func (s *SystemService) SetEventHub(hub *events.Hub) {
	s.hub = hub
}

// ResetAll clears products, sales, credits, payments, customers and expenses,
// restores the default categories and restarts both invoice counters at zero.
func (s *SystemService) ResetAll(ctx context.Context) {
	s.guard.Lock()
	defer s.guard.Unlock()

	s.inventory.Reset(ctx)
	s.sales.Reset(ctx)
	s.credits.Reset(ctx)
	s.expenses.Reset(ctx)

	log.Warn().Msg("system reset: all ledgers cleared")
	if s.hub != nil {
		s.hub.Publish("system.reset", nil)
	}
}

package services

import "sync"

// StoreGuard serializes every mutation that touches more than one ledger
// (sale creation/cancellation, credit creation, payments, credit
// cancellation, system reset). Holding the guard makes the multi-step
// sequence all-or-nothing from any other caller's point of view, which is
// what the single-threaded original got for free.
type StoreGuard struct {
	mu sync.Mutex
}

func NewStoreGuard() *StoreGuard {
	return &StoreGuard{}
}

func (g *StoreGuard) Lock()   { g.mu.Lock() }
func (g *StoreGuard) Unlock() { g.mu.Unlock() }

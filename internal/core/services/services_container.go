package services

import (
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with one manager per
// entity kind. Each manager is an explicitly-owned object; nothing here is
// a process-wide singleton, so tests and future multi-tenant setups can
// build as many containers as they need.
func NewServiceContainer() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountManager(),
		Transaction: NewTransactionManager(),
		Budget:      NewBudgetManager(),
	}
}

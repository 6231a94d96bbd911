package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports the database as healthy when a ping succeeds.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a HealthChecker for db.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name implements [ports.HealthChecker].
func (h *HealthChecker) Name() string { return "database" }

// HealthCheck implements [ports.HealthChecker].
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

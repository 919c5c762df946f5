package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthService aggregates dependency checkers for the readiness endpoint.
type HealthService struct {
	checkers []Checker
}

func NewHealthService(checkers ...Checker) *HealthService {
	return &HealthService{checkers: checkers}
}

// CheckError reports which dependency failed the readiness check.
type CheckError struct {
	Checker string
	Err     error
}

func (e *CheckError) Error() string { return fmt.Sprintf("%s: %v", e.Checker, e.Err) }

func (e *CheckError) Unwrap() error { return e.Err }

// Ready runs every checker in order and stops at the first failure,
// which is returned as a *CheckError.
func (s *HealthService) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return &CheckError{Checker: ch.Name(), Err: err}
		}
	}
	return nil
}

// DatabaseChecker pings the connection pool behind a *gorm.DB.
type DatabaseChecker struct {
	db *gorm.DB
}

func NewDatabaseChecker(db *gorm.DB) *DatabaseChecker {
	return &DatabaseChecker{db: db}
}

func (c *DatabaseChecker) Name() string { return "database" }

func (c *DatabaseChecker) Check(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

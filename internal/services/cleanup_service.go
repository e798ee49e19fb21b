package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/digital-meishi-api/internal/repository"
)

// CleanupService runs the data-retention sweep: every row created in the
// trailing full UTC day is removed.
type CleanupService struct {
	userRepo repository.UserRepository
}

// NewCleanupService creates a new CleanupService.
func NewCleanupService(userRepo repository.UserRepository) *CleanupService {
	return &CleanupService{userRepo: userRepo}
}

// RetentionWindow computes the half-open interval
// [yesterday 00:00:00, today 00:00:00) in UTC relative to now.
func RetentionWindow(now time.Time) (from, to time.Time) {
	now = now.UTC()
	to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from = to.AddDate(0, 0, -1)
	return from, to
}

// Run deletes all users and skill associations created inside the retention
// window and reports the per-table counts. Running it again over an emptied
// window deletes zero rows.
func (s *CleanupService) Run(ctx context.Context, now time.Time) (repository.SweepResult, error) {
	from, to := RetentionWindow(now)

	result, err := s.userRepo.DeleteCreatedBetween(ctx, from, to)
	if err != nil {
		return repository.SweepResult{}, fmt.Errorf("retention sweep failed: %w", err)
	}

	return result, nil
}

package repository

import (
	"context"
	"time"

	"github.com/yukikurage/digital-meishi-api/internal/models"
)

// SweepResult reports how many rows the retention sweep removed per table.
type SweepResult struct {
	Users      int64
	UserSkills int64
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List retrieves all users
	List(ctx context.Context) ([]models.User, error)

	// FindByID finds a user by ID with its skills preloaded. A user with
	// zero skills is still found.
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// Create inserts the user row and its skill associations atomically
	Create(ctx context.Context, user *models.User, skillIDs []uint64) error

	// DeleteCreatedBetween removes users and skill associations created in
	// the half-open interval [from, to)
	DeleteCreatedBetween(ctx context.Context, from, to time.Time) (SweepResult, error)
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	// List retrieves all skill options
	List(ctx context.Context) ([]models.Skill, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/digital-meishi-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when inserting the user row fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateUserSkills is returned when inserting the skill associations fails inside the registration transaction.
	ErrCreateUserSkills = errors.New("user repository: create user skills failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// List retrieves all users
func (r *GormUserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID with its skills preloaded
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("UserSkills.Skill").
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the user row and its skill associations in a single
// transaction, so a profile with skills is observed as all-or-nothing.
// A uniqueness violation on like_word surfaces as gorm.ErrDuplicatedKey.
func (r *GormUserRepository) Create(ctx context.Context, user *models.User, skillIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		if len(skillIDs) == 0 {
			return nil
		}

		associations := make([]models.UserSkill, len(skillIDs))
		for i, skillID := range skillIDs {
			associations[i] = models.UserSkill{
				UserID:  user.ID,
				SkillID: skillID,
			}
		}

		if err := tx.Create(&associations).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUserSkills, err)
		}

		return nil
	})
}

// DeleteCreatedBetween removes users and skill associations whose created_at
// falls in [from, to). Associations go first to keep referential integrity.
func (r *GormUserRepository) DeleteCreatedBetween(ctx context.Context, from, to time.Time) (SweepResult, error) {
	var result SweepResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("created_at >= ? AND created_at < ?", from, to).
			Delete(&models.UserSkill{})
		if del.Error != nil {
			return del.Error
		}
		result.UserSkills = del.RowsAffected

		del = tx.Where("created_at >= ? AND created_at < ?", from, to).
			Delete(&models.User{})
		if del.Error != nil {
			return del.Error
		}
		result.Users = del.RowsAffected

		return nil
	})
	if err != nil {
		return SweepResult{}, err
	}

	return result, nil
}

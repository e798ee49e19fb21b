package repository

import (
	"context"

	"github.com/yukikurage/digital-meishi-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// List retrieves all skill options
func (r *GormSkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).Order("id").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

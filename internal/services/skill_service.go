package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/digital-meishi-api/internal/cache"
	"github.com/yukikurage/digital-meishi-api/internal/models"
	"github.com/yukikurage/digital-meishi-api/internal/repository"
)

// SkillService serves the read-only skill options.
type SkillService struct {
	skillRepo repository.SkillRepository
	cache     *cache.Store
}

// NewSkillService creates a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository, cacheStore *cache.Store) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		cache:     cacheStore,
	}
}

// ListSkills returns all skill options through the query cache.
func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := cache.Get(ctx, s.cache, cache.SkillsKey, s.skillRepo.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

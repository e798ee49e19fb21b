package dto

import "github.com/yukikurage/digital-meishi-api/internal/models"

// SkillDTO represents a skill option in API responses
type SkillDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToSkillDTO converts a Skill model to SkillDTO
func ToSkillDTO(skill models.Skill) SkillDTO {
	return SkillDTO{
		ID:   skill.ID,
		Name: skill.Name,
	}
}

// ToSkillDTOs converts a slice of skills
func ToSkillDTOs(skills []models.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, skill := range skills {
		dtos[i] = ToSkillDTO(skill)
	}
	return dtos
}

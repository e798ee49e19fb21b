package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/digital-meishi-api/internal/dto"
	apierrors "github.com/yukikurage/digital-meishi-api/internal/errors"
	"github.com/yukikurage/digital-meishi-api/internal/services"
)

// SkillHandler serves the selectable skill options.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// ListSkills returns all skill options.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.ListSkills(c.Request.Context())
	if err != nil {
		apierrors.StoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": dto.ToSkillDTOs(skills)})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/digital-meishi-api/internal/constants"
	"github.com/yukikurage/digital-meishi-api/internal/dto"
	apierrors "github.com/yukikurage/digital-meishi-api/internal/errors"
	"github.com/yukikurage/digital-meishi-api/internal/services"
)

// UserHandler coordinates the business-card HTTP handlers.
type UserHandler struct {
	userService   *services.UserService
	recentService *services.RecentService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, recentService *services.RecentService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		recentService: recentService,
	}
}

// ListUsers returns the reduced user projection the search page binds to.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		apierrors.StoreError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// GetUser returns one business card with skills and social links, and
// records the view in the visitor's session.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.StoreError(c)
		return
	}

	h.recordRecent(c, user.ID)

	c.JSON(http.StatusOK, dto.ToUserDetailDTO(*user))
}

// Register creates a new business card.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		LikeWord    string   `json:"like_word"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		GithubID    string   `json:"github_id"`
		QiitaID     string   `json:"qiita_id"`
		XID         string   `json:"x_id"`
		Skills      []uint64 `json:"skills"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Register(c.Request.Context(), services.RegisterInput{
		LikeWord:    req.LikeWord,
		Name:        req.Name,
		Description: req.Description,
		GithubID:    req.GithubID,
		QiitaID:     req.QiitaID,
		XID:         req.XID,
		SkillIDs:    req.Skills,
	})
	if err != nil {
		respondRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDetailDTO(*user))
}

// Lookup resolves a search submit to the matched user's id.
func (h *UserHandler) Lookup(c *gin.Context) {
	type LookupRequest struct {
		Query string `json:"query"`
	}

	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := h.userService.Lookup(c.Request.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyQuery):
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeEmptyInput, "please enter a user name", nil)
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "no user with that name exists")
		default:
			apierrors.StoreError(c)
		}
		return
	}

	c.JSON(http.StatusOK, dto.LookupResponse{UserID: userID})
}

// Suggestions narrows the visible typeahead candidates. It never affects the
// exact-match rule applied at submit.
func (h *UserHandler) Suggestions(c *gin.Context) {
	users, err := h.userService.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		apierrors.StoreError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// Recent returns the visitor's recently-viewed cards.
func (h *UserHandler) Recent(c *gin.Context) {
	session := sessions.Default(c)
	encoded, _ := session.Get(constants.SessionKeyRecent).(string)

	users, err := h.recentService.Resolve(c.Request.Context(), encoded)
	if err != nil {
		apierrors.StoreError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// recordRecent is best effort: a failed session write must not break the
// detail response.
func (h *UserHandler) recordRecent(c *gin.Context, id uint64) {
	session := sessions.Default(c)
	encoded, _ := session.Get(constants.SessionKeyRecent).(string)
	session.Set(constants.SessionKeyRecent, h.recentService.Push(encoded, id))
	_ = session.Save()
}

func respondRegisterError(c *gin.Context, err error) {
	var fieldErr *services.FieldError
	if errors.As(err, &fieldErr) {
		details := gin.H{"field": fieldErr.Field}
		switch {
		case errors.Is(err, services.ErrRequired):
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeEmptyInput, "required field is missing", details)
		case errors.Is(err, services.ErrTooLong):
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeFieldTooLong, "field exceeds maximum length", details)
		case errors.Is(err, services.ErrSkillRequired):
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeSkillRequired, services.ErrSkillRequired.Error(), details)
		case errors.Is(err, services.ErrTooManySkills):
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeTooManySkills, services.ErrTooManySkills.Error(), details)
		default:
			apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidInput, fieldErr.Error(), details)
		}
		return
	}

	if errors.Is(err, services.ErrLikeWordTaken) {
		apierrors.Conflict(c, apierrors.ErrCodeDuplicateLikeWord, services.ErrLikeWordTaken.Error())
		return
	}

	apierrors.StoreError(c)
}

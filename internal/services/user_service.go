package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/digital-meishi-api/internal/cache"
	"github.com/yukikurage/digital-meishi-api/internal/config"
	"github.com/yukikurage/digital-meishi-api/internal/constants"
	"github.com/yukikurage/digital-meishi-api/internal/models"
	"github.com/yukikurage/digital-meishi-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrLikeWordTaken = errors.New("this word is already taken")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyQuery    = errors.New("query is required")
	ErrRequired      = errors.New("field is required")
	ErrTooLong       = errors.New("field exceeds maximum length")
	ErrSkillRequired = errors.New("exactly one skill must be selected")
	ErrTooManySkills = errors.New("up to 3 skills can be selected")
	ErrDuplicateSkill = errors.New("skill selected more than once")
)

// FieldError attaches the offending field name to a validation error.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UserService handles registration, lookup, and detail reads.
type UserService struct {
	userRepo repository.UserRepository
	cache    *cache.Store
	mode     config.SkillMode
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, cacheStore *cache.Store, mode config.SkillMode) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cacheStore,
		mode:     mode,
	}
}

// RegisterInput represents the assembled registration form payload. Optional
// fields left blank stay empty strings.
type RegisterInput struct {
	LikeWord    string
	Name        string
	Description string
	GithubID    string
	QiitaID     string
	XID         string
	SkillIDs    []uint64
}

// ListUsers returns all users through the query cache.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := cache.Get(ctx, s.cache, cache.UsersKey, s.userRepo.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns one user with its skills through the query cache.
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := cache.Get(ctx, s.cache, cache.UserKey(id), func(ctx context.Context) (*models.User, error) {
		return s.userRepo.FindByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Register validates the form payload and persists the user with its skill
// associations. Validation failures never reach the store. On success the
// cached user list is invalidated so the next read sees the new row.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.LikeWord = strings.TrimSpace(input.LikeWord)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.GithubID = strings.TrimSpace(input.GithubID)
	input.QiitaID = strings.TrimSpace(input.QiitaID)
	input.XID = strings.TrimSpace(input.XID)

	if err := s.validate(input); err != nil {
		return nil, err
	}

	user := &models.User{
		LikeWord:    input.LikeWord,
		Name:        input.Name,
		Description: input.Description,
		GithubID:    input.GithubID,
		QiitaID:     input.QiitaID,
		XID:         input.XID,
	}

	if err := s.userRepo.Create(ctx, user, input.SkillIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLikeWordTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.cache.Invalidate(cache.UsersKey)

	created, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created user: %w", err)
	}

	return created, nil
}

// Lookup implements the search submit flow: the trimmed query must exactly
// match a known like-word or name in the loaded user list. Typeahead
// narrowing never relaxes this rule.
func (s *UserService) Lookup(ctx context.Context, query string) (uint64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, ErrEmptyQuery
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	for _, user := range users {
		if user.LikeWord == query || user.Name == query {
			return user.ID, nil
		}
	}

	return 0, ErrUserNotFound
}

// Suggest returns the users whose name or like-word contains the query,
// case-insensitively. An empty query returns the full list.
func (s *UserService) Suggest(ctx context.Context, query string) ([]models.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users, nil
	}

	var matched []models.User
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), query) ||
			strings.Contains(strings.ToLower(user.LikeWord), query) {
			matched = append(matched, user)
		}
	}

	return matched, nil
}

// ResolveMany maps ids onto users from the loaded list, preserving order and
// silently dropping ids that no longer exist.
func (s *UserService) ResolveMany(ctx context.Context, ids []uint64) ([]models.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	resolved := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := byID[id]; ok {
			resolved = append(resolved, user)
		}
	}

	return resolved, nil
}

func (s *UserService) validate(input RegisterInput) error {
	required := []struct {
		field string
		value string
		max   int
	}{
		{"like_word", input.LikeWord, constants.MaxLikeWordLength},
		{"name", input.Name, constants.MaxNameLength},
		{"description", input.Description, constants.MaxDescriptionLength},
	}
	for _, f := range required {
		if f.value == "" {
			return &FieldError{Field: f.field, Err: ErrRequired}
		}
		if len([]rune(f.value)) > f.max {
			return &FieldError{Field: f.field, Err: ErrTooLong}
		}
	}

	optional := []struct {
		field string
		value string
	}{
		{"github_id", input.GithubID},
		{"qiita_id", input.QiitaID},
		{"x_id", input.XID},
	}
	for _, f := range optional {
		if len([]rune(f.value)) > constants.MaxSocialIDLength {
			return &FieldError{Field: f.field, Err: ErrTooLong}
		}
	}

	seen := make(map[uint64]bool, len(input.SkillIDs))
	for _, id := range input.SkillIDs {
		if seen[id] {
			return &FieldError{Field: "skills", Err: ErrDuplicateSkill}
		}
		seen[id] = true
	}

	switch s.mode {
	case config.SkillModeSingle:
		if len(input.SkillIDs) != 1 {
			return &FieldError{Field: "skills", Err: ErrSkillRequired}
		}
	default:
		if len(input.SkillIDs) > constants.MaxSkillSelections {
			return &FieldError{Field: "skills", Err: ErrTooManySkills}
		}
	}

	return nil
}

package dto

import (
	"html"
	"time"

	"github.com/yukikurage/digital-meishi-api/internal/constants"
	"github.com/yukikurage/digital-meishi-api/internal/models"
)

// UserListItemDTO is the reduced projection used by the search page and the
// recently-viewed list.
type UserListItemDTO struct {
	ID       uint64 `json:"id"`
	LikeWord string `json:"like_word"`
	Name     string `json:"name"`
}

// SocialLinksDTO carries the external profile links. A link is omitted
// entirely when its handle is blank.
type SocialLinksDTO struct {
	Github string `json:"github,omitempty"`
	Qiita  string `json:"qiita,omitempty"`
	X      string `json:"x,omitempty"`
}

// UserDetailDTO represents a full business card in API responses.
type UserDetailDTO struct {
	ID          uint64         `json:"id"`
	LikeWord    string         `json:"like_word"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Skills      []SkillDTO     `json:"skills"`
	Links       SocialLinksDTO `json:"links"`
	CreatedAt   time.Time      `json:"created_at"`
}

// UserListResponse wraps the list projection.
type UserListResponse struct {
	Users []UserListItemDTO `json:"users"`
}

// LookupResponse carries the resolved navigation target of a search submit.
type LookupResponse struct {
	UserID uint64 `json:"user_id"`
}

// Conversion functions

// ToUserListItemDTO converts a User model to UserListItemDTO
func ToUserListItemDTO(user models.User) UserListItemDTO {
	return UserListItemDTO{
		ID:       user.ID,
		LikeWord: user.LikeWord,
		Name:     user.Name,
	}
}

// ToUserListResponse converts a slice of users to UserListResponse
func ToUserListResponse(users []models.User) UserListResponse {
	items := make([]UserListItemDTO, len(users))
	for i, user := range users {
		items[i] = ToUserListItemDTO(user)
	}
	return UserListResponse{Users: items}
}

// ToUserDetailDTO converts a User model with preloaded skills to
// UserDetailDTO. The description is user-supplied free text and is escaped
// here so it can never be interpreted as markup downstream.
func ToUserDetailDTO(user models.User) UserDetailDTO {
	skills := make([]SkillDTO, 0, len(user.UserSkills))
	for _, us := range user.UserSkills {
		skills = append(skills, ToSkillDTO(us.Skill))
	}

	dto := UserDetailDTO{
		ID:          user.ID,
		LikeWord:    user.LikeWord,
		Name:        user.Name,
		Description: html.EscapeString(user.Description),
		Skills:      skills,
		CreatedAt:   user.CreatedAt,
	}

	if user.GithubID != "" {
		dto.Links.Github = constants.GithubProfileURL + user.GithubID
	}
	if user.QiitaID != "" {
		dto.Links.Qiita = constants.QiitaProfileURL + user.QiitaID
	}
	if user.XID != "" {
		dto.Links.X = constants.XProfileURL + user.XID
	}

	return dto
}

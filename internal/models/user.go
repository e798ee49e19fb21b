package models

import (
	"time"
)

type User struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	LikeWord    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"like_word"`
	Name        string    `gorm:"type:varchar(20);not null" json:"name"`
	Description string    `gorm:"type:varchar(50);not null" json:"description"`
	GithubID    string    `gorm:"type:varchar(20)" json:"github_id"`
	QiitaID     string    `gorm:"type:varchar(20)" json:"qiita_id"`
	XID         string    `gorm:"type:varchar(20)" json:"x_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	// Relations
	UserSkills []UserSkill `gorm:"foreignKey:UserID" json:"user_skills,omitempty"`
}

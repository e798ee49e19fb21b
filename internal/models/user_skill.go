package models

import "time"

type UserSkill struct {
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	SkillID   uint64    `gorm:"primarykey" json:"skill_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

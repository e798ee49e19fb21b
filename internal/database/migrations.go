package database

import (
	"fmt"

	"github.com/yukikurage/digital-meishi-api/internal/models"
	"gorm.io/gorm"
)

// DefaultSkills is the fixed option set offered by the registration form.
var DefaultSkills = []string{
	"React",
	"TypeScript",
	"GitHub",
	"Go",
	"AWS",
}

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// The retention sweep filters both tables on created_at
		{"users", "idx_users_created_at", "created_at"},
		{"user_skills", "idx_user_skills_created_at", "created_at"},

		// Detail fetch joins skills through user_skills
		{"user_skills", "idx_user_skills_user_id", "user_id"},
		{"user_skills", "idx_user_skills_skill_id", "skill_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}

// SeedSkills inserts the default skill options if they are missing. Skills are
// read-only from the application's perspective, so seeding is idempotent by
// name.
func SeedSkills(db *gorm.DB) error {
	for _, name := range DefaultSkills {
		skill := models.Skill{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&skill).Error; err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", name, err)
		}
	}
	return nil
}

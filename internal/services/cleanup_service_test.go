package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/digital-meishi-api/internal/models"
	"github.com/yukikurage/digital-meishi-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCleanupTest(t *testing.T) (*gorm.DB, *CleanupService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, NewCleanupService(repository.NewUserRepository(db))
}

func TestRetentionWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 30, 0, time.UTC)

	from, to := RetentionWindow(now)
	require.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), to)

	// A local-time clock still yields the UTC day
	jst := time.FixedZone("JST", 9*3600)
	from, to = RetentionWindow(time.Date(2025, 6, 15, 3, 0, 0, 0, jst)) // 2025-06-14 18:00 UTC
	require.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), to)
}

func TestCleanupService_Run(t *testing.T) {
	db, service := setupCleanupTest(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	inWindow := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	beforeWindow := time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)

	skill := models.Skill{Name: "React"}
	require.NoError(t, db.Create(&skill).Error)

	swept := models.User{LikeWord: "swept", Name: "Swept", Description: "d", CreatedAt: inWindow}
	kept := models.User{LikeWord: "kept", Name: "Kept", Description: "d", CreatedAt: beforeWindow}
	fresh := models.User{LikeWord: "fresh", Name: "Fresh", Description: "d", CreatedAt: today}
	require.NoError(t, db.Create(&swept).Error)
	require.NoError(t, db.Create(&kept).Error)
	require.NoError(t, db.Create(&fresh).Error)

	require.NoError(t, db.Create(&models.UserSkill{UserID: swept.ID, SkillID: skill.ID, CreatedAt: inWindow}).Error)
	require.NoError(t, db.Create(&models.UserSkill{UserID: kept.ID, SkillID: skill.ID, CreatedAt: beforeWindow}).Error)

	result, err := service.Run(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Users)
	require.EqualValues(t, 1, result.UserSkills)

	var remaining []models.User
	require.NoError(t, db.Order("id").Find(&remaining).Error)
	require.Len(t, remaining, 2)
	require.Equal(t, "kept", remaining[0].LikeWord)
	require.Equal(t, "fresh", remaining[1].LikeWord)

	// Re-running over the emptied window is a no-op
	result, err = service.Run(ctx, now)
	require.NoError(t, err)
	require.Zero(t, result.Users)
	require.Zero(t, result.UserSkills)
}

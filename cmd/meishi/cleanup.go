package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/yukikurage/digital-meishi-api/internal/config"
	"github.com/yukikurage/digital-meishi-api/internal/database"
	"github.com/yukikurage/digital-meishi-api/internal/repository"
	"github.com/yukikurage/digital-meishi-api/internal/services"
)

func cleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete users and skill associations created in the trailing full UTC day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanup()
		},
	}
}

func runCleanup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := database.Connect(cfg); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	cleanupService := services.NewCleanupService(repository.NewUserRepository(database.GetDB()))

	now := time.Now()
	from, to := services.RetentionWindow(now)
	log.Printf("Deleting rows created in [%s, %s)", from.Format(time.RFC3339), to.Format(time.RFC3339))

	result, err := cleanupService.Run(context.Background(), now)
	if err != nil {
		return err
	}

	log.Printf("users: %d rows deleted", result.Users)
	log.Printf("user_skills: %d rows deleted", result.UserSkills)
	return nil
}

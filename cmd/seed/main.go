// Command seed bootstraps a fresh deployment: it creates the admin
// account and a few sample documents so the site is not empty on first
// run. Safe to run repeatedly; existing data is left alone.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"folio/internal/auth"
	"folio/internal/content/models"
	"folio/internal/content/repo"
	"folio/internal/content/store"
	"folio/internal/platform/config"
	"folio/internal/platform/logger"
	"folio/pkg/platform/sentinel"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is required; seeding an in-memory store has no effect")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed complete")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}

	users := auth.NewPostgresUserStore(db)
	if err := users.EnsureSchema(ctx); err != nil {
		return err
	}
	documents := store.NewPostgres(db)
	if err := documents.EnsureSchema(ctx); err != nil {
		return err
	}

	if err := seedAdmin(ctx, users, log); err != nil {
		return err
	}
	if err := seedSamples(ctx, documents, log); err != nil {
		return err
	}
	return nil
}

func seedAdmin(ctx context.Context, users auth.UserStore, log *slog.Logger) error {
	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return errors.New("ADMIN_PASSWORD must be set")
	}

	if _, err := users.FindByUsername(ctx, username); err == nil {
		log.Info("admin user already exists, skipping", "username", username)
		return nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := users.Save(ctx, &auth.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return err
	}
	log.Info("admin user created", "username", username)
	return nil
}

// seedSamples inserts starter courses and LeetCode entries, skipping any
// kind that already has documents.
func seedSamples(ctx context.Context, documents store.Store, log *slog.Logger) error {
	now := time.Now().UTC()

	courses := repo.NewCollection(documents, models.KindCourseCertification,
		func() *models.CourseCertification { return &models.CourseCertification{} })
	existing, err := courses.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, course := range sampleCourses(now) {
			if err := courses.Save(ctx, course); err != nil {
				return err
			}
		}
		log.Info("sample courses inserted", "count", len(sampleCourses(now)))
	}

	entries := repo.NewCollection(documents, models.KindLeetCodeEntry,
		func() *models.LeetCodeEntry { return &models.LeetCodeEntry{} })
	existingEntries, err := entries.List(ctx)
	if err != nil {
		return err
	}
	if len(existingEntries) == 0 {
		for _, entry := range sampleEntries(now) {
			if err := entries.Save(ctx, entry); err != nil {
				return err
			}
		}
		log.Info("sample leetcode entries inserted", "count", len(sampleEntries(now)))
	}
	return nil
}

func sampleCourses(now time.Time) []*models.CourseCertification {
	return []*models.CourseCertification{
		{
			Meta:         models.Meta{ID: uuid.New(), CreatedAt: now},
			Title:        "Machine Learning Specialization",
			Provider:     "Coursera",
			Type:         models.TypeCertification,
			Date:         now.AddDate(0, -6, 0),
			Description:  "Supervised and unsupervised learning fundamentals.",
			SkillsLearnt: []string{"Python", "scikit-learn", "TensorFlow"},
		},
		{
			Meta:         models.Meta{ID: uuid.New(), CreatedAt: now},
			Title:        "Backend Development with Go",
			Provider:     "Udemy",
			Type:         models.TypeCourse,
			Date:         now.AddDate(0, -2, 0),
			Description:  "REST APIs, PostgreSQL and deployment.",
			SkillsLearnt: []string{"Go", "PostgreSQL", "Docker"},
		},
	}
}

func sampleEntries(now time.Time) []*models.LeetCodeEntry {
	return []*models.LeetCodeEntry{
		{
			Meta:       models.Meta{ID: uuid.New(), CreatedAt: now},
			Title:      "Two Sum",
			Difficulty: models.DifficultyEasy,
			Tags:       []string{"array", "hash-table"},
			Status:     models.StatusSolved,
			DateSolved: now.AddDate(0, 0, -14),
		},
		{
			Meta:       models.Meta{ID: uuid.New(), CreatedAt: now},
			Title:      "Longest Substring Without Repeating Characters",
			Difficulty: models.DifficultyMedium,
			Tags:       []string{"string", "sliding-window"},
			Status:     models.StatusSolved,
			DateSolved: now.AddDate(0, 0, -7),
		},
		{
			Meta:       models.Meta{ID: uuid.New(), CreatedAt: now},
			Title:      "Median of Two Sorted Arrays",
			Difficulty: models.DifficultyHard,
			Tags:       []string{"binary-search"},
			Status:     models.StatusInProgress,
			DateSolved: now,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

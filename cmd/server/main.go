// Command server runs the portfolio API: content CRUD, auth, uploads and
// the contact relay behind one HTTP listener.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"folio/internal/auth"
	authhandler "folio/internal/auth/handler"
	contenthandler "folio/internal/content/handler"
	"folio/internal/content/models"
	"folio/internal/content/repo"
	"folio/internal/content/service"
	"folio/internal/content/store"
	"folio/internal/notify"
	"folio/internal/platform/config"
	"folio/internal/platform/httpserver"
	"folio/internal/platform/logger"
	"folio/internal/platform/metrics"
	"folio/internal/platform/middleware"
	"folio/internal/ratelimit"
	httptransport "folio/internal/transport/http"
	"folio/internal/upload"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	users, documents, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}

	saver, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		return err
	}

	var mailer notify.Mailer
	if cfg.RelayConfigured() {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.ContactRecipient)
	} else {
		log.Warn("smtp relay not configured, contact notifications will only be logged")
		mailer = notify.NewLogMailer(log)
	}
	outbox := notify.NewOutbox(mailer, notify.WithLogger(log), notify.WithMetrics(m))

	authService := auth.NewService(users, cfg.JWTSigningKey, cfg.JWTTTL,
		auth.WithLogger(log), auth.WithMetrics(m))
	requireAuth := middleware.RequireAuth(authService, log)

	opts := []service.Option{service.WithLogger(log), service.WithMetrics(m)}
	projects := service.NewCRUD("Project",
		repo.NewCollection(documents, models.KindProject, func() *models.Project { return &models.Project{} }), opts...)
	skills := service.NewCRUD("Skill",
		repo.NewCollection(documents, models.KindSkill, func() *models.Skill { return &models.Skill{} }), opts...)
	achievements := service.NewCRUD("Achievement",
		repo.NewCollection(documents, models.KindAchievement, func() *models.Achievement { return &models.Achievement{} }), opts...)
	education := service.NewCRUD("Education",
		repo.NewCollection(documents, models.KindEducation, func() *models.Education { return &models.Education{} }), opts...)
	courses := service.NewCRUD("Course/Certification",
		repo.NewCollection(documents, models.KindCourseCertification, func() *models.CourseCertification { return &models.CourseCertification{} }), opts...)
	blog := service.NewBlog(
		repo.NewCollection(documents, models.KindBlogPost, func() *models.BlogPost { return &models.BlogPost{} }), opts...)
	contact := service.NewContact(
		repo.NewCollection(documents, models.KindMessage, func() *models.Message { return &models.Message{} }), outbox, opts...)
	profile := service.NewProfile(
		repo.NewCollection(documents, models.KindProfile, func() *models.Profile { return &models.Profile{} }), opts...)
	leetcode := service.NewLeetCode(
		repo.NewCollection(documents, models.KindLeetCodeEntry, func() *models.LeetCodeEntry { return &models.LeetCodeEntry{} }), opts...)

	var contactLimit func(http.Handler) http.Handler
	if cfg.ContactRate > 0 {
		contactLimit = ratelimit.New(cfg.ContactRate, cfg.ContactWindow, log).Middleware
	}

	router := httptransport.NewRouter(
		httptransport.Options{Logger: log, CORSOrigins: cfg.CORSOrigins, UploadDir: saver.Dir()},
		authhandler.New(authService, log),
		contenthandler.NewResource(contenthandler.Config[*models.Project]{
			Path: "/api/projects", UploadField: "image",
			Service: projects, Bind: models.BindProject,
			Uploads: saver, Auth: requireAuth, Logger: log,
		}),
		contenthandler.NewSkills(skills, saver, requireAuth, log),
		contenthandler.NewResource(contenthandler.Config[*models.Achievement]{
			Path: "/api/achievements", UploadField: "icon",
			Service: achievements, Bind: models.BindAchievement,
			Uploads: saver, Auth: requireAuth, Logger: log,
		}),
		contenthandler.NewResource(contenthandler.Config[*models.Education]{
			Path:    "/api/education",
			Service: education, Bind: models.BindEducation,
			Uploads: saver, Auth: requireAuth, Logger: log,
		}),
		contenthandler.NewResource(contenthandler.Config[*models.CourseCertification]{
			Path: "/api/course-certifications", UploadField: "badgeImage",
			Service: courses, Bind: models.BindCourseCertification,
			Uploads: saver, Auth: requireAuth, Logger: log,
		}),
		contenthandler.NewBlog(blog, saver, requireAuth, log),
		contenthandler.NewContact(contact, requireAuth, contactLimit, log),
		contenthandler.NewProfile(profile, saver, requireAuth, log),
		contenthandler.NewLeetCode(leetcode, saver, requireAuth, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("portfolio api listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := outbox.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStores picks PostgreSQL when DATABASE_URL is set and falls back to
// the in-memory stores for database-less development.
func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (auth.UserStore, store.Store, error) {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, using in-memory stores; data will not survive a restart")
		return auth.NewInMemoryUserStore(), store.NewInMemory(), nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	users := auth.NewPostgresUserStore(db)
	if err := users.EnsureSchema(ctx); err != nil {
		return nil, nil, err
	}
	documents := store.NewPostgres(db)
	if err := documents.EnsureSchema(ctx); err != nil {
		return nil, nil, err
	}
	log.Info("connected to postgres")
	return users, documents, nil
}

package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	auditRepo "github.com/mrlokans/library/internal/database/audit"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/session"
	"github.com/mrlokans/library/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 sends SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// Background work stops after in-flight requests are done
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// App holds the wired application and the resources it must release.
type App struct {
	Router *gin.Engine

	db         *database.Database
	auditor    *audit.Service
	taskClient *tasks.Client
	pruner     *scheduler.AuditPruneScheduler
	cancel     context.CancelFunc
}

// NewApp opens the database and wires every component described by cfg.
func NewApp(cfg *config.Config, version string) (*App, error) {
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	app := &App{db: db}

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel

	repo := catalogRepo.NewRepository(db.DB)
	app.auditor = audit.NewService(auditRepo.NewRepository(db.DB))

	sqlDB, err := db.DB.DB()
	if err != nil {
		app.Shutdown(ctx)
		return nil, fmt.Errorf("get SQL DB for sessions: %w", err)
	}
	sessions, err := session.NewManager(sqlDB, cfg.Session)
	if err != nil {
		app.Shutdown(ctx)
		return nil, fmt.Errorf("initialize session manager: %w", err)
	}

	if cfg.Tasks.Enabled {
		if err := app.startTasks(ctx, cfg); err != nil {
			app.Shutdown(ctx)
			return nil, err
		}
	} else {
		log.Printf("Task queue disabled; audit events will not be pruned")
	}

	var csrfSecret []byte
	if cfg.CSRF.Secret != "" {
		csrfSecret, err = session.CSRFKey(cfg.CSRF.Secret)
		if err != nil {
			app.Shutdown(ctx)
			return nil, err
		}
		log.Printf("CSRF protection enabled")
	}

	app.Router, err = http_controllers.NewRouter(http_controllers.RouterConfig{
		Repository:    repo,
		Catalog:       catalog.NewService(repo),
		Auditor:       app.auditor,
		Health:        db,
		Sessions:      sessions,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
	})
	if err != nil {
		app.Shutdown(ctx)
		return nil, err
	}

	return app, nil
}

func (a *App) startTasks(ctx context.Context, cfg *config.Config) error {
	client, err := tasks.NewClient(cfg.Database.Path, tasks.Config{
		Workers:         cfg.Tasks.Workers,
		ReleaseAfter:    cfg.Tasks.ReleaseAfter,
		CleanupInterval: cfg.Tasks.CleanupInterval,
	})
	if err != nil {
		return fmt.Errorf("initialize task queue: %w", err)
	}
	a.taskClient = client

	client.Register(tasks.NewPruneAuditEventsQueue(a.auditor))
	client.Start(ctx)

	a.pruner = scheduler.NewAuditPruneScheduler(client, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays)
	if err := a.pruner.Start(ctx); err != nil {
		return fmt.Errorf("start audit prune scheduler: %w", err)
	}
	return nil
}

// Shutdown stops background work, waits for pending audit writes and closes
// the databases.
func (a *App) Shutdown(ctx context.Context) {
	if a.pruner != nil {
		a.pruner.Stop()
	}
	if a.taskClient != nil {
		a.taskClient.Stop(ctx)
	}
	if a.cancel != nil {
		a.cancel()
	}
	if a.taskClient != nil {
		if err := a.taskClient.Close(); err != nil {
			log.Printf("Error closing task client: %v", err)
		}
	}
	if a.auditor != nil {
		a.auditor.Flush()
	}
	if err := a.db.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library v%s", version)

	app, err := NewApp(cfg, version)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	Serve(app.Router, cfg, app.Shutdown)
}

package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/venda-inc/venda/internal/infrastructure/config"
	"github.com/venda-inc/venda/internal/infrastructure/database"
	"github.com/venda-inc/venda/internal/infrastructure/migration"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/infrastructure/scheduler"
	httpAPI "github.com/venda-inc/venda/internal/interfaces/http"
	"github.com/venda-inc/venda/internal/shared/biztime"
	"github.com/venda-inc/venda/internal/shared/logger"
)

var (
	env           string
	rbacModelPath string
	autoMigrate   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Venda HTTP server with the session sweeper and low-stock alert jobs.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&rbacModelPath, "rbac-model", "./configs/rbac_model.conf", "Path to the casbin model file")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	if err := biztime.Init(cfg.Report.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration enabled in production")
		}
		if err := migration.NewManager(env).Migrate(database.Get(), allModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	container, err := httpAPI.NewContainer(cfg, database.Get(), redisClient, rbacModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	sweepInterval := time.Duration(cfg.Auth.Session.SweepIntervalSecs) * time.Second
	if err := schedulerManager.RegisterSessionSweepJob(container.SweepJob, sweepInterval); err != nil {
		return fmt.Errorf("failed to register session sweep job: %w", err)
	}
	if len(cfg.Report.AlertRecipients) > 0 {
		if err := schedulerManager.RegisterLowStockAlertJob(container.LowStockJob); err != nil {
			return fmt.Errorf("failed to register low-stock alert job: %w", err)
		}
	} else {
		log.Infow("low-stock alert job disabled, no recipients configured")
	}
	schedulerManager.Start()
	defer func() {
		if err := schedulerManager.Stop(); err != nil {
			log.Errorw("failed to stop scheduler", "error", err)
		}
	}()

	engine := httpAPI.NewRouter(container)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func allModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RoleModel{},
		&models.SessionModel{},
		&models.ClientModel{},
		&models.SupplierModel{},
		&models.ProductModel{},
		&models.SaleModel{},
		&models.SaleItemModel{},
	}
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

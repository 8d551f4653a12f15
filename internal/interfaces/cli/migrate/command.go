package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venda-inc/venda/internal/infrastructure/config"
	"github.com/venda-inc/venda/internal/infrastructure/database"
	"github.com/venda-inc/venda/internal/infrastructure/migration"
	"github.com/venda-inc/venda/internal/infrastructure/persistence/models"
	"github.com/venda-inc/venda/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Bring the database schema up to date for the configured environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env)

	manager := migration.NewManager(env)
	if err := manager.Migrate(database.Get(),
		&models.UserModel{},
		&models.RoleModel{},
		&models.SessionModel{},
		&models.ClientModel{},
		&models.SupplierModel{},
		&models.ProductModel{},
		&models.SaleModel{},
		&models.SaleItemModel{},
	); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

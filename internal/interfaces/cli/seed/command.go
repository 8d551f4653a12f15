package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venda-inc/venda/internal/infrastructure/auth"
	"github.com/venda-inc/venda/internal/infrastructure/config"
	"github.com/venda-inc/venda/internal/infrastructure/database"
	"github.com/venda-inc/venda/internal/infrastructure/repository"
	seedInfra "github.com/venda-inc/venda/internal/infrastructure/seed"
	"github.com/venda-inc/venda/internal/shared/logger"
)

var (
	env          string
	fixturesPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed fixtures",
		Long:  `Load roles, users, clients, suppliers and products from a YAML fixtures file. Existing records are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&fixturesPath, "fixtures", "f", "./configs/seed.yaml", "Path to the fixtures file")

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

	db := database.Get()
	seeder := seedInfra.NewSeeder(
		repository.NewUserRepository(db),
		repository.NewRoleRepository(db),
		repository.NewClientRepository(db),
		repository.NewSupplierRepository(db),
		repository.NewProductRepository(db),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	fixtures, err := seedInfra.LoadFixtures(fixturesPath)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	log.Infow("seeding database", "environment", env, "fixtures", fixturesPath)

	if err := seeder.Run(context.Background(), fixtures); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed successfully")
	return nil
}

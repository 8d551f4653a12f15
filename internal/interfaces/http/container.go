// Package http wires the HTTP API: repositories, use cases, handlers and
// middleware.
package http

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "github.com/venda-inc/venda/internal/application/auth/usecases"
	clientUsecases "github.com/venda-inc/venda/internal/application/client/usecases"
	productUsecases "github.com/venda-inc/venda/internal/application/product/usecases"
	reportUsecases "github.com/venda-inc/venda/internal/application/report/usecases"
	saleUsecases "github.com/venda-inc/venda/internal/application/sale/usecases"
	supplierUsecases "github.com/venda-inc/venda/internal/application/supplier/usecases"
	userUsecases "github.com/venda-inc/venda/internal/application/user/usecases"
	"github.com/venda-inc/venda/internal/infrastructure/auth"
	"github.com/venda-inc/venda/internal/infrastructure/config"
	"github.com/venda-inc/venda/internal/infrastructure/email"
	"github.com/venda-inc/venda/internal/infrastructure/permission"
	"github.com/venda-inc/venda/internal/infrastructure/ratelimit"
	"github.com/venda-inc/venda/internal/infrastructure/repository"
	"github.com/venda-inc/venda/internal/infrastructure/scheduler"
	"github.com/venda-inc/venda/internal/interfaces/http/handlers"
	"github.com/venda-inc/venda/internal/interfaces/http/middleware"
	"github.com/venda-inc/venda/internal/shared/logger"
)

// Container holds everything the router and the server command need.
type Container struct {
	Config *config.Config
	Logger logger.Interface

	AuthHandler     *handlers.AuthHandler
	ClientHandler   *handlers.ClientHandler
	SupplierHandler *handlers.SupplierHandler
	ProductHandler  *handlers.ProductHandler
	SaleHandler     *handlers.SaleHandler
	UserHandler     *handlers.UserHandler
	ReportHandler   *handlers.ReportHandler

	AuthMW      *middleware.AuthMiddleware
	PermMW      *middleware.PermissionMiddleware
	RateLimiter ratelimit.RateLimiter

	SweepJob    scheduler.BatchJob
	LowStockJob scheduler.BatchJob
}

// NewContainer builds the dependency graph.
func NewContainer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	rbacModelPath string,
	log logger.Interface,
) (*Container, error) {
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(db, rbacModelPath, log)
	if err != nil {
		return nil, err
	}
	if err := enforcer.InitDefaultPolicies(); err != nil {
		return nil, err
	}

	sanitizer := bluemonday.UGCPolicy()
	mailer := email.NewSMTPMailer(cfg.Email, log)

	loginUC := authUsecases.NewLoginUseCase(userRepo, roleRepo, sessionRepo, hasher, jwtService, cfg.Auth.Session, log)
	logoutUC := authUsecases.NewLogoutUseCase(sessionRepo, log)
	touchUC := authUsecases.NewTouchSessionUseCase(sessionRepo, cfg.Auth.Session, log)

	return &Container{
		Config: cfg,
		Logger: log,

		AuthHandler: handlers.NewAuthHandler(loginUC, logoutUC, log),
		ClientHandler: handlers.NewClientHandler(
			clientUsecases.NewCreateClientUseCase(clientRepo, log),
			clientUsecases.NewGetClientUseCase(clientRepo, log),
			clientUsecases.NewListClientsUseCase(clientRepo, log),
			clientUsecases.NewUpdateClientUseCase(clientRepo, log),
			clientUsecases.NewDeleteClientUseCase(clientRepo, log),
			log,
		),
		SupplierHandler: handlers.NewSupplierHandler(
			supplierUsecases.NewCreateSupplierUseCase(supplierRepo, log),
			supplierUsecases.NewGetSupplierUseCase(supplierRepo, log),
			supplierUsecases.NewListSuppliersUseCase(supplierRepo, log),
			supplierUsecases.NewUpdateSupplierUseCase(supplierRepo, log),
			supplierUsecases.NewDeleteSupplierUseCase(supplierRepo, log),
			log,
		),
		ProductHandler: handlers.NewProductHandler(
			productUsecases.NewCreateProductUseCase(productRepo, supplierRepo, sanitizer, log),
			productUsecases.NewGetProductUseCase(productRepo, log),
			productUsecases.NewListProductsUseCase(productRepo, log),
			productUsecases.NewUpdateProductUseCase(productRepo, supplierRepo, sanitizer, log),
			productUsecases.NewDeleteProductUseCase(productRepo, log),
			log,
		),
		SaleHandler: handlers.NewSaleHandler(
			saleUsecases.NewCreateSaleUseCase(saleRepo, productRepo, clientRepo, log),
			saleUsecases.NewGetSaleUseCase(saleRepo, log),
			saleUsecases.NewListSalesUseCase(saleRepo, log),
			saleUsecases.NewUpdateSaleUseCase(saleRepo, clientRepo, log),
			saleUsecases.NewDeleteSaleUseCase(saleRepo, log),
			log,
		),
		UserHandler: handlers.NewUserHandler(
			userUsecases.NewCreateUserUseCase(userRepo, roleRepo, hasher, log),
			userUsecases.NewGetUserUseCase(userRepo, roleRepo, log),
			userUsecases.NewListUsersUseCase(userRepo, log),
			userUsecases.NewUpdateUserUseCase(userRepo, roleRepo, sessionRepo, log),
			userUsecases.NewDeleteUserUseCase(userRepo, sessionRepo, log),
			userUsecases.NewListRolesUseCase(roleRepo, log),
			log,
		),
		ReportHandler: handlers.NewReportHandler(
			reportUsecases.NewSalesReportUseCase(saleRepo, log),
			reportUsecases.NewInventoryReportUseCase(productRepo, log),
			log,
		),

		AuthMW:      middleware.NewAuthMiddleware(jwtService, touchUC, log),
		PermMW:      middleware.NewPermissionMiddleware(enforcer, log),
		RateLimiter: ratelimit.NewRedisRateLimiter(redisClient),

		SweepJob:    authUsecases.NewSweepSessionsUseCase(sessionRepo, log),
		LowStockJob: productUsecases.NewLowStockAlertUseCase(productRepo, mailer, cfg.Report.AlertRecipients, log),
	}, nil
}

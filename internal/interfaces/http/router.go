package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venda-inc/venda/internal/interfaces/http/middleware"
	"github.com/venda-inc/venda/internal/shared/constants"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(c *Container) *gin.Engine {
	gin.SetMode(c.Config.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Logger(c.Logger))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CORS(c.Config.Server.AllowedOrigins))

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/login", middleware.LoginRateLimit(c.RateLimiter, c.Logger), c.AuthHandler.Login)

	authorized := engine.Group("")
	authorized.Use(c.AuthMW.RequireAuth())
	{
		authorized.POST("/logout", c.AuthHandler.Logout)

		clients := authorized.Group("/clients")
		{
			clients.GET("", c.PermMW.RequirePermission(constants.PermClientsRead), c.ClientHandler.List)
			clients.GET("/:id", c.PermMW.RequirePermission(constants.PermClientsRead), c.ClientHandler.Get)
			clients.POST("", c.PermMW.RequirePermission(constants.PermClientsCreate), c.ClientHandler.Create)
			clients.PUT("/:id", c.PermMW.RequirePermission(constants.PermClientsUpdate), c.ClientHandler.Update)
			clients.DELETE("/:id", c.PermMW.RequirePermission(constants.PermClientsDelete), c.ClientHandler.Delete)
		}

		suppliers := authorized.Group("/suppliers")
		{
			suppliers.GET("", c.PermMW.RequirePermission(constants.PermSuppliersRead), c.SupplierHandler.List)
			suppliers.GET("/:id", c.PermMW.RequirePermission(constants.PermSuppliersRead), c.SupplierHandler.Get)
			suppliers.POST("", c.PermMW.RequirePermission(constants.PermSuppliersWrite), c.SupplierHandler.Create)
			suppliers.PUT("/:id", c.PermMW.RequirePermission(constants.PermSuppliersWrite), c.SupplierHandler.Update)
			suppliers.DELETE("/:id", c.PermMW.RequirePermission(constants.PermSuppliersWrite), c.SupplierHandler.Delete)
		}

		products := authorized.Group("/products")
		{
			products.GET("", c.PermMW.RequirePermission(constants.PermProductsRead), c.ProductHandler.List)
			products.GET("/:id", c.PermMW.RequirePermission(constants.PermProductsRead), c.ProductHandler.Get)
			products.POST("", c.PermMW.RequirePermission(constants.PermProductsCreate), c.ProductHandler.Create)
			products.PUT("/:id", c.PermMW.RequirePermission(constants.PermProductsUpdate), c.ProductHandler.Update)
			products.DELETE("/:id", c.PermMW.RequirePermission(constants.PermProductsDelete), c.ProductHandler.Delete)
		}

		sales := authorized.Group("/sales")
		{
			sales.GET("", c.PermMW.RequirePermission(constants.PermSalesRead), c.SaleHandler.List)
			sales.GET("/:id", c.PermMW.RequirePermission(constants.PermSalesRead), c.SaleHandler.Get)
			sales.POST("", c.PermMW.RequirePermission(constants.PermSalesCreate), c.SaleHandler.Create)
			sales.PUT("/:id", c.PermMW.RequirePermission(constants.PermSalesUpdate), c.SaleHandler.Update)
			sales.DELETE("/:id", c.PermMW.RequirePermission(constants.PermSalesDelete), c.SaleHandler.Delete)
		}

		users := authorized.Group("/users")
		users.Use(c.PermMW.RequirePermission(constants.PermUsersManage))
		{
			users.GET("", c.UserHandler.List)
			users.GET("/:id", c.UserHandler.Get)
			users.POST("", c.UserHandler.Create)
			users.PUT("/:id", c.UserHandler.Update)
			users.DELETE("/:id", c.UserHandler.Delete)
		}

		authorized.GET("/roles", c.PermMW.RequirePermission(constants.PermUsersManage), c.UserHandler.ListRoles)

		reports := authorized.Group("/reports")
		reports.Use(c.PermMW.RequirePermission(constants.PermReportsRead))
		{
			reports.GET("/sales", c.ReportHandler.Sales)
			reports.GET("/inventory", c.ReportHandler.Inventory)
		}
	}

	return engine
}

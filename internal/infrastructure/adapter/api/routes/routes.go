package routes

import (
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/handler"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the API handlers for route registration
type Handlers struct {
	Auth         *handler.AuthHandler
	Account      *handler.AccountHandler
	Token        *handler.TokenHandler
	MoneyRequest *handler.MoneyRequestHandler
	TopUp        *handler.TopUpHandler
	Admin        *handler.AdminHandler
	Upload       *handler.UploadHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	tokenIssuer coreport.TokenIssuer,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	authRequired := middleware.RequireAuth(tokenIssuer, logger)
	adminOnly := middleware.RequireAdmin()

	// Public authentication routes
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
	}

	// Account routes
	userRoutes := api.Group("/users", authRequired)
	{
		userRoutes.GET("/me", h.Account.Me)

		userRoutes.GET("", adminOnly, h.Account.List)
		userRoutes.GET("/by-email", adminOnly, h.Account.GetByEmail)
		userRoutes.PUT("/:id/balance", adminOnly, h.Account.AdjustBalance)
		userRoutes.PUT("/balance-by-student-id", adminOnly, h.Account.AdjustBalanceByStudentID)
	}

	// Meal token routes
	tokenRoutes := api.Group("/tokens", authRequired)
	{
		tokenRoutes.POST("/buy", h.Token.Purchase)
		tokenRoutes.GET("/user", h.Token.ListMine)
		tokenRoutes.GET("/:id", h.Token.Get)

		tokenRoutes.GET("/all", adminOnly, h.Token.ListAll)
		tokenRoutes.PUT("/:id/mark-used", adminOnly, h.Token.MarkUsed)
	}

	// Money request routes
	requestRoutes := api.Group("/money-requests", authRequired)
	{
		requestRoutes.POST("", h.MoneyRequest.Create)
		requestRoutes.GET("/user", h.MoneyRequest.ListMine)

		requestRoutes.GET("", adminOnly, h.MoneyRequest.ListAll)
		requestRoutes.PUT("/:id", adminOnly, h.MoneyRequest.Process)
	}

	// Gateway top-up routes. The success/fail/cancel/ipn callbacks are hit
	// by the payment gateway itself, so they carry no bearer token.
	topUpRoutes := api.Group("/topup")
	{
		topUpRoutes.POST("/initiate", authRequired, h.TopUp.Initiate)
		topUpRoutes.GET("/check/:transactionId", authRequired, h.TopUp.CheckStatus)

		topUpRoutes.POST("/success", h.TopUp.Success)
		topUpRoutes.POST("/fail", h.TopUp.Fail)
		topUpRoutes.POST("/cancel", h.TopUp.Cancel)
		topUpRoutes.POST("/ipn", h.TopUp.IPN)
	}

	// Payment proof upload
	api.POST("/upload", authRequired, h.Upload.Upload)

	// Admin reporting routes
	adminRoutes := api.Group("/admin", authRequired, adminOnly)
	{
		adminRoutes.GET("/stats", h.Admin.Dashboard)
		adminRoutes.GET("/daily-stats", h.Admin.DailyStats)
		adminRoutes.GET("/tomorrow-tokens", h.Admin.TomorrowTokens)
		adminRoutes.PUT("/promote/:id", h.Admin.Promote)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}

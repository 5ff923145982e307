package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/handler"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/middleware"
)

// Handlers bundles every API handler for route registration.
type Handlers struct {
	User    *handler.UserHandler
	Prize   *handler.PrizeHandler
	Crash   *handler.CrashHandler
	Dice    *handler.DiceHandler
	Payment *handler.PaymentHandler
	Health  *handler.HealthHandler
	SDK     *handler.SDKHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		// User routes
		api.GET("/users/:userId", h.User.GetUser)
		api.POST("/users/:userId", h.User.UpsertUser)

		// Prize feed routes
		api.GET("/prizes", h.Prize.ListPrizes)
		api.POST("/prizes", h.Prize.AddPrize)

		// Crash game routes
		api.GET("/crash/bets", h.Crash.ListBets)
		api.POST("/crash/bets", h.Crash.UpsertBet)
		api.DELETE("/crash/bets/clean", h.Crash.CleanBets)

		// Dice game routes
		api.GET("/dice/games", h.Dice.ListGames)
		api.POST("/dice/games", h.Dice.RecordGame)
		api.GET("/dice/stats/:userId", h.Dice.Stats)

		// Payment routes
		api.POST("/payments/verify", h.Payment.VerifyPayment)
		api.POST("/payments/telegram", h.Payment.TelegramPayment)
		api.POST("/payments/check-tonkeeper", h.Payment.CheckTonkeeper)
		api.POST("/payments/check-telegram", h.Payment.CheckTelegram)

		api.GET("/health", h.Health.Health)
	}

	// Same-origin proxy for the TON Connect SDK
	router.GET("/tonconnect.min.js", h.SDK.Serve)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}

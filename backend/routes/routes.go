package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/controllers"
	"github.com/Bhuvantej123/skilltrack-bot/backend/middleware"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/tracker"
)

func SetupRoutes(app *fiber.App, store storage.Store, cfg *config.Config, clock tracker.Clock) {
	// Auth routes
	authController := controllers.NewAuthController(store, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(store, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/settings", authMiddleware, userController.UpdateSettings)

	// Goal / roadmap routes
	goalsController := controllers.NewGoalsController(store, cfg)
	app.Get("/api/catalog", authMiddleware, goalsController.GetCatalog)
	goals := app.Group("/api/goals", authMiddleware)
	goals.Get("/", goalsController.GetGoals)
	goals.Post("/", goalsController.AddGoal)
	goals.Get("/suggestions", goalsController.GetSuggestions)
	goals.Get("/:name/roadmap", goalsController.GetRoadmap)
	goals.Put("/:name/topics/:topic", goalsController.ToggleTopic)
	goals.Delete("/:name", goalsController.DeleteGoal)

	// Log routes
	logsController := controllers.NewLogsController(store, cfg, clock)
	app.Post("/api/logs", authMiddleware, logsController.CreateLog)
	app.Get("/api/logs", authMiddleware, logsController.ListLogs)

	// Progress routes
	progressController := controllers.NewProgressController(store, cfg, clock)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/weekly", authMiddleware, progressController.GetWeekly)
	app.Get("/api/progress/reminder", authMiddleware, progressController.GetReminder)
	app.Get("/api/gamification", authMiddleware, progressController.GetGamification)

	// Leaderboard
	leaderboardController := controllers.NewLeaderboardController(store, cfg)
	app.Get("/api/leaderboard", authMiddleware, leaderboardController.GetLeaderboard)

	// Chat-style journaling (ephemeral sessions)
	chatController := controllers.NewChatController(store, cfg, clock)
	chat := app.Group("/api/chat", authMiddleware)
	chat.Post("/sessions", chatController.CreateSession)
	chat.Post("/sessions/:id/messages", chatController.PostMessage)
	chat.Get("/sessions/:id/messages", chatController.GetHistory)
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/middleware"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/tracker"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

type ProgressController struct {
	Store storage.Store
	Cfg   *config.Config
	Clock tracker.Clock
}

func NewProgressController(store storage.Store, cfg *config.Config, clock tracker.Clock) *ProgressController {
	return &ProgressController{Store: store, Cfg: cfg, Clock: clock}
}

// GetProgress godoc
// @Summary Get per-goal and overall completion
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	profile, err := storage.LoadOrDefault(pc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	perGoal := make([]fiber.Map, 0, len(profile.Goals))
	for _, goal := range profile.Goals {
		perGoal = append(perGoal, fiber.Map{
			"goal":     goal,
			"progress": tracker.GoalProgress(profile, goal),
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"goals":   perGoal,
		"overall": tracker.OverallProgress(profile),
	})
}

// GetWeekly returns the trailing-7-day reconstruction with the tiered
// encouragement message per goal.
func (pc *ProgressController) GetWeekly(c *fiber.Ctx) error {
	profile, err := storage.LoadOrDefault(pc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"weekly": tracker.WeeklySummary(profile, pc.Clock),
	})
}

// GetReminder returns the streak-style nudge based on the last log date.
func (pc *ProgressController) GetReminder(c *fiber.Ctx) error {
	profile, err := storage.LoadOrDefault(pc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"reminder":             tracker.ReminderFor(profile, pc.Clock),
		"notificationsEnabled": profile.Notifications,
	})
}

// GetGamification returns XP, level and unlocked achievements.
func (pc *ProgressController) GetGamification(c *fiber.Ctx) error {
	profile, err := storage.LoadOrDefault(pc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}
	return utils.Success(c, fiber.StatusOK, tracker.GamificationSnapshot(profile))
}

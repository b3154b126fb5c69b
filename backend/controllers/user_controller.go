package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/middleware"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/tracker"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

type UserController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewUserController(store storage.Store, cfg *config.Config) *UserController {
	return &UserController{Store: store, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile summary
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	profile, err := storage.LoadOrDefault(uc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	// Password hash stays out of API responses.
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"username":             profile.Username,
		"goals":                profile.Goals,
		"lastLogDate":          profile.LastLogDate,
		"durations":            profile.Durations,
		"notificationsEnabled": profile.Notifications,
		"overall":              tracker.OverallProgress(profile),
		"gamification":         tracker.GamificationSnapshot(profile),
		"logCount":             len(profile.Logs),
	})
}

type settingsInput struct {
	Goal                 string   `json:"goal"`
	DailyDurationHours   *float64 `json:"dailyDurationHours"`
	NotificationsEnabled *bool    `json:"notificationsEnabled"`
}

// UpdateSettings changes the daily duration target (for one goal, or all
// goals when none is named) and the notifications flag.
func (uc *UserController) UpdateSettings(c *fiber.Ctx) error {
	var input settingsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := middleware.Username(c)
	profile, err := storage.LoadOrDefault(uc.Store, username)
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	if input.DailyDurationHours != nil {
		hours := *input.DailyDurationHours
		if hours <= 0 {
			return utils.BadRequest(c, "dailyDurationHours must be positive")
		}
		if input.Goal != "" {
			if !profile.HasGoal(input.Goal) {
				return utils.NotFound(c, "Goal not selected")
			}
			profile.Durations[input.Goal] = hours
		} else {
			for _, goal := range profile.Goals {
				profile.Durations[goal] = hours
			}
		}
	}
	if input.NotificationsEnabled != nil {
		profile.Notifications = *input.NotificationsEnabled
	}

	if err := uc.Store.Save(username, profile); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"durations":            profile.Durations,
		"notificationsEnabled": profile.Notifications,
	})
}

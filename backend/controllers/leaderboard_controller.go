package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/tracker"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

type LeaderboardController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewLeaderboardController(store storage.Store, cfg *config.Config) *LeaderboardController {
	return &LeaderboardController{Store: store, Cfg: cfg}
}

// GetLeaderboard godoc
// @Summary Top users by overall completion percentage
// @Tags leaderboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := tracker.Leaderboard(lc.Store)
	if err != nil {
		return utils.InternalServerError(c, "Could not scan profiles")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"leaderboard": entries})
}

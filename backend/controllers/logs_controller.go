package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/middleware"
	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/tracker"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

type LogsController struct {
	Store storage.Store
	Cfg   *config.Config
	Clock tracker.Clock
}

func NewLogsController(store storage.Store, cfg *config.Config, clock tracker.Clock) *LogsController {
	return &LogsController{Store: store, Cfg: cfg, Clock: clock}
}

type logInput struct {
	Goal  string   `json:"goal"`
	Goals []string `json:"goals"`
	Text  string   `json:"text"`
}

func (in logInput) goalRefs() []string {
	goals := append([]string{}, in.Goals...)
	if in.Goal != "" {
		goals = append(goals, in.Goal)
	}
	return goals
}

// CreateLog appends a dated journal entry and runs topic detection against
// every referenced goal's roadmap. Blank text is treated as "no log
// submitted" and changes nothing.
func (lc *LogsController) CreateLog(c *fiber.Ctx) error {
	var input logInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return utils.BadRequest(c, "Nothing to log")
	}

	username := middleware.Username(c)
	profile, err := storage.LoadOrDefault(lc.Store, username)
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	// Only currently selected goals get the entry attributed to them.
	goals := input.GoalRefsSelected(profile)
	if len(goals) == 0 {
		return utils.BadRequest(c, "Log must reference at least one selected goal")
	}

	entry := models.LogEntry{
		Date:  lc.Clock.Today().Format(models.DateLayout),
		Goals: goals,
		Entry: input.Text,
	}
	profile.AppendLog(entry)

	detected := map[string][]string{}
	for _, goal := range goals {
		if newTopics := tracker.DetectAndComplete(profile, goal, text); len(newTopics) > 0 {
			detected[goal] = newTopics
		}
	}
	earned := tracker.UpdateAchievements(profile)

	if err := lc.Store.Save(username, profile); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	return utils.Created(c, fiber.Map{
		"log":             entry,
		"detectedTopics":  detected,
		"gamification":    tracker.GamificationSnapshot(profile),
		"newAchievements": earned,
	})
}

// GoalRefsSelected filters the referenced goals down to the ones the
// profile actually has selected, keeping reference order and dropping
// duplicates.
func (in logInput) GoalRefsSelected(p *models.Profile) []string {
	var goals []string
	seen := map[string]struct{}{}
	for _, g := range in.goalRefs() {
		if _, dup := seen[g]; dup || !p.HasGoal(g) {
			continue
		}
		seen[g] = struct{}{}
		goals = append(goals, g)
	}
	return goals
}

// ListLogs returns logs newest-first, optionally filtered by goal and by a
// since date (inclusive). Logs for deleted goals are still returned.
func (lc *LogsController) ListLogs(c *fiber.Ctx) error {
	goal := c.Query("goal")
	since := c.Query("since")

	profile, err := storage.LoadOrDefault(lc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	logs := make([]models.LogEntry, 0, len(profile.Logs))
	for i := len(profile.Logs) - 1; i >= 0; i-- {
		l := profile.Logs[i]
		if goal != "" && !l.References(goal) {
			continue
		}
		if since != "" && l.Date < since {
			continue
		}
		logs = append(logs, l)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"logs": logs})
}

package controllers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Bhuvantej123/skilltrack-bot/backend/catalog"
	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/middleware"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/tracker"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

type GoalsController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewGoalsController(store storage.Store, cfg *config.Config) *GoalsController {
	return &GoalsController{Store: store, Cfg: cfg}
}

// goalParam decodes the :name path segment (goal names contain spaces).
func goalParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// GetCatalog godoc
// @Summary List catalog goals
// @Tags goals
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /catalog [get]
func (gc *GoalsController) GetCatalog(c *fiber.Ctx) error {
	var goals []fiber.Map
	for _, name := range catalog.Goals() {
		rm := catalog.Roadmap(name)
		goals = append(goals, fiber.Map{
			"name":    name,
			"topics":  len(rm.Topics()),
			"periods": len(rm),
		})
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"goals": goals})
}

// GetGoals returns the user's selected goals with per-goal progress.
func (gc *GoalsController) GetGoals(c *fiber.Ctx) error {
	profile, err := storage.LoadOrDefault(gc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	goals := make([]fiber.Map, 0, len(profile.Goals))
	for _, goal := range profile.Goals {
		progress := tracker.GoalProgress(profile, goal)
		goals = append(goals, fiber.Map{
			"name":               goal,
			"progress":           progress,
			"dailyDurationHours": profile.Durations[goal],
		})
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"goals": goals})
}

// AddGoal selects a goal from the catalog. Unknown names become custom
// goals with the starter roadmap. Re-selecting is an idempotent no-op.
func (gc *GoalsController) AddGoal(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return utils.BadRequest(c, "Goal name is required")
	}

	username := middleware.Username(c)
	profile, err := storage.LoadOrDefault(gc.Store, username)
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	if !profile.AddGoal(name, catalog.Roadmap(name)) {
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"message": "Goal already selected",
			"goal":    name,
		})
	}

	if err := gc.Store.Save(username, profile); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	return utils.Created(c, fiber.Map{
		"goal":     name,
		"custom":   !catalog.Has(name),
		"progress": tracker.GoalProgress(profile, name),
	})
}

// DeleteGoal removes the goal, its roadmap, completions and duration.
// Logs referencing the goal stay: they are append-only history.
func (gc *GoalsController) DeleteGoal(c *fiber.Ctx) error {
	name := goalParam(c, "name")
	username := middleware.Username(c)

	profile, err := storage.LoadOrDefault(gc.Store, username)
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}
	if !profile.RemoveGoal(name) {
		return utils.NotFound(c, "Goal not selected")
	}
	if err := gc.Store.Save(username, profile); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Goal removed", "goal": name})
}

// GetRoadmap returns the goal's sections with a completed flag per topic.
func (gc *GoalsController) GetRoadmap(c *fiber.Ctx) error {
	name := goalParam(c, "name")
	profile, err := storage.LoadOrDefault(gc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}
	if !profile.HasGoal(name) {
		return utils.NotFound(c, "Goal not selected")
	}

	var sections []fiber.Map
	for _, s := range profile.Roadmaps[name] {
		topics := make([]fiber.Map, 0, len(s.Topics))
		for _, t := range s.Topics {
			topics = append(topics, fiber.Map{
				"name":      t,
				"completed": profile.IsCompleted(name, t),
			})
		}
		sections = append(sections, fiber.Map{
			"period": s.Period,
			"topics": topics,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"goal":     name,
		"sections": sections,
		"progress": tracker.GoalProgress(profile, name),
	})
}

// ToggleTopic is the manual checkbox path: marks or unmarks a topic.
// Unchecking lowers the completed count but never removes earned badges.
func (gc *GoalsController) ToggleTopic(c *fiber.Ctx) error {
	name := goalParam(c, "name")
	topic := goalParam(c, "topic")

	var input struct {
		Completed bool `json:"completed"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := middleware.Username(c)
	profile, err := storage.LoadOrDefault(gc.Store, username)
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}
	if !profile.HasGoal(name) {
		return utils.NotFound(c, "Goal not selected")
	}
	if !profile.Roadmaps[name].HasTopic(topic) {
		return utils.NotFound(c, "Topic not in roadmap")
	}

	if input.Completed {
		profile.MarkCompleted(name, topic)
	} else {
		profile.UnmarkCompleted(name, topic)
	}
	earned := tracker.UpdateAchievements(profile)

	if err := gc.Store.Save(username, profile); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"goal":            name,
		"topic":           topic,
		"completed":       input.Completed,
		"progress":        tracker.GoalProgress(profile, name),
		"gamification":    tracker.GamificationSnapshot(profile),
		"newAchievements": earned,
	})
}

// GetSuggestions lists catalog goals the user has not selected yet, for the
// "suggest next path" prompt after finishing one.
func (gc *GoalsController) GetSuggestions(c *fiber.Ctx) error {
	profile, err := storage.LoadOrDefault(gc.Store, middleware.Username(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"suggestions": catalog.Remaining(profile.Goals),
	})
}

package controllers

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/middleware"
	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/tracker"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

// ChatMessage is one turn in a chat session.
type ChatMessage struct {
	Role string    `json:"role"` // "user" or "assistant"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type chatSession struct {
	Username string
	History  []ChatMessage
}

// ChatController provides the chat-style journaling surface. Session
// history is ephemeral by design: it lives in memory only, is scoped to one
// session and is never written to the profile document. Only the log
// entries and completions it produces are persisted.
type ChatController struct {
	Store storage.Store
	Cfg   *config.Config
	Clock tracker.Clock

	mu       sync.Mutex
	sessions map[string]*chatSession
}

func NewChatController(store storage.Store, cfg *config.Config, clock tracker.Clock) *ChatController {
	return &ChatController{
		Store:    store,
		Cfg:      cfg,
		Clock:    clock,
		sessions: map[string]*chatSession{},
	}
}

// CreateSession opens a new empty chat session for the user.
func (cc *ChatController) CreateSession(c *fiber.Ctx) error {
	id := uuid.NewString()

	cc.mu.Lock()
	cc.sessions[id] = &chatSession{Username: middleware.Username(c)}
	cc.mu.Unlock()

	return utils.Created(c, fiber.Map{"sessionId": id})
}

// PostMessage appends a user turn, journals it as a log entry attributed to
// all active goals, runs topic detection and replies with a summary.
func (cc *ChatController) PostMessage(c *fiber.Ctx) error {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := middleware.Username(c)
	sessionID := c.Params("id")

	cc.mu.Lock()
	session, ok := cc.sessions[sessionID]
	cc.mu.Unlock()
	if !ok || session.Username != username {
		return utils.NotFound(c, "Unknown chat session")
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return utils.BadRequest(c, "Nothing to log")
	}

	profile, err := storage.LoadOrDefault(cc.Store, username)
	if err != nil {
		return utils.InternalServerError(c, "Could not read profile")
	}

	reply := cc.journal(profile, text)
	if err := cc.Store.Save(username, profile); err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	now := cc.Clock.Today()
	cc.mu.Lock()
	session.History = append(session.History,
		ChatMessage{Role: "user", Text: input.Text, At: now},
		ChatMessage{Role: "assistant", Text: reply, At: now},
	)
	history := append([]ChatMessage{}, session.History...)
	cc.mu.Unlock()

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"reply":   reply,
		"history": history,
	})
}

// GetHistory returns the in-memory transcript of a session.
func (cc *ChatController) GetHistory(c *fiber.Ctx) error {
	cc.mu.Lock()
	session, ok := cc.sessions[c.Params("id")]
	var history []ChatMessage
	if ok {
		history = append(history, session.History...)
	}
	cc.mu.Unlock()

	if !ok || session.Username != middleware.Username(c) {
		return utils.NotFound(c, "Unknown chat session")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"history": history})
}

// journal mutates the profile exactly like a regular log submission spread
// across all active goals, and builds the assistant reply.
func (cc *ChatController) journal(profile *models.Profile, text string) string {
	if len(profile.Goals) == 0 {
		return "Pick a learning path first, then tell me what you worked on!"
	}

	profile.AppendLog(models.LogEntry{
		Date:  cc.Clock.Today().Format(models.DateLayout),
		Goals: append([]string{}, profile.Goals...),
		Entry: text,
	})

	var lines []string
	for _, goal := range profile.Goals {
		newTopics := tracker.DetectAndComplete(profile, goal, text)
		if len(newTopics) == 0 {
			continue
		}
		progress := tracker.GoalProgress(profile, goal)
		lines = append(lines, fmt.Sprintf("%s: marked %s complete — now %d/%d (%d%%).",
			goal, strings.Join(newTopics, ", "), progress.Completed, progress.Total, progress.Percent))
	}
	earned := tracker.UpdateAchievements(profile)
	for _, badge := range earned {
		lines = append(lines, fmt.Sprintf("Achievement unlocked: %s! 🏅", badge))
	}

	if len(lines) == 0 {
		return "Logged it! No roadmap topics detected this time — keep going. 💪"
	}
	g := tracker.GamificationSnapshot(profile)
	lines = append(lines, fmt.Sprintf("You're at %d XP (level %d), %d XP to the next level.",
		g.XP, g.Level, g.XPToNextLevel))
	return strings.Join(lines, "\n")
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
	"github.com/Bhuvantej123/skilltrack-bot/backend/storage"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

type AuthController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewAuthController(store storage.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: store, Cfg: cfg}
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a profile for the username and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body credentialsInput true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := storage.SanitizeUsername(input.Username)
	if username == "" {
		return utils.BadRequest(c, "Invalid username")
	}
	if input.Password == "" {
		return utils.BadRequest(c, "Password is required")
	}

	if _, err := ac.Store.Load(username); err == nil {
		// Advisory, not fatal: the client shows the message as-is.
		return utils.BadRequest(c, "Username already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return utils.InternalServerError(c, "Could not read profile")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	profile := models.NewProfile(username)
	profile.PasswordHash = string(hashedPassword)
	if err := ac.Store.Save(username, profile); err != nil {
		return utils.InternalServerError(c, "Could not create profile")
	}

	token, err := utils.GenerateJWTToken(username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  fiber.Map{"username": username},
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body credentialsInput true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := storage.SanitizeUsername(input.Username)
	profile, err := ac.Store.Load(username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not read profile")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  fiber.Map{"username": username},
	})
}

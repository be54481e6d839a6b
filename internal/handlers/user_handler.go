package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tuiter/internal/models"
	"tuiter/internal/repositories"
	"tuiter/internal/services"
	"tuiter/internal/validation"
)

const userNotFoundDetail = "Usuario no encontrado"

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/registrar", h.HandleRegister)
	router.Post("/ingresar", h.HandleLogin)
	router.Get("/usuarios", h.HandleList)
	router.Get("/usuarios/:id", h.HandleGet)
	router.Put("/usuarios/:id", h.HandleUpdate)
	router.Delete("/usuarios/:id", h.HandleDelete)
}

// HandleRegister registers a new user and returns its public view.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var account models.UserAccount
	if err := c.BodyParser(&account); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(account); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	user, err := h.service.Register(&account)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin checks the given credentials against every stored account.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var creds models.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	result, err := h.service.Login(creds)
	if err != nil {
		log.Printf("Error during login for %s: %v", creds.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not process login",
			"error":   err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleList returns all registered users.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// HandleGet returns a single user by its identifier.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	user, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": userNotFoundDetail})
		}
		log.Printf("Error getting user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleUpdate replaces the account stored under the path identifier.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	var account models.UserAccount
	if err := c.BodyParser(&account); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(account); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	user, err := h.service.Update(c.Params("id"), &account)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": userNotFoundDetail})
		}
		log.Printf("Error updating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleDelete removes a user and returns its public view.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	user, err := h.service.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": userNotFoundDetail})
		}
		log.Printf("Error deleting user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

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

const tweetNotFoundDetail = "Tweet no encontrado"

// TweetHandler handles HTTP requests for tweets.
type TweetHandler struct {
	service  *services.TweetService
	validate *validator.Validate
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(service *services.TweetService) *TweetHandler {
	return &TweetHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the tweet routes with the Fiber app.
func (h *TweetHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/tweets", h.HandleList)
	router.Post("/post_tweet", h.HandlePost)
	router.Get("/tweets/:id", h.HandleGet)
	router.Put("/tweets/:id", h.HandleUpdate)
	router.Delete("/tweets/:id", h.HandleDelete)
}

// HandleList returns all tweets in storage order.
func (h *TweetHandler) HandleList(c *fiber.Ctx) error {
	tweets, err := h.service.List()
	if err != nil {
		log.Printf("Error listing tweets: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tweets",
			"error":   err.Error(),
		})
	}
	return c.JSON(tweets)
}

// HandlePost publishes a new tweet.
func (h *TweetHandler) HandlePost(c *fiber.Ctx) error {
	var tweet models.Tweet
	if err := c.BodyParser(&tweet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(tweet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	posted, err := h.service.Post(&tweet)
	if err != nil {
		log.Printf("Error posting tweet: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not post tweet",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(posted)
}

// HandleGet returns a single tweet by its identifier.
func (h *TweetHandler) HandleGet(c *fiber.Ctx) error {
	tweet, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": tweetNotFoundDetail})
		}
		log.Printf("Error getting tweet: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tweet",
			"error":   err.Error(),
		})
	}
	return c.JSON(tweet)
}

// HandleUpdate replaces the tweet stored under the path identifier.
func (h *TweetHandler) HandleUpdate(c *fiber.Ctx) error {
	var tweet models.Tweet
	if err := c.BodyParser(&tweet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(tweet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	updated, err := h.service.Update(c.Params("id"), &tweet)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": tweetNotFoundDetail})
		}
		log.Printf("Error updating tweet: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update tweet",
			"error":   err.Error(),
		})
	}
	return c.JSON(updated)
}

// HandleDelete removes a tweet. The response carries no body.
func (h *TweetHandler) HandleDelete(c *fiber.Ctx) error {
	if _, err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": tweetNotFoundDetail})
		}
		log.Printf("Error deleting tweet: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete tweet",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

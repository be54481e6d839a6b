package handlers

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tuiter/internal/models"
	"tuiter/internal/validation"
)

// ProductHandler serves the catalog demo endpoints. Nothing here touches a
// store: every operation validates its input and shapes a response from it.
type ProductHandler struct {
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler() *ProductHandler {
	return &ProductHandler{
		validate: validation.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Post("/producto/nuevo", h.HandleCreateProduct)
	router.Get("/producto/detalle", h.HandleProductQuery)
	router.Get("/producto/detalle/:uid", h.HandleProductByUID)
	router.Put("/producto/:uid", h.HandleUpdateProduct)
}

// HandleHome is the greeting endpoint.
func (h *ProductHandler) HandleHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"Hola": "Mundo"})
}

// HandleCreateProduct validates a product and echoes it back without the
// password. A uid is generated when the body does not carry one.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product.SetDefaults()
	if product.UID == "" {
		product.UID = uuid.New().String()
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	product.Contrasena = ""
	return c.JSON(product)
}

// HandleProductQuery echoes the name and uid query parameters. The uid is
// required; the name, when present, must be 1 to 45 characters long.
func (h *ProductHandler) HandleProductQuery(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'uid' is required",
		})
	}

	resp := fiber.Map{"nombre": nil, "uid": uid}
	if nombre := c.Query("nombre"); nombre != "" {
		if utf8.RuneCountInString(nombre) > 45 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Query parameter 'nombre' must be between 1 and 45 characters",
			})
		}
		resp["nombre"] = nombre
	}
	return c.JSON(resp)
}

// HandleProductByUID confirms a product uid taken from the path.
func (h *ProductHandler) HandleProductByUID(c *fiber.Ctx) error {
	uid := c.Params("uid")
	if utf8.RuneCountInString(uid) > 36 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Path parameter 'uid' must be at most 36 characters",
		})
	}
	return c.JSON(fiber.Map{"uid_producto": fmt.Sprintf("%s encontrado!", uid)})
}

// HandleUpdateProduct validates a product together with its store and echoes
// the product back under the uid from the path.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var body struct {
		Producto models.Product `json:"producto"`
		Tienda   models.Store   `json:"tienda"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	body.Producto.SetDefaults()
	body.Tienda.SetDefaults()
	body.Producto.UID = c.Params("uid")

	if err := h.validate.Struct(body.Producto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}
	if err := h.validate.Struct(body.Tienda); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}

	body.Producto.Contrasena = ""
	return c.JSON(body.Producto)
}

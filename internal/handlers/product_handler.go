package handlers

import (
	"errors"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Per-endpoint data shapes inside the envelope.
type listData struct {
	Result *models.PaginationResult `json:"result"`
}

type productData struct {
	Result *models.Product `json:"result"`
}

type updateData struct {
	Updated bool `json:"updated"`
}

type deleteData struct {
	Deleted bool `json:"deleted"`
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/:skip/:pageSize", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns one page of products plus the unfiltered total count.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	skip, err := c.ParamsInt("skip")
	if err != nil || skip < 0 {
		return badRequest(c, "Skip must be a non-negative number!")
	}
	pageSize, err := c.ParamsInt("pageSize")
	if err != nil || pageSize <= 0 {
		return badRequest(c, "Page size must be a positive number!")
	}

	result, err := h.service.ListPage(skip, pageSize)
	if err != nil {
		log.Printf("Error listing products (skip=%d, pageSize=%d): %v", skip, pageSize, err)
		return internalError(c, "Could not retrieve products")
	}
	return okResult(c, listData{Result: result}, "")
}

// HandleGetByID returns a single product, or 404 when absent.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product id must be a number!")
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		log.Printf("Error getting product by ID %d: %v", id, err)
		return internalError(c, "Could not retrieve product")
	}
	if product == nil {
		return notFound(c, "Product not found!")
	}
	return okResult(c, productData{Result: product}, "Product retrieved successfully!")
}

// HandleCreate creates a new product from a form-encoded body. A
// caller-supplied id that already exists is a 400; the store's own
// uniqueness check catches the race the pre-check leaves open.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create request body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(product); err != nil {
		return badRequest(c, validationMessage(err))
	}

	if product.ID != 0 {
		existing, err := h.service.GetByID(product.ID)
		if err != nil {
			log.Printf("Error checking product %d before create: %v", product.ID, err)
			return internalError(c, "Could not create product")
		}
		if existing != nil {
			return badRequest(c, "Product is already exist!")
		}
	}

	if _, err := h.service.Create(&product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateID) {
			return badRequest(c, "Product is already exist!")
		}
		log.Printf("Error creating product: %v", err)
		return badRequest(c, "Product cannot added!")
	}
	return createdResult(c, "api/v1/products", "Product have been added successfully!")
}

// HandleUpdate replaces all four mutable fields of the product whose id is
// in the path. The body id must match the path id.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product id must be a number!")
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update request body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if id != product.ID {
		return badRequest(c, "Product id must be same!")
	}
	if err := h.validate.Struct(product); err != nil {
		return badRequest(c, validationMessage(err))
	}

	updated, err := h.service.Update(&product)
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return internalError(c, "Could not update product")
	}
	if !updated {
		return notFound(c, "Product not found!")
	}
	return okResult(c, updateData{Updated: true}, "Product updated successfully!")
}

// HandleDelete removes a product by id, or 404 when absent.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product id must be a number!")
	}

	deleted, err := h.service.Delete(id)
	if err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return internalError(c, "Could not delete product")
	}
	if !deleted {
		return notFound(c, "Product not found!")
	}
	return okResult(c, deleteData{Deleted: true}, "Product deleted successfully!")
}

// validationMessage flattens validator errors into one client-facing line.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		return "Field '" + e.Field() + "' failed on the '" + e.Tag() + "' tag"
	}
	return "Validation failed"
}

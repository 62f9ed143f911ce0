package handlers

import (
	"errors"
	"log"
	"net/url"

	"inductra/internal/models"
	"inductra/internal/repositories"
	"inductra/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const productNotFound = "Product not found"

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/brand/:brand", h.HandleGetProductsByBrand)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)

	router.Get("/brands", h.HandleGetBrands)
}

// HandleGetProducts lists the whole catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductsByBrand lists products of one brand. Matching is exact and case-sensitive.
func (h *ProductHandler) HandleGetProductsByBrand(c *fiber.Ctx) error {
	brand, err := url.PathUnescape(c.Params("brand"))
	if err != nil {
		brand = c.Params("brand")
	}
	products, err := h.service.GetProductsByBrand(c.UserContext(), brand)
	if err != nil {
		log.Printf("Error getting products for brand %s: %v", brand, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, productNotFound)
		}
		log.Printf("Error getting product by ID %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleCreateProduct validates the body and creates a product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()
	if ok, err := validateBody(c, h.validate, input); !ok {
		return err
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct validates a partial body and applies it.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing update body for product %s: %v", id, err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	patch.Normalize()
	if ok, err := validateBody(c, h.validate, patch); !ok {
		return err
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, productNotFound)
		}
		log.Printf("Error updating product %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct permanently removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete product")
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, productNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetBrands lists the brands shown in the site's brand showcase.
func (h *ProductHandler) HandleGetBrands(c *fiber.Ctx) error {
	return c.JSON(services.Brands)
}

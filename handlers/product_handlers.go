package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"shopsight/models"
)

// HandleGetProduct retrieves a single product by article id, optionally
// with its lifetime sales summary.
// GET /api/products/:articleId?include_sales=true
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	articleID, err := strconv.ParseInt(c.Params("articleId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid article id"})
	}
	includeSales := c.QueryBool("include_sales", true)

	ctx := c.UserContext()

	product, err := h.engine.ByID(ctx, articleID)
	if err != nil {
		log.Printf("❌ [PRODUCTS] Lookup failed for %d: %v", articleID, err)
		return respondError(c, err)
	}

	resp := models.ProductDetailResponse{
		ArticleID:    product.ArticleID,
		Name:         product.Name,
		Type:         product.Type,
		Color:        product.Color,
		Department:   product.Department,
		Section:      product.Section,
		GarmentGroup: product.GarmentGroup,
		ImageURL:     product.ImageURL,
	}

	if includeSales {
		summary, err := h.analyzer.Summary(ctx, articleID)
		if err != nil {
			return respondError(c, err)
		}
		resp.SalesSummary = summary
	}

	return c.JSON(resp)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/knowledge"
	"greengrow-storefront/internal/repository"
)

type CatalogHandler struct {
	productRepo repository.ProductRepository
	kb          *knowledge.Base
	log         zerolog.Logger
}

func NewCatalogHandler(productRepo repository.ProductRepository, kb *knowledge.Base, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		productRepo: productRepo,
		kb:          kb,
		log:         log,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	q := repository.ProductQuery{
		CategorySlug: c.QueryParam("category"),
		Search:       c.QueryParam("search"),
	}
	if v := c.QueryParam("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			q.Limit = limit
		}
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinPrice = &price
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			q.MaxPrice = &price
		}
	}

	products, err := h.productRepo.List(ctx, q)
	if err != nil {
		h.log.Error().Err(err).Msg("product listing error")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch products",
		})
	}

	views := make([]dto.ProductView, len(products))
	for i, p := range products {
		views[i] = dto.ProductView{
			ID:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.CategorySlug,
			CreatedAt:   p.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": views,
		"total":    len(views),
	})
}

func (h *CatalogHandler) ListArticles(c echo.Context) error {
	articles := h.kb.Search(c.QueryParam("q"), c.QueryParam("category"))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"articles":   articles,
		"categories": h.kb.Categories(),
	})
}

func (h *CatalogHandler) GetArticle(c echo.Context) error {
	article, ok := h.kb.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Article not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"article": article,
	})
}

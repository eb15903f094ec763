package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"product-manager/internal/apperr"
	"product-manager/internal/mykafka"
	"product-manager/internal/service"
	"product-manager/pkg/logging"
)

const productEventsTopic = "product_events"

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer *mykafka.Producer
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return apperr.Validation("request.body.invalid")
	}
	if err := validateProduct(&req); err != nil {
		l.Warn("product_create_failed", "status", 400, "reason", "validation", "error", err)
		return err
	}

	prod, err := h.Svc.CreateProduct(ctx, strings.TrimSpace(*req.Name), *req.PriceEur, *req.IsAvailable)
	if err != nil {
		return err
	}

	h.publish(c, prod.Code, map[string]any{
		"type": "product_created",
		"code": prod.Code,
		"name": prod.Name,
	})

	l.Info("product_create_success", "code", prod.Code)
	return c.JSON(http.StatusCreated, toProductResponse(prod))
}

func (h *ProductHTTP) GetProductByCode(c echo.Context) error {
	ctx := c.Request().Context()

	prod, err := h.Svc.GetProductByCode(ctx, c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(prod))
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	filters, err := bindSearchFilters(c)
	if err != nil {
		l.Warn("product_search_failed", "status", 400, "reason", "validation", "error", err)
		return err
	}

	page, err := h.Svc.SearchProducts(ctx, filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPagedResponse(page))
}

func (h *ProductHTTP) UpdateProductByCode(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_failed", "status", 400, "reason", "invalid body", "error", err)
		return apperr.Validation("request.body.invalid")
	}
	if err := validateProduct(&req); err != nil {
		l.Warn("product_update_failed", "status", 400, "reason", "validation", "error", err)
		return err
	}

	prod, err := h.Svc.UpdateProductByCode(ctx, c.Param("code"), strings.TrimSpace(*req.Name), *req.PriceEur, *req.IsAvailable)
	if err != nil {
		return err
	}

	h.publish(c, prod.Code, map[string]any{
		"type": "product_updated",
		"code": prod.Code,
		"name": prod.Name,
	})

	l.Info("product_update_success", "code", prod.Code)
	return c.JSON(http.StatusOK, toProductResponse(prod))
}

func (h *ProductHTTP) DeleteProductByCode(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	code := c.Param("code")
	if err := h.Svc.DeleteProductByCode(ctx, code); err != nil {
		return err
	}

	h.publish(c, code, map[string]any{
		"type": "product_deleted",
		"code": code,
	})

	l.Info("product_delete_success", "code", code)
	return c.NoContent(http.StatusNoContent)
}

func validateProduct(req *ProductRequest) error {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return apperr.Validation("product.name.required")
	}
	if req.PriceEur == nil {
		return apperr.Validation("product.price.required")
	}
	if *req.PriceEur < 0 {
		return apperr.Validation("product.price.negative")
	}
	if req.IsAvailable == nil {
		return apperr.Validation("product.available.required")
	}
	return nil
}

// bindSearchFilters returns nil filters for a bodyless request, which is the
// only case that defaults to ascending order.
func bindSearchFilters(c echo.Context) (*service.SearchFilters, error) {
	if c.Request().ContentLength == 0 {
		return nil, nil
	}

	var req SearchProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, apperr.Validation("request.body.invalid")
	}
	if req.Page != nil && *req.Page < 0 {
		return nil, apperr.Validation("product.search.page.min")
	}
	if req.Size != nil && *req.Size < 1 {
		return nil, apperr.Validation("product.search.size.min")
	}
	if req.Size != nil && *req.Size > 20 {
		return nil, apperr.Validation("product.search.size.max")
	}

	var sortBy *service.SortField
	if req.SortBy != nil {
		switch field := service.SortField(*req.SortBy); field {
		case service.SortByName, service.SortByPrice:
			sortBy = &field
		default:
			return nil, apperr.Validation("product.search.sort.invalid")
		}
	}

	return &service.SearchFilters{
		Name:          req.Name,
		MinPriceEur:   req.MinPriceEur,
		MaxPriceEur:   req.MaxPriceEur,
		MinPriceUsd:   req.MinPriceUsd,
		MaxPriceUsd:   req.MaxPriceUsd,
		Page:          req.Page,
		Size:          req.Size,
		SortBy:        sortBy,
		SortAscending: req.SortAscending,
	}, nil
}

func (h *ProductHTTP) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, productEventsTopic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka_publish_failed", "topic", productEventsTopic, "error", err)
	}
}

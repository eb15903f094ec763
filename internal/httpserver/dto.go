package httpserver

import (
	"product-manager/internal/models"
	"product-manager/internal/service"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProductRequest is shared by create and update. Fields are pointers so
// missing keys are distinguishable from zero values.
type ProductRequest struct {
	Name        *string  `json:"name"`
	PriceEur    *float64 `json:"priceEur"`
	IsAvailable *bool    `json:"isAvailable"`
}

type ProductResponse struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	PriceEur    float64 `json:"priceEur"`
	PriceUsd    float64 `json:"priceUsd"`
	IsAvailable bool    `json:"isAvailable"`
}

type SearchProductRequest struct {
	Name          *string  `json:"name"`
	MinPriceEur   *float64 `json:"minPriceEur"`
	MaxPriceEur   *float64 `json:"maxPriceEur"`
	MinPriceUsd   *float64 `json:"minPriceUsd"`
	MaxPriceUsd   *float64 `json:"maxPriceUsd"`
	Page          *int     `json:"page"`
	Size          *int     `json:"size"`
	SortBy        *string  `json:"sortBy"`
	SortAscending bool     `json:"sortAscending"`
}

type PagedProductResponse struct {
	ProductResponseDtos []ProductResponse `json:"productResponseDtos"`
	Page                int               `json:"page"`
	Size                int               `json:"size"`
	TotalElements       int64             `json:"totalElements"`
	TotalPages          int               `json:"totalPages"`
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		Name:        p.Name,
		Code:        p.Code,
		PriceEur:    p.PriceEur,
		PriceUsd:    p.PriceUsd,
		IsAvailable: p.IsAvailable,
	}
}

func toPagedResponse(page *service.PagedProducts) PagedProductResponse {
	dtos := make([]ProductResponse, 0, len(page.Content))
	for i := range page.Content {
		dtos = append(dtos, toProductResponse(&page.Content[i]))
	}
	return PagedProductResponse{
		ProductResponseDtos: dtos,
		Page:                page.Page,
		Size:                page.Size,
		TotalElements:       page.TotalElements,
		TotalPages:          page.TotalPages,
	}
}

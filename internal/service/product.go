package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"product-manager/internal/apperr"
	"product-manager/internal/models"
	"product-manager/internal/repo"
)

// CurrencyConverter resolves an EUR price into USD. Implementations never
// fail: a rate lookup problem is absorbed behind a fallback rate.
type CurrencyConverter interface {
	UsdPrice(ctx context.Context, priceEur float64) float64
}

type SortField string

const (
	SortByName  SortField = "NAME"
	SortByPrice SortField = "PRICE"
)

const (
	DefaultPage = 0
	DefaultSize = 5

	codeLength = 10
)

// SearchFilters carries the optional search criteria. A nil *SearchFilters
// means the request had no body at all, which defaults to ascending order;
// a present but empty body carries SortAscending=false.
type SearchFilters struct {
	Name          *string
	MinPriceEur   *float64
	MaxPriceEur   *float64
	MinPriceUsd   *float64
	MaxPriceUsd   *float64
	Page          *int
	Size          *int
	SortBy        *SortField
	SortAscending bool
}

type PagedProducts struct {
	Content       []models.Product
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

type ProductService struct {
	Repo     *repo.GormRepo
	Currency CurrencyConverter
}

func (s *ProductService) CreateProduct(ctx context.Context, name string, priceEur float64, isAvailable bool) (*models.Product, error) {
	seq, err := s.Repo.NextCodeSequence(ctx)
	if err != nil {
		return nil, err
	}

	prod := &models.Product{
		Code:        codeFromSequence(seq),
		Name:        name,
		PriceEur:    priceEur,
		PriceUsd:    s.Currency.UsdPrice(ctx, priceEur),
		IsAvailable: isAvailable,
	}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {
	prod, err := s.Repo.FindProductByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product.not.found", code)
		}
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) UpdateProductByCode(ctx context.Context, code, name string, priceEur float64, isAvailable bool) (*models.Product, error) {
	prod, err := s.GetProductByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	prod.Name = name
	prod.PriceEur = priceEur
	prod.PriceUsd = s.Currency.UsdPrice(ctx, priceEur)
	prod.IsAvailable = isAvailable

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) DeleteProductByCode(ctx context.Context, code string) error {
	if err := s.Repo.DeleteProductByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product.not.found", code)
		}
		return err
	}
	return nil
}

func (s *ProductService) SearchProducts(ctx context.Context, f *SearchFilters) (*PagedProducts, error) {
	page, size := DefaultPage, DefaultSize
	sortBy := SortByName
	ascending := true

	var q repo.ProductSearch
	if f != nil {
		if f.Page != nil {
			page = *f.Page
		}
		if f.Size != nil {
			size = *f.Size
		}
		if f.SortBy != nil {
			sortBy = *f.SortBy
		}
		ascending = f.SortAscending

		q.Name = f.Name
		q.MinPriceEur = f.MinPriceEur
		q.MaxPriceEur = f.MaxPriceEur
		q.MinPriceUsd = f.MinPriceUsd
		q.MaxPriceUsd = f.MaxPriceUsd
	}

	q.SortColumn = "name"
	if sortBy == SortByPrice {
		q.SortColumn = "price_eur"
	}
	q.Ascending = ascending
	q.Limit = size
	q.Offset = page * size

	total, items, err := s.Repo.SearchProducts(ctx, q)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &PagedProducts{
		Content:       items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// codeFromSequence renders a sequence value as the public product code:
// uppercase base36, left-padded with zeros to 10 characters.
func codeFromSequence(seq int64) string {
	enc := strings.ToUpper(strconv.FormatInt(seq, 36))
	if len(enc) < codeLength {
		enc = strings.Repeat("0", codeLength-len(enc)) + enc
	}
	return enc
}

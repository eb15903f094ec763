package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-manager/internal/apperr"
)

func TestCodeFromSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seq  int64
		code string
	}{
		{seq: 1, code: "0000000001"},
		{seq: 35, code: "000000000Z"},
		{seq: 36, code: "0000000010"},
		{seq: 123, code: "000000003F"},
		{seq: 46655, code: "0000000ZZZ"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, codeFromSequence(tt.seq))
		assert.Len(t, codeFromSequence(tt.seq), codeLength)
	}
}

func TestProductService_Create_AssignsSequentialCodes(t *testing.T) {
	svc := newTestProductService(t, 1.2)
	ctx := context.Background()

	first, err := svc.CreateProduct(ctx, "Keyboard", 100, true)
	require.NoError(t, err)
	second, err := svc.CreateProduct(ctx, "Mouse", 50, true)
	require.NoError(t, err)

	assert.Equal(t, "0000000001", first.Code)
	assert.Equal(t, "0000000002", second.Code)
	assert.Equal(t, 120.0, first.PriceUsd)
	assert.Equal(t, 60.0, second.PriceUsd)
}

func TestProductService_Create_FallbackRate(t *testing.T) {
	// 1.10 is what the currency client substitutes when the lookup fails.
	svc := newTestProductService(t, 1.10)

	prod, err := svc.CreateProduct(context.Background(), "Monitor", 100, true)
	require.NoError(t, err)
	assert.Equal(t, 110.0, prod.PriceUsd)
}

func TestProductService_GetByCode_NotFound(t *testing.T) {
	svc := newTestProductService(t, 1.2)

	_, err := svc.GetProductByCode(context.Background(), "000000FFFF")
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "product.not.found", ae.Key)
	assert.Equal(t, []any{"000000FFFF"}, ae.Args)
}

func TestProductService_Update_PreservesCode(t *testing.T) {
	svc := newTestProductService(t, 2.0)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, "Webcam", 40, true)
	require.NoError(t, err)

	updated, err := svc.UpdateProductByCode(ctx, created.Code, "Webcam HD", 60, false)
	require.NoError(t, err)

	assert.Equal(t, created.Code, updated.Code)
	assert.Equal(t, "Webcam HD", updated.Name)
	assert.Equal(t, 60.0, updated.PriceEur)
	assert.Equal(t, 120.0, updated.PriceUsd)
	assert.False(t, updated.IsAvailable)
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := newTestProductService(t, 1.2)

	_, err := svc.UpdateProductByCode(context.Background(), "0000000009", "X", 1, true)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "product.not.found", ae.Key)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc := newTestProductService(t, 1.2)

	err := svc.DeleteProductByCode(context.Background(), "0000000009")

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 404, ae.Status)
}

func TestProductService_Search_Defaults(t *testing.T) {
	svc := newTestProductService(t, 1.2)
	ctx := context.Background()

	for _, name := range []string{"g", "c", "a", "e", "b", "f", "d"} {
		_, err := svc.CreateProduct(ctx, name, 10, true)
		require.NoError(t, err)
	}

	page, err := svc.SearchProducts(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 5, page.Size)
	assert.EqualValues(t, 7, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)

	require.Len(t, page.Content, 5)
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, name, page.Content[i].Name)
	}
}

func TestProductService_Search_EmptyFiltersSortDescending(t *testing.T) {
	svc := newTestProductService(t, 1.2)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.CreateProduct(ctx, name, 10, true)
		require.NoError(t, err)
	}

	// A present-but-empty request body carries SortAscending=false.
	page, err := svc.SearchProducts(ctx, &SearchFilters{})
	require.NoError(t, err)

	require.Len(t, page.Content, 3)
	assert.Equal(t, "c", page.Content[0].Name)
}

func TestProductService_Search_NameFilterIsCaseInsensitive(t *testing.T) {
	svc := newTestProductService(t, 1.2)
	ctx := context.Background()

	for _, name := range []string{"Gaming Mouse", "Keyboard", "MOUSE pad"} {
		_, err := svc.CreateProduct(ctx, name, 10, true)
		require.NoError(t, err)
	}

	name := "mouse"
	page, err := svc.SearchProducts(ctx, &SearchFilters{Name: &name, SortAscending: true})
	require.NoError(t, err)

	require.Len(t, page.Content, 2)
	assert.EqualValues(t, 2, page.TotalElements)
	assert.Equal(t, "Gaming Mouse", page.Content[0].Name)
	assert.Equal(t, "MOUSE pad", page.Content[1].Name)
}

func TestProductService_Search_PriceBoundsAndSort(t *testing.T) {
	svc := newTestProductService(t, 2.0)
	ctx := context.Background()

	prices := []float64{10, 20, 30, 40}
	for i, p := range prices {
		_, err := svc.CreateProduct(ctx, string(rune('a'+i)), p, true)
		require.NoError(t, err)
	}

	minEur, maxEur := 15.0, 35.0
	sortBy := SortByPrice
	page, err := svc.SearchProducts(ctx, &SearchFilters{
		MinPriceEur:   &minEur,
		MaxPriceEur:   &maxEur,
		SortBy:        &sortBy,
		SortAscending: false,
	})
	require.NoError(t, err)

	require.Len(t, page.Content, 2)
	assert.Equal(t, 30.0, page.Content[0].PriceEur)
	assert.Equal(t, 20.0, page.Content[1].PriceEur)

	minUsd := 70.0
	page, err = svc.SearchProducts(ctx, &SearchFilters{MinPriceUsd: &minUsd, SortAscending: true})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, 80.0, page.Content[0].PriceUsd)
}

func TestProductService_Search_Pagination(t *testing.T) {
	svc := newTestProductService(t, 1.2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateProduct(ctx, string(rune('a'+i)), 10, true)
		require.NoError(t, err)
	}

	pageNum, size := 2, 2
	page, err := svc.SearchProducts(ctx, &SearchFilters{
		Page:          &pageNum,
		Size:          &size,
		SortAscending: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.EqualValues(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "e", page.Content[0].Name)
}

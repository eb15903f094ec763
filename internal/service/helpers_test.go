package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"product-manager/internal/currency"
	"product-manager/internal/models"
	"product-manager/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Product{}, &models.User{}, &models.CodeSequence{}))

	r := repo.NewGormRepo(gdb)
	require.NoError(t, r.EnsureCodeSequence(context.Background()))
	return r
}

// fixedRate stands in for the HNB client with a deterministic multiplier.
type fixedRate struct {
	rate float64
}

func (f fixedRate) UsdPrice(_ context.Context, priceEur float64) float64 {
	return currency.Round2(priceEur * f.rate)
}

func newTestProductService(t *testing.T, rate float64) *ProductService {
	t.Helper()
	return &ProductService{Repo: newTestRepo(t), Currency: fixedRate{rate: rate}}
}

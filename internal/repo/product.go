package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"product-manager/internal/models"
)

const productCodeSeq = "product_code"

// ProductSearch is the resolved query the service hands to the store: filters,
// sort column and direction, and limit/offset already computed from page/size.
type ProductSearch struct {
	Name        *string
	MinPriceEur *float64
	MaxPriceEur *float64
	MinPriceUsd *float64
	MaxPriceUsd *float64
	SortColumn  string
	Ascending   bool
	Offset      int
	Limit       int
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) FindProductByCode(ctx context.Context, code string) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("code = ?", code).First(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Save(prod).Error
}

func (r *GormRepo) DeleteProductByCode(ctx context.Context, code string) error {
	res := r.DB.WithContext(ctx).Where("code = ?", code).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) SearchProducts(ctx context.Context, q ProductSearch) (int64, []models.Product, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Product{})

	if q.Name != nil && strings.TrimSpace(*q.Name) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(*q.Name)) + "%"
		tx = tx.Where("LOWER(name) LIKE ?", like)
	}
	if q.MinPriceEur != nil {
		tx = tx.Where("price_eur >= ?", *q.MinPriceEur)
	}
	if q.MaxPriceEur != nil {
		tx = tx.Where("price_eur <= ?", *q.MaxPriceEur)
	}
	if q.MinPriceUsd != nil {
		tx = tx.Where("price_usd >= ?", *q.MinPriceUsd)
	}
	if q.MaxPriceUsd != nil {
		tx = tx.Where("price_usd <= ?", *q.MaxPriceUsd)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	dir := "ASC"
	if !q.Ascending {
		dir = "DESC"
	}
	items := make([]models.Product, 0, q.Limit)
	if err := tx.Order(q.SortColumn + " " + dir).Limit(q.Limit).Offset(q.Offset).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

// EnsureCodeSequence seeds the counter row backing the product code sequence.
func (r *GormRepo) EnsureCodeSequence(ctx context.Context) error {
	seq := models.CodeSequence{Name: productCodeSeq}
	return r.DB.WithContext(ctx).Where("name = ?", productCodeSeq).FirstOrCreate(&seq).Error
}

// NextCodeSequence increments and returns the sequence value. The UPDATE takes
// the row lock, so concurrent fetches serialize at the storage layer.
func (r *GormRepo) NextCodeSequence(ctx context.Context) (int64, error) {
	var next int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CodeSequence{}).
			Where("name = ?", productCodeSeq).
			Update("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var seq models.CodeSequence
		if err := tx.Where("name = ?", productCodeSeq).First(&seq).Error; err != nil {
			return err
		}
		next = seq.Value
		return nil
	})
	return next, err
}

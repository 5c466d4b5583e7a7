package repository

import (
	"context"

	"gorm.io/gorm"

	"greengrow-storefront/internal/model"
)

type ProductQuery struct {
	CategorySlug string
	Search       string
	MinPrice     *float64
	MaxPrice     *float64
	Limit        int
}

type ProductRepository interface {
	List(ctx context.Context, q ProductQuery) ([]*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) List(ctx context.Context, q ProductQuery) ([]*model.Product, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	query := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("is_active = ?", true)

	if q.CategorySlug != "" && q.CategorySlug != "all-products" {
		query = query.Where("category_slug = ?", q.CategorySlug)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}

	var products []*model.Product
	err := query.Order("created_at DESC").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

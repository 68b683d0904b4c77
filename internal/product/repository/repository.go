package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/product/domain"
	"github.com/tair/ims-admin/pkg/database"
)

// GormProductRepository implements domain.ProductRepository on GORM
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return apperr.FromGorm("create product", r.db.WithContext(ctx).Create(product).Error)
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, apperr.FromGorm("find product", err)
	}
	return &product, nil
}

// FindAll returns every product matching filter, newest first
func (r *GormProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{})

	if filter.Search != "" {
		like := database.ContainsPattern(filter.Search)
		query = query.Where(`name ILIKE ? ESCAPE '\' OR sku ILIKE ? ESCAPE '\'`, like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Supplier != "" {
		query = query.Where("supplier = ?", filter.Supplier)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	products := []domain.Product{}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&products).Error; err != nil {
		return nil, apperr.FromGorm("list products", err)
	}
	return products, nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return apperr.FromGorm("update product", r.db.WithContext(ctx).Save(product).Error)
}

// Delete removes the row; a missing id is not an error
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return apperr.FromGorm("delete product", r.db.WithContext(ctx).Delete(&domain.Product{}, id).Error)
}


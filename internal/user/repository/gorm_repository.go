package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/pkg/database"
)

// GormUserRepository implements UserRepository interface using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user; a duplicate email is a validation error
func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	return apperr.FromGorm("create user", r.db.WithContext(ctx).Create(user).Error)
}

// FindByID retrieves a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, apperr.FromGorm("find user", err)
	}
	return &user, nil
}

// FindAll retrieves all users matching filter, newest first
func (r *GormUserRepository) FindAll(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := r.db.WithContext(ctx).Model(&domain.User{})

	if filter.Search != "" {
		like := database.ContainsPattern(filter.Search)
		query = query.Where(`name ILIKE ? ESCAPE '\' OR email ILIKE ? ESCAPE '\'`, like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	users := []domain.User{}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&users).Error; err != nil {
		return nil, apperr.FromGorm("list users", err)
	}
	return users, nil
}

// Update saves every column of user
func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) error {
	return apperr.FromGorm("update user", r.db.WithContext(ctx).Save(user).Error)
}

// Delete removes a user; a missing id is not an error
func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	return apperr.FromGorm("delete user", r.db.WithContext(ctx).Delete(&domain.User{}, id).Error)
}

// AutoMigrate runs database migrations
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{})
}

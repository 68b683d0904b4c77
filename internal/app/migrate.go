package app

import (
	"fmt"

	"gorm.io/gorm"

	expenserepo "github.com/tair/ims-admin/internal/expense/repository"
	productrepo "github.com/tair/ims-admin/internal/product/repository"
	settingsrepo "github.com/tair/ims-admin/internal/settings/repository"
	userrepo "github.com/tair/ims-admin/internal/user/repository"
)

type migrator interface {
	AutoMigrate() error
}

// Migrate creates or updates the four tables
func Migrate(db *gorm.DB) error {
	migrators := map[string]migrator{
		"products": productrepo.NewGormProductRepository(db),
		"users":    userrepo.NewGormUserRepository(db),
		"expenses": expenserepo.NewGormExpenseRepository(db),
		"settings": settingsrepo.NewGormSettingsRepository(db),
	}
	for table, m := range migrators {
		if err := m.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", table, err)
		}
	}
	return nil
}

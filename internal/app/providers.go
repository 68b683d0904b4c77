package app

import (
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	dashboardhttp "github.com/tair/ims-admin/internal/dashboard/delivery/http"
	dashboarddomain "github.com/tair/ims-admin/internal/dashboard/domain"
	dashboardrepo "github.com/tair/ims-admin/internal/dashboard/repository"
	dashboardquery "github.com/tair/ims-admin/internal/dashboard/usecase/query"
	expensehttp "github.com/tair/ims-admin/internal/expense/delivery/http"
	expensedomain "github.com/tair/ims-admin/internal/expense/domain"
	expenserepo "github.com/tair/ims-admin/internal/expense/repository"
	expensecommand "github.com/tair/ims-admin/internal/expense/usecase/command"
	expensequery "github.com/tair/ims-admin/internal/expense/usecase/query"
	producthttp "github.com/tair/ims-admin/internal/product/delivery/http"
	productdomain "github.com/tair/ims-admin/internal/product/domain"
	productrepo "github.com/tair/ims-admin/internal/product/repository"
	productcommand "github.com/tair/ims-admin/internal/product/usecase/command"
	productquery "github.com/tair/ims-admin/internal/product/usecase/query"
	settingshttp "github.com/tair/ims-admin/internal/settings/delivery/http"
	settingsdomain "github.com/tair/ims-admin/internal/settings/domain"
	settingsrepo "github.com/tair/ims-admin/internal/settings/repository"
	settingscommand "github.com/tair/ims-admin/internal/settings/usecase/command"
	settingsquery "github.com/tair/ims-admin/internal/settings/usecase/query"
	userhttp "github.com/tair/ims-admin/internal/user/delivery/http"
	userdomain "github.com/tair/ims-admin/internal/user/domain"
	userrepo "github.com/tair/ims-admin/internal/user/repository"
	usercommand "github.com/tair/ims-admin/internal/user/usecase/command"
	userquery "github.com/tair/ims-admin/internal/user/usecase/query"
	"github.com/tair/ims-admin/kafka"
	"github.com/tair/ims-admin/pkg/config"
)

// Handlers groups the HTTP handlers mounted on the /api subrouter
type Handlers struct {
	Product   *producthttp.ProductHandler
	User      *userhttp.UserHandler
	Expense   *expensehttp.ExpenseHandler
	Settings  *settingshttp.SettingsHandler
	Dashboard *dashboardhttp.DashboardHandler
}

// ProvideProductRepository provides the traced product repository
func ProvideProductRepository(db *gorm.DB) productdomain.ProductRepository {
	return productrepo.NewTracingProductRepository(productrepo.NewGormProductRepository(db))
}

// ProvideUserRepository provides the traced user repository
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewTracingUserRepository(userrepo.NewGormUserRepository(db))
}

// ProvideExpenseRepository provides the expense repository
func ProvideExpenseRepository(db *gorm.DB) expensedomain.ExpenseRepository {
	return expenserepo.NewGormExpenseRepository(db)
}

// ProvideSettingsRepository provides the settings repository
func ProvideSettingsRepository(db *gorm.DB) settingsdomain.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(db)
}

// ProvideOverviewRepository provides the dashboard aggregate repository
func ProvideOverviewRepository(db *gorm.DB) dashboarddomain.OverviewRepository {
	return dashboardrepo.NewGormOverviewRepository(db)
}

func ProvideResetPasswordHandler(repo userdomain.UserRepository, publisher kafka.EventPublisher, cfg *config.Config) *usercommand.ResetPasswordHandler {
	return usercommand.NewResetPasswordHandler(repo, publisher, cfg.ResetPasswordPlaceholder)
}

func ProvideStoreLogoHandler(cfg *config.Config) *settingscommand.StoreLogoHandler {
	return settingscommand.NewStoreLogoHandler(cfg.UploadDir)
}

// ProvideClock provides the wall clock used by the overview
func ProvideClock() dashboarddomain.Clock {
	return time.Now
}

var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideUserRepository,
	ProvideExpenseRepository,
	ProvideSettingsRepository,
	ProvideOverviewRepository,
)

var ProductSet = wire.NewSet(
	productcommand.NewCreateProductHandler,
	productcommand.NewUpdateProductHandler,
	productcommand.NewDeleteProductHandler,
	productquery.NewListProductsHandler,
	producthttp.NewProductHandler,
)

var UserSet = wire.NewSet(
	usercommand.NewCreateUserHandler,
	usercommand.NewUpdateUserHandler,
	usercommand.NewDeleteUserHandler,
	ProvideResetPasswordHandler,
	userquery.NewListUsersHandler,
	userhttp.NewUserHandler,
)

var ExpenseSet = wire.NewSet(
	expensecommand.NewCreateExpenseHandler,
	expensecommand.NewUpdateExpenseHandler,
	expensecommand.NewDeleteExpenseHandler,
	expensequery.NewListExpensesHandler,
	expensehttp.NewExpenseHandler,
)

var SettingsSet = wire.NewSet(
	settingsquery.NewGetSettingsHandler,
	settingscommand.NewUpdateSettingsHandler,
	ProvideStoreLogoHandler,
	settingshttp.NewSettingsHandler,
)

var DashboardSet = wire.NewSet(
	ProvideClock,
	dashboardquery.NewOverviewMetrics,
	dashboardquery.NewGetOverviewHandler,
	dashboardquery.NewGetBundleHandler,
	dashboardhttp.NewDashboardHandler,
)

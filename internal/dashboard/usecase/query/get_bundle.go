package query

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/dashboard/domain"
	expensedomain "github.com/tair/ims-admin/internal/expense/domain"
	productdomain "github.com/tair/ims-admin/internal/product/domain"
	settingsdomain "github.com/tair/ims-admin/internal/settings/domain"
	userdomain "github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/pkg/logger"
)

// GetBundleHandler composes the combined read behind /data and /login.
// Store failures are logged and masked by the demo dataset.
type GetBundleHandler struct {
	users    userdomain.UserRepository
	products productdomain.ProductRepository
	expenses expensedomain.ExpenseRepository
	settings settingsdomain.SettingsRepository
}

// NewGetBundleHandler creates a new get bundle handler
func NewGetBundleHandler(
	users userdomain.UserRepository,
	products productdomain.ProductRepository,
	expenses expensedomain.ExpenseRepository,
	settings settingsdomain.SettingsRepository,
) *GetBundleHandler {
	return &GetBundleHandler{
		users:    users,
		products: products,
		expenses: expenses,
		settings: settings,
	}
}

// Data returns the /data bundle
func (h *GetBundleHandler) Data(ctx context.Context) domain.Bundle {
	stored, err := h.load(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to load data bundle, serving demo data")
		return dataDemo()
	}
	if isEmpty(stored) {
		return dataDemo()
	}
	return stored
}

// Login returns the /login bundle with the user resolved for email
func (h *GetBundleHandler) Login(ctx context.Context, email string) domain.LoginBundle {
	stored, err := h.load(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to load login bundle, serving demo data")
		demo := dataDemo()
		return domain.LoginBundle{Status: domain.StatusLoggedIn, User: &demo.Users[0], Bundle: demo}
	}

	bundle := stored
	fallback := isEmpty(stored)
	if fallback {
		bundle = loginDemo()
	}

	return domain.LoginBundle{
		Status: domain.StatusLoggedIn,
		User:   resolveUser(stored.Users, bundle.Users, fallback, email),
		Bundle: bundle,
	}
}

func (h *GetBundleHandler) load(ctx context.Context) (domain.Bundle, error) {
	var (
		bundle domain.Bundle
		err    error
	)

	if bundle.Settings, err = h.settings.First(ctx); err != nil {
		return bundle, fmt.Errorf("failed to load settings: %w", err)
	}
	if bundle.Users, err = h.users.FindAll(ctx, userdomain.UserFilter{}); err != nil {
		return bundle, fmt.Errorf("failed to load users: %w", err)
	}
	if bundle.Products, err = h.products.FindAll(ctx, productdomain.ProductFilter{}); err != nil {
		return bundle, fmt.Errorf("failed to load products: %w", err)
	}
	if bundle.Expenses, err = h.expenses.FindAll(ctx, expensedomain.ExpenseFilter{}); err != nil {
		return bundle, fmt.Errorf("failed to load expenses: %w", err)
	}

	bundle.Relationships.ProductAssignments = domain.AssignProducts(bundle.Products, bundle.Users)
	return bundle, nil
}

// isEmpty reports whether users, products and expenses are all empty.
// Settings does not count.
func isEmpty(b domain.Bundle) bool {
	return len(b.Users) == 0 && len(b.Products) == 0 && len(b.Expenses) == 0
}

// resolveUser picks the current user: the stored user with a matching
// email; with the fallback active, the demo user with that email (or the
// default demo email); otherwise the first stored user, then the first
// returned user.
func resolveUser(stored, returned []userdomain.User, fallback bool, email string) *userdomain.User {
	if email != "" {
		if u := findByEmail(stored, email); u != nil {
			return u
		}
	}

	if fallback {
		want := email
		if want == "" {
			want = DefaultDemoEmail
		}
		if u := findByEmail(returned, want); u != nil {
			return u
		}
	} else if len(stored) > 0 {
		return &stored[0]
	}

	if len(returned) > 0 {
		return &returned[0]
	}
	return nil
}

func findByEmail(users []userdomain.User, email string) *userdomain.User {
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}

//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/ims-admin/kafka"
	"github.com/tair/ims-admin/pkg/config"
)

// InitializeHandlers initializes every HTTP handler with its dependencies
func InitializeHandlers(db *gorm.DB, publisher kafka.EventPublisher, cfg *config.Config, reg prometheus.Registerer) (*Handlers, error) {
	wire.Build(
		RepositorySet,
		ProductSet,
		UserSet,
		ExpenseSet,
		SettingsSet,
		DashboardSet,
		wire.Struct(new(Handlers), "*"),
	)
	return nil, nil
}

package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/settings/domain"
)

var tracer = otel.Tracer("settings-repository")

// GormSettingsRepository implements domain.SettingsRepository
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Settings{})
}

// First returns the lowest-id row, or nil when the table is empty
func (r *GormSettingsRepository) First(ctx context.Context) (*domain.Settings, error) {
	ctx, span := tracer.Start(ctx, "repository.settings.First")
	defer span.End()

	var settings domain.Settings
	err := r.db.WithContext(ctx).Order("id ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, apperr.FromGorm("load settings", err)
	}
	return &settings, nil
}

// Save inserts the row when it has no id, otherwise overwrites it
func (r *GormSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	ctx, span := tracer.Start(ctx, "repository.settings.Save")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return apperr.FromGorm("save settings", err)
	}
	return nil
}

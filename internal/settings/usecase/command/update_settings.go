package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/settings/domain"
	"github.com/tair/ims-admin/kafka"
)

// UpdateSettingsCommand is a patch over the singleton row
type UpdateSettingsCommand struct {
	CompanyName              *string
	Currency                 *string
	Timezone                 *string
	DefaultLowStockThreshold *int
}

// UpdateSettingsHandler handles update settings command
type UpdateSettingsHandler struct {
	repo      domain.SettingsRepository
	publisher kafka.EventPublisher
}

// NewUpdateSettingsHandler creates a new update settings handler
func NewUpdateSettingsHandler(repo domain.SettingsRepository, publisher kafka.EventPublisher) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{repo: repo, publisher: publisher}
}

// Handle applies the patch, creating the row with defaults when absent
func (h *UpdateSettingsHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) (*domain.Settings, error) {
	settings, err := h.repo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings == nil {
		settings = domain.NewDefault()
	}

	if cmd.CompanyName != nil {
		if strings.TrimSpace(*cmd.CompanyName) == "" {
			return nil, apperr.Validation("company_name cannot be empty")
		}
		settings.CompanyName = *cmd.CompanyName
	}
	if cmd.Currency != nil {
		settings.Currency = *cmd.Currency
	}
	if cmd.Timezone != nil {
		settings.Timezone = *cmd.Timezone
	}
	if cmd.DefaultLowStockThreshold != nil {
		if *cmd.DefaultLowStockThreshold < 0 {
			return nil, apperr.Validation("default_low_stock_threshold must not be negative")
		}
		settings.DefaultLowStockThreshold = *cmd.DefaultLowStockThreshold
	}

	action := kafka.ActionUpdated
	if settings.ID == 0 {
		action = kafka.ActionCreated
	}

	if err := h.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntitySettings, action, settings.ID))
	return settings, nil
}

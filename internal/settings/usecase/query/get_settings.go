package query

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/settings/domain"
)

// GetSettingsHandler returns the settings row, nil when none exists
type GetSettingsHandler struct {
	repo domain.SettingsRepository
}

// NewGetSettingsHandler creates a new get settings handler
func NewGetSettingsHandler(repo domain.SettingsRepository) *GetSettingsHandler {
	return &GetSettingsHandler{repo: repo}
}

// Handle executes the get settings query
func (h *GetSettingsHandler) Handle(ctx context.Context) (*domain.Settings, error) {
	settings, err := h.repo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

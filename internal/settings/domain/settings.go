package domain

import (
	"context"
	"path"
	"strings"
	"time"
)

// Defaults for a freshly created settings row
const (
	DefaultCompanyName       = "Acme Inc."
	DefaultCurrency          = "USD"
	DefaultTimezone          = "UTC"
	DefaultLowStockThreshold = 10
)

// LogoTypes maps each accepted logo content type, as sniffed from the
// uploaded bytes, to the extension the stored file is given.
var LogoTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsLogoFile reports whether name carries one of the stored logo extensions
func IsLogoFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, allowed := range LogoTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Settings is the singleton application settings row
type Settings struct {
	ID                       uint      `json:"id" gorm:"primaryKey"`
	CompanyName              string    `json:"company_name" gorm:"not null"`
	LogoFilename             *string   `json:"logo_filename"`
	Currency                 string    `json:"currency" gorm:"not null"`
	Timezone                 string    `json:"timezone" gorm:"not null"`
	DefaultLowStockThreshold int       `json:"default_low_stock_threshold" gorm:"not null"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Settings) TableName() string {
	return "settings"
}

// NewDefault returns an unsaved row carrying the default values
func NewDefault() *Settings {
	return &Settings{
		CompanyName:              DefaultCompanyName,
		Currency:                 DefaultCurrency,
		Timezone:                 DefaultTimezone,
		DefaultLowStockThreshold: DefaultLowStockThreshold,
	}
}

// SettingsRepository defines the contract for settings data access.
// First returns nil, nil when no row exists.
type SettingsRepository interface {
	First(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}

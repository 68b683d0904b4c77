package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/settings/domain"
	"github.com/tair/ims-admin/pkg/logger"
)

// StoreLogoCommand carries an uploaded logo file
type StoreLogoCommand struct {
	OriginalName string
	Content      io.Reader
}

// StoredLogo describes the file written to the upload directory
type StoredLogo struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
}

// StoreLogoHandler writes uploaded logos under a fixed directory.
// The settings row is left untouched.
type StoreLogoHandler struct {
	uploadDir string
}

// NewStoreLogoHandler creates a new store logo handler
func NewStoreLogoHandler(uploadDir string) *StoreLogoHandler {
	return &StoreLogoHandler{uploadDir: uploadDir}
}

// sniffLen is the prefix http.DetectContentType looks at
const sniffLen = 512

// Handle saves the content under a generated name. Only images listed in
// domain.LogoTypes are accepted, judged by their bytes rather than the
// client supplied name.
func (h *StoreLogoHandler) Handle(ctx context.Context, cmd StoreLogoCommand) (*StoredLogo, error) {
	if cmd.Content == nil {
		return nil, apperr.Validation("logo file is required")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(cmd.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read logo file: %w", err)
	}
	if n == 0 {
		return nil, apperr.Validation("logo file is empty")
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := domain.LogoTypes[contentType]
	if !ok {
		return nil, apperr.Validation("unsupported logo type %s", contentType)
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create logo file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.MultiReader(bytes.NewReader(head), cmd.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to write logo file: %w", err)
	}

	logger.Info(ctx).
		Str("filename", filename).
		Str("original_name", cmd.OriginalName).
		Str("content_type", contentType).
		Int64("bytes", written).
		Msg("Logo stored")

	return &StoredLogo{Filename: filename, OriginalName: cmd.OriginalName}, nil
}

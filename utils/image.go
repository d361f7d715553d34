package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
)

const maxImageSize = 10 << 20 // 10MB

// SaveImage writes an uploaded image under dir with a random filename and
// returns the public path it will be served from ("/uploads/<name>").
func SaveImage(file *multipart.FileHeader, dir string) (string, error) {
	if file.Size > maxImageSize {
		return "", fmt.Errorf("%w: file too large", apperr.ErrUploadFailed)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
	default:
		return "", fmt.Errorf("%w: unsupported image type %q", apperr.ErrUploadFailed, ext)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	return "/uploads/" + name, nil
}

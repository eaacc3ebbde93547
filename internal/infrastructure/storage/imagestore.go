// Package storage persists uploaded badge and issuer images on the local
// filesystem.
package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// extByMIME maps the accepted upload MIME types to file extensions.
var extByMIME = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

// FileImageStore writes decoded images into a single directory. Uploads
// arrive as base64 data URIs; each stored file gets a fresh random name of
// the form <prefix>_<uuid><ext> so re-uploads never collide.
type FileImageStore struct {
	dir string
}

// NewFileImageStore creates the target directory if needed.
func NewFileImageStore(dir string) (*FileImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("image dir: %w", err)
	}
	return &FileImageStore{dir: dir}, nil
}

// Save decodes dataURI and writes it under a generated filename, returning
// that filename.
func (s *FileImageStore) Save(ctx context.Context, prefix, dataURI string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mime, payload, err := parseDataURI(dataURI)
	if err != nil {
		return "", err
	}

	ext, ok := extByMIME[mime]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", mime)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	filename := fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, filename), raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return filename, nil
}

// parseDataURI splits "data:<mime>;base64,<payload>" into its parts.
func parseDataURI(uri string) (mime, payload string, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", "", fmt.Errorf("not a data URI")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("malformed data URI")
	}
	mime, enc, ok := strings.Cut(header, ";")
	if !ok || enc != "base64" {
		return "", "", fmt.Errorf("data URI must be base64 encoded")
	}
	return mime, payload, nil
}

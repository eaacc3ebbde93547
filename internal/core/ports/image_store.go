package ports

import "context"

// ImageStore persists uploaded images. Save decodes a base64 data URI and
// stores it under a fresh random filename built from prefix plus the original
// extension, returning the stored filename.
type ImageStore interface {
	Save(ctx context.Context, prefix, dataURI string) (string, error)
}

package ports

import (
	"context"
	"io"
)

// MediaStore almacenamiento de imágenes subidas. PublicURL devuelve la URL segura del objeto.
type MediaStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

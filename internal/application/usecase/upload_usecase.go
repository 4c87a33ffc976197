package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
)

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/avif": ".avif",
}

// UploadUseCase sube imágenes al almacenamiento de medios.
type UploadUseCase struct {
	store    ports.MediaStore
	maxBytes int64
	now      func() time.Time
}

// NewUploadUseCase construye el caso de uso; maxMB límite por archivo.
func NewUploadUseCase(store ports.MediaStore, maxMB int) *UploadUseCase {
	return &UploadUseCase{store: store, maxBytes: int64(maxMB) << 20, now: time.Now}
}

// Upload valida tipo y tamaño y guarda la imagen bajo uploads/<yyyy>/<mm>/<uuid><ext>.
func (uc *UploadUseCase) Upload(ctx context.Context, r io.Reader, size int64, contentType string) (*dto.UploadResponse, error) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := imageExt[ct]
	if !ok {
		return nil, validation.FieldErr("file", "solo se aceptan imágenes (jpeg, png, webp, gif, avif)")
	}
	if size <= 0 {
		return nil, validation.FieldErr("file", "el archivo está vacío")
	}
	if size > uc.maxBytes {
		return nil, validation.FieldErr("file", fmt.Sprintf("el archivo supera %d MB", uc.maxBytes>>20))
	}

	now := uc.now().UTC()
	key := fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)
	if err := uc.store.Put(ctx, key, r, size, ct); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	return &dto.UploadResponse{URL: uc.store.PublicURL(key), Key: key, ContentType: ct, Size: size}, nil
}

// Package storage guarda las imágenes subidas en un almacenamiento compatible con S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/pkg/config"
)

// MinioStore implementa ports.MediaStore sobre MinIO/S3.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var _ ports.MediaStore = (*MinioStore)(nil)

// NewMinioStore conecta con el endpoint y crea el bucket si no existe.
func NewMinioStore(ctx context.Context, cfg config.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cliente minio: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: crear bucket: %w", err)
		}
	}
	return &MinioStore{client: client, bucket: cfg.Bucket, baseURL: PublicBaseURL(cfg)}, nil
}

// Put sube el objeto.
func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return fmt.Errorf("storage: put %s: %w", key, err)
	}
	return nil
}

// Delete elimina el objeto.
func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// PublicURL URL de lectura del objeto.
func (s *MinioStore) PublicURL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

// PublicBaseURL base pública de los objetos: STORAGE_PUBLIC_URL o <esquema>://<endpoint>/<bucket>.
func PublicBaseURL(cfg config.StorageConfig) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
}

// ErrDisabled se devuelve cuando no hay almacenamiento de medios configurado.
var ErrDisabled = errors.New("storage: almacenamiento de medios no configurado (STORAGE_ENDPOINT)")

// Disabled implementa ports.MediaStore rechazando toda escritura.
type Disabled struct{}

func (Disabled) Put(context.Context, string, io.Reader, int64, string) error { return ErrDisabled }
func (Disabled) Delete(context.Context, string) error                        { return ErrDisabled }
func (Disabled) PublicURL(string) string                                     { return "" }

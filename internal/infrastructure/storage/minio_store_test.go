package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Interiores-api/internal/infrastructure/storage"
	"github.com/jhoicas/Interiores-api/pkg/config"
)

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://s3.example.com/media",
		storage.PublicBaseURL(config.StorageConfig{Endpoint: "s3.example.com", Bucket: "media", UseSSL: true}))
	assert.Equal(t, "http://localhost:9000/media",
		storage.PublicBaseURL(config.StorageConfig{Endpoint: "localhost:9000/", Bucket: "media"}))
	assert.Equal(t, "https://cdn.example.com",
		storage.PublicBaseURL(config.StorageConfig{Endpoint: "s3", Bucket: "media", PublicURL: "https://cdn.example.com/"}))
}

func TestDisabled_RechazaSubidas(t *testing.T) {
	var d storage.Disabled
	err := d.Put(context.Background(), "uploads/a.png", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, storage.ErrDisabled)
	assert.Empty(t, d.PublicURL("uploads/a.png"))
}

package redis

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Interiores-api/internal/application/ports"
)

// DefaultListTTL vigencia de un listado cacheado.
const DefaultListTTL = 5 * time.Minute

// ListCache guarda respuestas de listados como JSON bajo prefix:<md5 de la consulta>.
type ListCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

var _ ports.ListCache = (*ListCache)(nil)

// NewListCache construye la caché. prefix separa los espacios de claves (p. ej. "products").
func NewListCache(client *goredis.Client, prefix string, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &ListCache{client: client, prefix: "interiores:cache:" + prefix, ttl: ttl}
}

func (c *ListCache) key(query interface{}) (string, error) {
	raw, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("cache: serializar consulta: %w", err)
	}
	sum := md5.Sum(raw)
	return c.prefix + ":" + hex.EncodeToString(sum[:]), nil
}

// Get carga en dest la respuesta cacheada. Devuelve false si no hay entrada.
func (c *ListCache) Get(ctx context.Context, query interface{}, dest interface{}) (bool, error) {
	k, err := c.key(query)
	if err != nil {
		return false, err
	}
	raw, err := c.client.Get(ctx, k).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: decodificar: %w", err)
	}
	return true, nil
}

// Set guarda value con el TTL configurado.
func (c *ListCache) Set(ctx context.Context, query interface{}, value interface{}) error {
	k, err := c.key(query)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: serializar: %w", err)
	}
	if err := c.client.Set(ctx, k, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set: %w", err)
	}
	return nil
}

// Invalidate borra todas las entradas del prefijo.
func (c *ListCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+":*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache: scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache: del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

package ports

import "context"

// ListCache caché de respuestas de listados (productos) indexada por la consulta tipada.
// Los errores de caché no deben interrumpir la petición: el use case vuelve a la base de datos.
type ListCache interface {
	Get(ctx context.Context, query interface{}, dest interface{}) (bool, error)
	Set(ctx context.Context, query interface{}, value interface{}) error
	Invalidate(ctx context.Context) error
}

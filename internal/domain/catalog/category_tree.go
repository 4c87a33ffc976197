// Package catalog contiene las reglas del árbol de categorías.
package catalog

import (
	"context"

	"github.com/jhoicas/Interiores-api/internal/domain"
)

// ParentLookup devuelve el parentID de una categoría (nil si es raíz).
// found=false si la categoría no existe.
type ParentLookup func(ctx context.Context, categoryID string) (parentID *string, found bool, err error)

// ValidateParent verifica que asignar proposedParentID como padre de categoryID no cree un ciclo.
//
// Recorre la cadena de padres hacia arriba desde el padre propuesto, un salto por consulta,
// hasta llegar a la raíz. Si en el camino aparece categoryID, el cambio cerraría un ciclo.
// El conjunto de visitados corta también ciclos que ya existieran en los datos.
func ValidateParent(ctx context.Context, categoryID, proposedParentID string, lookup ParentLookup) error {
	if proposedParentID == "" {
		return nil
	}
	if proposedParentID == categoryID {
		return domain.ErrCircularReference
	}

	visited := map[string]struct{}{}
	current := proposedParentID
	for {
		if current == categoryID {
			return domain.ErrCircularReference
		}
		if _, seen := visited[current]; seen {
			return domain.ErrCircularReference
		}
		visited[current] = struct{}{}

		parentID, found, err := lookup(ctx, current)
		if err != nil {
			return err
		}
		if !found {
			if current == proposedParentID {
				return domain.ErrNotFound
			}
			return nil
		}
		if parentID == nil || *parentID == "" {
			return nil
		}
		current = *parentID
	}
}

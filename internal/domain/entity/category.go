package entity

import "time"

// Category categoría del catálogo; ParentID forma un árbol (nil si es raíz).
type Category struct {
	ID          string
	Name        string // único
	Slug        string
	Description string
	Image       string
	ParentID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Cargados bajo demanda (includeChildren / includeProducts).
	Children []*Category
	Products []*Product
}

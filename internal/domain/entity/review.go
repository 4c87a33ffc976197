package entity

import "time"

// Review reseña de un producto; única por (UserID, ProductID).
type Review struct {
	ID        string
	ProductID string
	UserID    string
	UserName  string // solo lectura (join con users)
	Rating    int    // 1..5
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

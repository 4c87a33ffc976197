package entity

import "time"

// Address dirección de envío de un usuario.
type Address struct {
	ID         string
	UserID     string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
	CreatedAt  time.Time
}

package entity

import "time"

// Source representa un origen de mercancía: proveedor o punto de recogida (ПВЗ).
// Name es único.
type Source struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

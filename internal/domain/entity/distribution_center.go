package entity

import "time"

// DistributionCenter representa un centro logístico de marketplace (РЦ de WB u Ozon).
// Code es único.
type DistributionCenter struct {
	ID          string
	Code        string
	Name        string
	Marketplace string // "WB", "Ozon", ...
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

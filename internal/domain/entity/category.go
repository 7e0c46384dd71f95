package entity

import "time"

// Category agrupa produtos para navegação e relatórios.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

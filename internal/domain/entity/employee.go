package entity

import "time"

// Papéis de funcionário.
const (
	RoleAdmin      = "admin"
	RoleEstoquista = "estoquista"
)

// Employee representa um funcionário; também é a identidade de login da API.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin | estoquista
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

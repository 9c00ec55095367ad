package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
)

// User representa un usuario de la aplicación. Cada usuario es dueño de
// exactamente una empresa (relación 1:1, ver Company.UserID).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

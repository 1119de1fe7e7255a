package users

import "time"

// Role define los roles soportados.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User representa una cuenta registrada en la plataforma de adopciones.
// Password siempre guarda el hash, nunca el texto plano.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role
	Pets      []string // IDs de mascotas adoptadas por este usuario

	CreatedAt time.Time
	UpdatedAt time.Time
}

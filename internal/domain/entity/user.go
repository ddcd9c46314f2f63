package entity

// Roles con permisos especiales. Cualquier otro valor de rol solo tiene acceso de lectura genérico.
const (
	RoleResourceManager = "resource_manager"
	RoleHR              = "hr"
	RoleLeadership      = "leadership"
)

// User usuario del dashboard interno. La identidad es el email.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en texto plano
	Role         string // resource_manager, hr, leadership, ...
}

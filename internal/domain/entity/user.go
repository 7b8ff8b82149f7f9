package entity

import "time"

// Roles válidos para User.
const (
	RoleMaster    = "master"
	RoleGerente   = "gerente"
	RoleRecepcion = "recepcion"
	RoleTecnico   = "tecnico"
)

// ValidRole indica si el rol es uno de los cuatro conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleMaster, RoleGerente, RoleRecepcion, RoleTecnico:
		return true
	}
	return false
}

// User representa un operador del sistema (mostrador, gerencia o taller).
// El login compara solo email + Active; la contraseña no se verifica (ver auth).
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string // master, gerente, recepcion, tecnico
	Active    bool
	CreatedAt time.Time
}

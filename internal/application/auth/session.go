package auth

import (
	"sync"

	"github.com/asistec/taller-api/internal/domain/entity"
)

// Session guarda la referencia al único "usuario actual" del sistema.
// Es un objeto explícito inyectado en el caso de uso (no un singleton global):
// login lo asigna, logout lo limpia incondicionalmente. El modelo asume un
// solo operador a la vez; el mutex cubre el acceso desde handlers HTTP.
type Session struct {
	mu   sync.RWMutex
	user *entity.User
}

// NewSession construye un slot de sesión vacío.
func NewSession() *Session {
	return &Session{}
}

// Set fija el usuario actual.
func (s *Session) Set(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Clear limpia la sesión incondicionalmente.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Current devuelve el usuario actual, o nil si no hay sesión.
func (s *Session) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

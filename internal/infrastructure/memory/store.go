// Package memory implementa los puertos de repositorio sobre estructuras en
// memoria. No hay persistencia: todo el estado vive lo que vive el proceso y
// se re-siembra al arrancar (ver seed.go).
//
// Cada repositorio guarda sus registros en un slice (orden de creación
// preservado) más un índice id → posición, bajo un sync.RWMutex propio. Los
// métodos de lectura devuelven copias para que el caso de uso pueda mutar y
// validar sin tocar la tienda hasta llamar a Update.
package memory

import "github.com/asistec/taller-api/internal/domain"

// errNotFound atajo para los Update sobre ids desconocidos.
var errNotFound = domain.ErrNotFound

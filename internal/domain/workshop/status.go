// Package workshop contiene las reglas puras del ciclo de vida de una orden
// de servicio (sin dependencias de aplicación ni de infraestructura).
package workshop

// Estados de una orden de servicio, en orden de avance.
// Asignar técnico fuerza en_proceso; cualquier otro avance (cotizado,
// aprobado, completado) llega por la actualización genérica de la orden.
const (
	StatusRecibido   = "recibido"
	StatusCotizado   = "cotizado"
	StatusAprobado   = "aprobado"
	StatusEnProceso  = "en_proceso"
	StatusCompletado = "completado"
)

// statusRank posición de cada estado en la secuencia fija.
var statusRank = map[string]int{
	StatusRecibido:   0,
	StatusCotizado:   1,
	StatusAprobado:   2,
	StatusEnProceso:  3,
	StatusCompletado: 4,
}

// ValidStatus indica si el estado pertenece a la taxonomía.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvance indica si una orden puede pasar de from a to.
// El estado solo avanza hacia adelante en la secuencia; nunca retrocede.
// Quedarse en el mismo estado es válido (update parcial sin cambio de estado).
func CanAdvance(from, to string) bool {
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr >= fr
}

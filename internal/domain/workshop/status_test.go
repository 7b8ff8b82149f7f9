package workshop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asistec/taller-api/internal/domain/workshop"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		workshop.StatusRecibido,
		workshop.StatusCotizado,
		workshop.StatusAprobado,
		workshop.StatusEnProceso,
		workshop.StatusCompletado,
	} {
		assert.True(t, workshop.ValidStatus(s), "estado %q debe ser válido", s)
	}
	assert.False(t, workshop.ValidStatus("cancelado"))
	assert.False(t, workshop.ValidStatus(""))
}

// El estado solo avanza hacia adelante en la secuencia fija; quedarse en el
// mismo estado es válido, retroceder nunca.
func TestCanAdvance(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"recibido a en_proceso", workshop.StatusRecibido, workshop.StatusEnProceso, true},
		{"recibido a cotizado", workshop.StatusRecibido, workshop.StatusCotizado, true},
		{"cotizado a aprobado", workshop.StatusCotizado, workshop.StatusAprobado, true},
		{"en_proceso a completado", workshop.StatusEnProceso, workshop.StatusCompletado, true},
		{"mismo estado", workshop.StatusAprobado, workshop.StatusAprobado, true},
		{"recibido directo a completado", workshop.StatusRecibido, workshop.StatusCompletado, true},
		{"completado no retrocede", workshop.StatusCompletado, workshop.StatusEnProceso, false},
		{"en_proceso no vuelve a recibido", workshop.StatusEnProceso, workshop.StatusRecibido, false},
		{"estado desconocido origen", "cancelado", workshop.StatusRecibido, false},
		{"estado desconocido destino", workshop.StatusRecibido, "cancelado", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, workshop.CanAdvance(tc.from, tc.to))
		})
	}
}

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yhorman/productos-api/pkg/normalize"
)

func TestKey(t *testing.T) {
	casos := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"minúsculas", "Teclado", "teclado"},
		{"espacios", "  Teclado  ", "teclado"},
		{"acentos NFC", "Teclado mecánico", "teclado mecánico"},
		{"mayúsculas con eñe", "AÑO", "año"},
		{"vacío", "   ", ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, normalize.Key(c.entrada))
		})
	}
}

func TestKey_MismaClaveParaVariantes(t *testing.T) {
	// Dos escrituras del mismo nombre colisionan en la misma clave.
	assert.Equal(t, normalize.Key("Monitor LG"), normalize.Key("  monitor lg "))
}

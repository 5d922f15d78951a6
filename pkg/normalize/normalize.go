package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Key normaliza un valor para comparación de unicidad y de dominio:
// recorta espacios, aplica NFC y pasa a minúsculas con reglas del español.
// "Activo ", "ACTIVO" y "activo" producen la misma clave.
// El Caser se crea por llamada: no es seguro compartirlo entre goroutines.
func Key(s string) string {
	return cases.Lower(language.Spanish).String(norm.NFC.String(strings.TrimSpace(s)))
}

package dto

import (
	"fmt"
	"strings"
	"time"
)

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP. Field identifica la columna que violó
// una restricción cuando aplica.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Fecha es una fecha de calendario (sin hora) serializada como "2006-01-02".
// Las columnas DATE de PostgreSQL viajan en este formato en la API.
type Fecha struct {
	time.Time
}

// FechaDe construye una Fecha truncando t a día (UTC).
func FechaDe(t time.Time) Fecha {
	return Fecha{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON acepta "YYYY-MM-DD".
func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	f.Time = t
	return nil
}

// MarshalJSON emite "YYYY-MM-DD".
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + f.Format("2006-01-02") + `"`), nil
}

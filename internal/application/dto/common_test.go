package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhorman/productos-api/internal/application/dto"
)

func TestFecha_JSON(t *testing.T) {
	var f dto.Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-10"`), &f))
	assert.Equal(t, 2025, f.Year())
	assert.Equal(t, time.March, f.Month())
	assert.Equal(t, 10, f.Day())

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10"`, string(out))
}

func TestFecha_FormatoInvalido(t *testing.T) {
	var f dto.Fecha
	assert.Error(t, json.Unmarshal([]byte(`"10/03/2025"`), &f))
}

func TestFechaDe_TruncaADia(t *testing.T) {
	f := dto.FechaDe(time.Date(2025, 3, 10, 17, 45, 30, 0, time.UTC))
	assert.Equal(t, "2025-03-10", f.Format("2006-01-02"))
}

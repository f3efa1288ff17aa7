package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirmadorEmitirValidar(t *testing.T) {
	f := NewFirmador("secreto-de-prueba-32-bytes-xxxxx", "geotrack-api", "geotrack-clients", time.Hour)

	raw, err := f.Emitir("token-123", "user-1")
	require.NoError(t, err)

	claims, err := f.Validar(raw)
	require.NoError(t, err)
	assert.Equal(t, "token-123", claims.ID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestFirmadorRechazaFirmaAjena(t *testing.T) {
	f1 := NewFirmador("secreto-uno", "geotrack-api", "geotrack-clients", time.Hour)
	f2 := NewFirmador("secreto-dos", "geotrack-api", "geotrack-clients", time.Hour)

	raw, err := f1.Emitir("token-123", "user-1")
	require.NoError(t, err)

	_, err = f2.Validar(raw)
	assert.Error(t, err)
}

func TestFirmadorRechazaEmisorYAudiencia(t *testing.T) {
	emisorAjeno := NewFirmador("secreto", "otro-emisor", "geotrack-clients", time.Hour)
	raw, err := emisorAjeno.Emitir("token-123", "user-1")
	require.NoError(t, err)

	f := NewFirmador("secreto", "geotrack-api", "geotrack-clients", time.Hour)
	_, err = f.Validar(raw)
	assert.Error(t, err)

	audienciaAjena := NewFirmador("secreto", "geotrack-api", "otros-clientes", time.Hour)
	raw, err = audienciaAjena.Emitir("token-123", "user-1")
	require.NoError(t, err)
	_, err = f.Validar(raw)
	assert.Error(t, err)
}

func TestFirmadorRechazaTokenVencido(t *testing.T) {
	f := NewFirmador("secreto", "geotrack-api", "geotrack-clients", -time.Minute)

	raw, err := f.Emitir("token-123", "user-1")
	require.NoError(t, err)

	_, err = f.Validar(raw)
	assert.Error(t, err)
}

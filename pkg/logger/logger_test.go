package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_AgregaServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Service: "bravo-menu", Out: &buf})

	l.Component("entitlement").Info().Msg("no se escribe")
	l.Component("entitlement").Warn().Str("id", "b1").Msg("degradación fallida")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "bravo-menu", entry["service"])
	assert.Equal(t, "entitlement", entry["component"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "b1", entry["id"])
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, "debug", levelOf("debug").String())
	assert.Equal(t, "info", levelOf("").String())
	assert.Equal(t, "info", levelOf("ruidoso").String())
}

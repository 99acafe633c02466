package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Caso 1: los niveles conocidos se parsean y el resto cae en info.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"), "el nivel no distingue mayúsculas")
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

// Caso 2: el constructor aplica el nivel pedido y no rompe sin servicio.
func TestNew_NivelYServicioPorDefecto(t *testing.T) {
	log := New(Config{Env: "production", Level: "error"})
	assert.Equal(t, zerolog.ErrorLevel, log.zl.GetLevel())

	dev := New(Config{Env: "development", Level: "debug", Service: "pruebas"})
	assert.Equal(t, zerolog.DebugLevel, dev.zl.GetLevel())
}

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "nivel %q", in)
	}
}

func TestNew_ArchivoRotado(t *testing.T) {
	file := filepath.Join(t.TempDir(), "directory.log")

	l, err := New(Config{Env: "production", Level: "debug", File: file})
	require.NoError(t, err)

	l.Info().Str("k", "v").Msg("hola")

	_, err = os.Lstat(file)
	assert.NoError(t, err, "el enlace al archivo actual debe existir tras la primera escritura")
}

func TestNamed_AgregaComponente(t *testing.T) {
	l := Nop().Named("bootstrap")
	assert.NotNil(t, l)
	l.Info().Msg("descartado")
}

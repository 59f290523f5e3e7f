package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{
			name:     "debug level",
			level:    "debug",
			expected: zerolog.DebugLevel,
		},
		{
			name:     "info level",
			level:    "info",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "warn level",
			level:    "warn",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "error level",
			level:    "error",
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "mixed case is accepted",
			level:    "WARN",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "invalid level defaults to info",
			level:    "loud",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "empty level defaults to info",
			level:    "",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "pretty output",
			level:    "info",
			pretty:   true,
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestInit_TagsServiceField(t *testing.T) {
	Init("info", false)

	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = log.Logger.Output(&buf)
	defer func() { log.Logger = previous }()

	l := Logger()
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"service":"bagging-service"`)
}

func TestForComponent(t *testing.T) {
	Init("info", false)

	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = previous }()

	l := ForComponent("allocator")
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"allocator"`)
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerWarnWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"property": "transform", "value": "translateX(10px)"})
	log.Warn("descriptor flipped twice")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "descriptor flipped twice", entry["message"])
	require.Equal(t, "transform", entry["property"])
	require.Equal(t, "warn", entry["level"])
}

func TestLoggerDefaultLevelSuppressesInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerWithComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.WithComponent("slider").Error(errors.New("min must be below max"), "invalid props")

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	require.Equal(t, "invalid props", entry["message"])
	require.Equal(t, "slider", entry["component"])
	require.Equal(t, "min must be below max", entry["error"])
}

func TestNilLoggerIsInert(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Warn("no panic expected")
	log.Error(errors.New("ignored"), "still no panic")
	require.Nil(t, log.WithComponent("style"))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

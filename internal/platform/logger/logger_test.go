package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "petclinic", Output: &buf})

	log.With(map[string]any{"request_id": "r-1"}).Info("visit created", map[string]any{"visit_id": 7})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visit created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "petclinic", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.EqualValues(t, 7, entry["visit_id"])
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	log.Info("ignored", nil)
	assert.Empty(t, buf.String())

	log.Warn("kept", map[string]any{"": "skipped", "field": "x"})
	assert.Contains(t, buf.String(), "msg=kept")
	assert.Contains(t, buf.String(), "field=x")
	assert.NotContains(t, buf.String(), "skipped")
}

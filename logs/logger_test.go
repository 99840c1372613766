package logs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takoeight0821/oporder/config"
)

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, closer, err := New(config.Log{Level: "warn"}, buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "hello", "world!")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `level=WARN msg=shown hello=world!`)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oporder.log")
	buf := new(bytes.Buffer)
	logger, closer, err := New(config.Log{Level: "debug", File: path}, buf)
	require.NoError(t, err)

	logger.Debug("evaluated line", "line", 3, "value", 26)
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), `msg="evaluated line" line=3 value=26`)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &record))
	assert.Equal(t, "evaluated line", record["msg"])
	assert.Equal(t, float64(26), record["value"])
}

func TestBadLevel(t *testing.T) {
	_, _, err := New(config.Log{Level: "loud"}, new(bytes.Buffer))
	assert.Error(t, err)
}

func TestToJournalKey(t *testing.T) {
	assert.Equal(t, "LOGS_SPAN", toJournalKey("logs.span"))
	assert.Equal(t, "MODE", toJournalKey("mode"))
	assert.True(t, strings.HasPrefix(toJournalKey("line-2"), "LINE_2"))
}

package app

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/specialistvlad/gatesim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	logger := newLogger("warn", "text", buf, nil)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_JSON(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	newLogger("info", "json", buf, nil).Info("hello", "net", "Y")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "Y", rec["net"])
}

func TestNewLogger_FanoutToFile(t *testing.T) {
	term, file := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	logger := newLogger("debug", "text", term, file)
	logger.Debug("both", "pass", 2)

	assert.Contains(t, term.String(), "msg=both")
	assert.Contains(t, file.String(), `"msg":"both"`)
	assert.Contains(t, file.String(), `"pass":2`)
}

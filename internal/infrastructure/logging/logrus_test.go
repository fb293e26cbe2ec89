package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output with fields", func(t *testing.T) {
		var buf bytes.Buffer
		l := newWithOutput("debug", &buf)
		l.WithField("quote_request_id", "q1").Info("[quote][usecase] completed")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "q1", entry["quote_request_id"])
		assert.Equal(t, "[quote][usecase] completed", entry["msg"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("unknown level is info", func(t *testing.T) {
		l := newWithOutput("loud", &bytes.Buffer{})
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	})
}

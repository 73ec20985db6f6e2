package siteaudit_test

import (
	"testing"

	"github.com/auditkit/siteaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayload(t *testing.T) {
	t.Parallel()

	t.Run("returns bare JSON object unchanged", func(t *testing.T) {
		t.Parallel()

		payload, err := siteaudit.ExtractPayload(`{"content":"hello"}`)

		require.NoError(t, err)
		assert.Equal(t, `{"content":"hello"}`, payload)
	})

	t.Run("strips markdown fences and prose", func(t *testing.T) {
		t.Parallel()

		response := "Here is the improved version:\n```json\n{\"content\":\"better\"}\n```\nLet me know!"

		payload, err := siteaudit.ExtractPayload(response)

		require.NoError(t, err)
		assert.Equal(t, `{"content":"better"}`, payload)
	})

	t.Run("handles nested objects and braces inside strings", func(t *testing.T) {
		t.Parallel()

		response := `prefix {"a":{"b":"close } brace"},"c":1} suffix {"d":2}`

		payload, err := siteaudit.ExtractPayload(response)

		require.NoError(t, err)
		assert.Equal(t, `{"a":{"b":"close } brace"},"c":1}`, payload)
	})

	t.Run("handles escaped quotes inside strings", func(t *testing.T) {
		t.Parallel()

		payload, err := siteaudit.ExtractPayload(`{"a":"quote \" and } brace"}`)

		require.NoError(t, err)
		assert.Equal(t, `{"a":"quote \" and } brace"}`, payload)
	})

	t.Run("no object is unprocessable", func(t *testing.T) {
		t.Parallel()

		_, err := siteaudit.ExtractPayload("plain prose with no structure")

		assert.Equal(t, siteaudit.EUNPROCESSABLE, siteaudit.ErrorCode(err))
	})

	t.Run("unbalanced object is unprocessable", func(t *testing.T) {
		t.Parallel()

		_, err := siteaudit.ExtractPayload(`{"content":"truncated`)

		assert.Equal(t, siteaudit.EUNPROCESSABLE, siteaudit.ErrorCode(err))
	})
}

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	t.Run("decodes into typed struct", func(t *testing.T) {
		t.Parallel()

		var out struct {
			Content string `json:"content"`
		}
		err := siteaudit.DecodePayload("noise {\"content\":\"rewritten\"} more noise", &out)

		require.NoError(t, err)
		assert.Equal(t, "rewritten", out.Content)
	})

	t.Run("malformed JSON is unprocessable", func(t *testing.T) {
		t.Parallel()

		var out map[string]any
		err := siteaudit.DecodePayload(`{content: unquoted}`, &out)

		assert.Equal(t, siteaudit.EUNPROCESSABLE, siteaudit.ErrorCode(err))
	})
}

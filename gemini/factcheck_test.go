package gemini_test

import (
	"testing"

	"github.com/auditkit/siteaudit/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFactCheckPrompt(t *testing.T) {
	t.Parallel()

	t.Run("wraps content and names the payload shape", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildFactCheckPrompt("Our product doubles battery life.")

		assert.Contains(t, prompt, "<content>\nOur product doubles battery life.\n</content>")
		assert.Contains(t, prompt, `"status": "verified|uncertain|unverified"`)
	})
}

func TestConfigs(t *testing.T) {
	t.Parallel()

	t.Run("fact check runs at zero temperature", func(t *testing.T) {
		t.Parallel()

		config := gemini.FactCheckConfig()

		require.NotNil(t, config.Temperature)
		assert.Zero(t, *config.Temperature)
	})

	t.Run("rewrite generation keeps temperature low", func(t *testing.T) {
		t.Parallel()

		config := gemini.GenerateConfig()

		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
	})
}

package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonschema "github.com/nivalis/jsonschema"
)

func TestValidationErrorLocalization(t *testing.T) {
	bundle, err := jsonschema.GetI18n()
	require.NoError(t, err)

	verr := jsonschema.NewValidationError("minimum", "value_below_minimum",
		"{value} should be at least {minimum}", map[string]any{
			"value":   "3",
			"minimum": "5",
		})

	assert.Equal(t, "3 should be at least 5", verr.Error())

	english := bundle.NewLocalizer("en")
	assert.Equal(t, "3 should be at least 5", verr.Localize(english))

	chinese := bundle.NewLocalizer("zh-Hans")
	assert.Equal(t, "3 应不小于 5", verr.Localize(chinese))

	assert.Equal(t, verr.Error(), verr.Localize(nil), "nil localizer falls back to the raw template")
}

package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestSlackFileBuilder(t *testing.T) {
	t.Run("builds from an id", func(t *testing.T) {
		file, err := NewSlackFileBuilder().ID("F0123456").Build()
		require.NoError(t, err)
		require.NotNil(t, file.ID)
		assert.Equal(t, "F0123456", *file.ID)
		assert.Nil(t, file.URL)
	})

	t.Run("builds from a url", func(t *testing.T) {
		file, err := NewSlackFileBuilder().
			URL("https://files.slack.com/files-pri/T0123456-F0123456/xyz.png").
			Build()
		require.NoError(t, err)
		assert.Nil(t, file.ID)
		require.NotNil(t, file.URL)
	})

	t.Run("rejects setting both id and url", func(t *testing.T) {
		_, err := NewSlackFileBuilder().
			ID("F0123456").
			URL("https://files.slack.com/files-pri/T0123456-F0123456/xyz.png").
			Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.ExclusiveField("id", "url")}, errs.AcrossFields())
	})

	t.Run("rejects setting neither id nor url", func(t *testing.T) {
		_, err := NewSlackFileBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.EitherRequired("id", "url")}, errs.AcrossFields())
	})
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsCollectsFieldAndAcrossViolations(t *testing.T) {
	errs := NewErrors("Section")
	errs.AddField("block_id", []Kind{MaxTextLength(255)})
	errs.AddField("fields", []Kind{MaxArraySize(10), MaxTextLength(2000)})
	errs.AddAcross([]Kind{EitherRequired("text", "fields")})

	assert.Equal(t, "Section", errs.Object())
	assert.False(t, errs.Empty())

	require.Len(t, errs.Field("block_id"), 1)
	assert.True(t, Includes(errs.Field("block_id"), MaxTextLength(255)))
	assert.True(t, Includes(errs.Field("fields"), MaxArraySize(10)))
	assert.True(t, Includes(errs.Field("fields"), MaxTextLength(2000)))
	assert.True(t, Includes(errs.AcrossFields(), EitherRequired("text", "fields")))

	assert.Nil(t, errs.Field("text"))
}

func TestErrorsIgnoresEmptyFieldSlices(t *testing.T) {
	errs := NewErrors("Header")
	errs.AddField("text", nil)
	errs.AddField("block_id", []Kind{})
	errs.AddAcross(nil)

	assert.True(t, errs.Empty())
}

func TestErrorsMessageNamesEveryField(t *testing.T) {
	errs := NewErrors("Image")
	errs.AddField("alt_text", []Kind{Required()})
	errs.AddAcross([]Kind{EitherRequired("image_url", "slack_file")})

	msg := errs.Error()
	assert.Contains(t, msg, "Image validation failed")
	assert.Contains(t, msg, "alt_text: required")
	assert.Contains(t, msg, "required either image_url or slack_file")
}

func TestIncludesMatchesExactParameters(t *testing.T) {
	kinds := []Kind{MaxTextLength(255), ExclusiveField("options", "option_groups")}

	assert.True(t, Includes(kinds, MaxTextLength(255)))
	assert.False(t, Includes(kinds, MaxTextLength(150)))
	assert.True(t, Includes(kinds, ExclusiveField("options", "option_groups")))
	assert.False(t, Includes(kinds, ExclusiveField("option_groups", "options")))
}

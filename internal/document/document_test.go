package document

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/testsupport"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func TestParse(t *testing.T) {
	t.Run("decodes YAML", func(t *testing.T) {
		doc, err := Parse([]byte("text: hello\nblocks:\n  - type: divider\n"))
		require.NoError(t, err)
		assert.Equal(t, "hello", doc.Text)
		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, "divider", doc.Blocks[0].Type)
	})

	t.Run("decodes JSON", func(t *testing.T) {
		doc, err := Parse([]byte(`{"blocks": [{"type": "header", "text": "Hi"}]}`))
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, "Hi", doc.Blocks[0].Text)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := Parse([]byte("   \n"))
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Parse([]byte("{not valid"))
		require.Error(t, err)
	})
}

func TestBuild(t *testing.T) {
	t.Run("builds the payload a hand-written builder chain would", func(t *testing.T) {
		doc, err := Load("testdata/release.yaml")
		require.NoError(t, err)

		message, err := Build(doc)
		require.NoError(t, err)

		raw, err := json.Marshal(message)
		require.NoError(t, err)
		testsupport.AssertJSONEqual(t, []byte(`{
			"text": "Release 2.4.0 is ready for review",
			"blocks": [
				{"type": "header", "text": {"type": "plain_text", "text": "Release 2.4.0"}},
				{"type": "section", "text": {"type": "mrkdwn", "text": "All checks passed. *12* commits since the last release."}},
				{"type": "divider"},
				{
					"type": "actions",
					"block_id": "release-actions",
					"elements": [
						{
							"type": "button",
							"text": {"type": "plain_text", "text": "Approve"},
							"action_id": "approve-release",
							"value": "2.4.0",
							"style": "primary"
						},
						{
							"type": "button",
							"text": {"type": "plain_text", "text": "Reject"},
							"action_id": "reject-release",
							"value": "2.4.0",
							"style": "danger"
						}
					]
				}
			]
		}`), raw)
	})

	t.Run("matches the golden payload", func(t *testing.T) {
		doc, err := Load("testdata/release.yaml")
		require.NoError(t, err)

		message, err := Build(doc)
		require.NoError(t, err)

		testsupport.AssertGolden(t, "testdata/release.golden.json", message)
	})

	t.Run("builds context and input blocks", func(t *testing.T) {
		message, err := Build(Document{Blocks: []BlockDef{
			{Type: "context", Elements: []string{"Updated *today*"}},
			{
				Type:        "input",
				Label:       "Release notes",
				ActionID:    "notes",
				Placeholder: "What changed?",
				Multiline:   true,
				Optional:    true,
			},
		}})
		require.NoError(t, err)

		raw, err := json.Marshal(message)
		require.NoError(t, err)
		testsupport.AssertJSONEqual(t, []byte(`{
			"blocks": [
				{"type": "context", "elements": [{"type": "mrkdwn", "text": "Updated *today*"}]},
				{
					"type": "input",
					"label": {"type": "plain_text", "text": "Release notes"},
					"element": {
						"type": "plain_text_input",
						"action_id": "notes",
						"multiline": true,
						"placeholder": {"type": "plain_text", "text": "What changed?"}
					},
					"optional": true
				}
			]
		}`), raw)
	})

	t.Run("rejects unknown block types", func(t *testing.T) {
		_, err := Build(Document{Blocks: []BlockDef{{Type: "carousel"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported block type "carousel"`)
	})

	t.Run("surfaces builder violations", func(t *testing.T) {
		_, err := Build(Document{Blocks: []BlockDef{{Type: "header"}}})
		require.Error(t, err)

		var errs *validation.Errors
		require.True(t, errors.As(err, &errs))
		assert.True(t, validation.Includes(errs.Field("text"), validation.Required()))
	})
}

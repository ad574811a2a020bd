package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

func tableRow(t *testing.T, cells ...TableCell) TableRow {
	t.Helper()
	builder := NewTableRowBuilder()
	for _, cell := range cells {
		builder.Cell(cell)
	}
	row, err := builder.Build()
	require.NoError(t, err)
	return *row
}

func TestTableBuilder(t *testing.T) {
	t.Run("serializes rows as bare cell arrays", func(t *testing.T) {
		block, err := NewTableBuilder().
			Row(tableRow(t, CellText("Name"), CellText("Status"))).
			Row(tableRow(t, CellText("api"), CellText("healthy"))).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "table",
			"rows": [
				[
					{"type": "raw_text", "text": "Name"},
					{"type": "raw_text", "text": "Status"}
				],
				[
					{"type": "raw_text", "text": "api"},
					{"type": "raw_text", "text": "healthy"}
				]
			]
		}`, string(raw))
	})

	t.Run("accepts rich_text cells", func(t *testing.T) {
		text, err := NewRichTextTextBuilder().Text("bold cell").Build()
		require.NoError(t, err)
		section := richTextSection(t, text)
		cell, err := NewRichTextBuilder().Element(&section).Build()
		require.NoError(t, err)

		block, err := NewTableBuilder().
			Row(tableRow(t, cell)).
			Build()
		require.NoError(t, err)

		raw, err := json.Marshal(block)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "table",
			"rows": [
				[
					{
						"type": "rich_text",
						"elements": [
							{
								"type": "rich_text_section",
								"elements": [{"type": "text", "text": "bold cell"}]
							}
						]
					}
				]
			]
		}`, string(raw))
	})

	t.Run("requires rows", func(t *testing.T) {
		_, err := NewTableBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("rows"))
	})

	t.Run("rejects more than 20 column settings", func(t *testing.T) {
		builder := NewTableBuilder().Row(tableRow(t, CellText("a")))
		for i := 0; i < 21; i++ {
			builder.ColumnSetting(ColumnSetting{})
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(20)}, errs.Field("column_settings"))
	})
}

func TestTableRowBuilder(t *testing.T) {
	t.Run("rejects more than 20 cells", func(t *testing.T) {
		builder := NewTableRowBuilder()
		for i := 0; i < 21; i++ {
			builder.Cell(CellText("x"))
		}

		_, err := builder.Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.MaxArraySize(20)}, errs.Field("cells"))
	})

	t.Run("requires cells", func(t *testing.T) {
		_, err := NewTableRowBuilder().Build()
		require.Error(t, err)

		errs := err.(*validation.Errors)
		assert.Equal(t, []validation.Kind{validation.Required()}, errs.Field("cells"))
	})
}

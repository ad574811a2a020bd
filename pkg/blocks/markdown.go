package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Markdown is a markdown layout block.
type Markdown struct {
	Type    string  `json:"type"`
	Text    string  `json:"text"`
	BlockID *string `json:"block_id,omitempty"`
}

func (b *Markdown) block() {}

// MarkdownBuilder builds a Markdown block.
type MarkdownBuilder struct {
	text    validation.Value[string]
	blockID validation.Value[string]
}

func newMarkdownTextCell(text *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[string](),
		validation.MaxText(12000),
	)
}

// NewMarkdownBuilder constructs a MarkdownBuilder.
func NewMarkdownBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{
		text:    newMarkdownTextCell(nil),
		blockID: newBlockIDCell(nil),
	}
}

func (b *MarkdownBuilder) Text(text string) *MarkdownBuilder {
	return b.SetText(&text)
}

func (b *MarkdownBuilder) SetText(text *string) *MarkdownBuilder {
	b.text = newMarkdownTextCell(text)
	return b
}

func (b *MarkdownBuilder) BlockID(id string) *MarkdownBuilder {
	return b.SetBlockID(&id)
}

func (b *MarkdownBuilder) SetBlockID(id *string) *MarkdownBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *MarkdownBuilder) GetText() *string {
	return b.text.Inner()
}

func (b *MarkdownBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *MarkdownBuilder) Build() (*Markdown, error) {
	errs := validation.NewErrors("Markdown")
	errs.AddField("text", b.text.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &Markdown{Type: "markdown", BlockID: b.blockID.Inner()}
	if text := b.text.Inner(); text != nil {
		block.Text = *text
	}
	return block, nil
}

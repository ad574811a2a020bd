package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Header is a header layout block. The text must be a plain_text object.
type Header struct {
	Type    string            `json:"type"`
	Text    *composition.Text `json:"text"`
	BlockID *string           `json:"block_id,omitempty"`
}

func (b *Header) block() {}

// HeaderBuilder builds a Header block.
type HeaderBuilder struct {
	text    validation.Value[composition.Text]
	blockID validation.Value[string]
}

func newHeaderTextCell(text *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[composition.Text](),
		validation.TexterMaxLength[composition.Text](150),
	)
}

// NewHeaderBuilder constructs a HeaderBuilder.
func NewHeaderBuilder() *HeaderBuilder {
	return &HeaderBuilder{
		text:    newHeaderTextCell(nil),
		blockID: newBlockIDCell(nil),
	}
}

func (b *HeaderBuilder) Text(text composition.Text) *HeaderBuilder {
	return b.SetText(&text)
}

func (b *HeaderBuilder) SetText(text *composition.Text) *HeaderBuilder {
	b.text = newHeaderTextCell(text)
	return b
}

func (b *HeaderBuilder) BlockID(id string) *HeaderBuilder {
	return b.SetBlockID(&id)
}

func (b *HeaderBuilder) SetBlockID(id *string) *HeaderBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *HeaderBuilder) GetText() *composition.Text {
	return b.text.Inner()
}

func (b *HeaderBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *HeaderBuilder) Build() (*Header, error) {
	errs := validation.NewErrors("Header")
	errs.AddField("text", b.text.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &Header{
		Type:    "header",
		Text:    b.text.Inner(),
		BlockID: b.blockID.Inner(),
	}, nil
}

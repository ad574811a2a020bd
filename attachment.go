package blockkit

import (
	"github.com/kaicoh/go-blockkit/pkg/blocks"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Attachment is a secondary message attachment carrying its own blocks
// and an optional color bar.
type Attachment struct {
	Blocks []blocks.Block `json:"blocks,omitempty"`
	Color  *string        `json:"color,omitempty"`
}

// AttachmentBuilder builds an Attachment.
type AttachmentBuilder struct {
	blocks *[]blocks.Block
	color  *string
}

// NewAttachmentBuilder constructs an AttachmentBuilder.
func NewAttachmentBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{}
}

// Block appends a layout block.
func (b *AttachmentBuilder) Block(block blocks.Block) *AttachmentBuilder {
	b.blocks = validation.PushItem(b.blocks, block)
	return b
}

func (b *AttachmentBuilder) SetBlocks(blocks *[]blocks.Block) *AttachmentBuilder {
	b.blocks = blocks
	return b
}

// Color sets the hex color of the attachment bar, for example "#36a64f".
func (b *AttachmentBuilder) Color(color string) *AttachmentBuilder {
	return b.SetColor(&color)
}

func (b *AttachmentBuilder) SetColor(color *string) *AttachmentBuilder {
	b.color = color
	return b
}

func (b *AttachmentBuilder) GetBlocks() *[]blocks.Block {
	return b.blocks
}

func (b *AttachmentBuilder) GetColor() *string {
	return b.color
}

// Build returns the attachment.
func (b *AttachmentBuilder) Build() (*Attachment, error) {
	attachment := &Attachment{Color: b.color}
	if b.blocks != nil {
		attachment.Blocks = *b.blocks
	}
	return attachment, nil
}

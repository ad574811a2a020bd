package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Divider is a divider layout block.
type Divider struct {
	Type    string  `json:"type"`
	BlockID *string `json:"block_id,omitempty"`
}

func (b *Divider) block() {}

// DividerBuilder builds a Divider block.
type DividerBuilder struct {
	blockID validation.Value[string]
}

// NewDividerBuilder constructs a DividerBuilder.
func NewDividerBuilder() *DividerBuilder {
	return &DividerBuilder{blockID: newBlockIDCell(nil)}
}

func (b *DividerBuilder) BlockID(id string) *DividerBuilder {
	return b.SetBlockID(&id)
}

func (b *DividerBuilder) SetBlockID(id *string) *DividerBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *DividerBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *DividerBuilder) Build() (*Divider, error) {
	errs := validation.NewErrors("Divider")
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &Divider{Type: "divider", BlockID: b.blockID.Inner()}, nil
}

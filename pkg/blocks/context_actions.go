package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// ContextActions is a context_actions layout block.
type ContextActions struct {
	Type     string                   `json:"type"`
	Elements []ContextActionsElement `json:"elements"`
	BlockID  *string                 `json:"block_id,omitempty"`
}

func (b *ContextActions) block() {}

// ContextActionsBuilder builds a ContextActions block.
type ContextActionsBuilder struct {
	elements *[]ContextActionsElement
	blockID  validation.Value[string]
}

// NewContextActionsBuilder constructs a ContextActionsBuilder.
func NewContextActionsBuilder() *ContextActionsBuilder {
	return &ContextActionsBuilder{blockID: newBlockIDCell(nil)}
}

// Element appends a feedback buttons or icon button element.
func (b *ContextActionsBuilder) Element(element ContextActionsElement) *ContextActionsBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *ContextActionsBuilder) SetElements(elements *[]ContextActionsElement) *ContextActionsBuilder {
	b.elements = elements
	return b
}

func (b *ContextActionsBuilder) BlockID(id string) *ContextActionsBuilder {
	return b.SetBlockID(&id)
}

func (b *ContextActionsBuilder) SetBlockID(id *string) *ContextActionsBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *ContextActionsBuilder) GetElements() *[]ContextActionsElement {
	return b.elements
}

func (b *ContextActionsBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *ContextActionsBuilder) Build() (*ContextActions, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]ContextActionsElement](),
		validation.MaxItems[ContextActionsElement](5),
	)

	errs := validation.NewErrors("ContextActions")
	errs.AddField("elements", elements.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &ContextActions{Type: "context_actions", BlockID: b.blockID.Inner()}
	if inner := elements.Inner(); inner != nil {
		block.Elements = *inner
	}
	return block, nil
}

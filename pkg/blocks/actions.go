package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Actions is an actions layout block.
type Actions struct {
	Type     string           `json:"type"`
	Elements []ActionsElement `json:"elements"`
	BlockID  *string          `json:"block_id,omitempty"`
}

func (b *Actions) block() {}

// ActionsBuilder builds an Actions block.
type ActionsBuilder struct {
	elements *[]ActionsElement
	blockID  validation.Value[string]
}

// NewActionsBuilder constructs an ActionsBuilder.
func NewActionsBuilder() *ActionsBuilder {
	return &ActionsBuilder{blockID: newBlockIDCell(nil)}
}

// Element appends an interactive element.
func (b *ActionsBuilder) Element(element ActionsElement) *ActionsBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *ActionsBuilder) SetElements(elements *[]ActionsElement) *ActionsBuilder {
	b.elements = elements
	return b
}

func (b *ActionsBuilder) BlockID(id string) *ActionsBuilder {
	return b.SetBlockID(&id)
}

func (b *ActionsBuilder) SetBlockID(id *string) *ActionsBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *ActionsBuilder) GetElements() *[]ActionsElement {
	return b.elements
}

func (b *ActionsBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *ActionsBuilder) Build() (*Actions, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]ActionsElement](),
		validation.MaxItems[ActionsElement](25),
	)

	errs := validation.NewErrors("Actions")
	errs.AddField("elements", elements.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &Actions{Type: "actions", BlockID: b.blockID.Inner()}
	if inner := elements.Inner(); inner != nil {
		block.Elements = *inner
	}
	return block, nil
}

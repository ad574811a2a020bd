package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Context is a context layout block. Its elements are image elements and
// text objects wrapped with ContextText.
type Context struct {
	Type     string           `json:"type"`
	Elements []ContextElement `json:"elements"`
	BlockID  *string          `json:"block_id,omitempty"`
}

func (b *Context) block() {}

// ContextBuilder builds a Context block.
type ContextBuilder struct {
	elements *[]ContextElement
	blockID  validation.Value[string]
}

// NewContextBuilder constructs a ContextBuilder.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{blockID: newBlockIDCell(nil)}
}

// Element appends a context element.
func (b *ContextBuilder) Element(element ContextElement) *ContextBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *ContextBuilder) SetElements(elements *[]ContextElement) *ContextBuilder {
	b.elements = elements
	return b
}

func (b *ContextBuilder) BlockID(id string) *ContextBuilder {
	return b.SetBlockID(&id)
}

func (b *ContextBuilder) SetBlockID(id *string) *ContextBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *ContextBuilder) GetElements() *[]ContextElement {
	return b.elements
}

func (b *ContextBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *ContextBuilder) Build() (*Context, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]ContextElement](),
		validation.MaxItems[ContextElement](10),
	)

	errs := validation.NewErrors("Context")
	errs.AddField("elements", elements.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &Context{Type: "context", BlockID: b.blockID.Inner()}
	if inner := elements.Inner(); inner != nil {
		block.Elements = *inner
	}
	return block, nil
}

package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Input is an input layout block. The label and hint must be plain_text
// objects.
type Input struct {
	Type           string            `json:"type"`
	Label          *composition.Text `json:"label"`
	Element        InputElement      `json:"element"`
	DispatchAction *bool             `json:"dispatch_action,omitempty"`
	BlockID        *string           `json:"block_id,omitempty"`
	Hint           *composition.Text `json:"hint,omitempty"`
	Optional       *bool             `json:"optional,omitempty"`
}

func (b *Input) block() {}

// InputBuilder builds an Input block.
type InputBuilder struct {
	label          validation.Value[composition.Text]
	element        validation.Value[InputElement]
	dispatchAction *bool
	blockID        validation.Value[string]
	hint           validation.Value[composition.Text]
	optional       *bool
}

func newInputLabelCell(label *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(label),
		validation.Require[composition.Text](),
		validation.TexterMaxLength[composition.Text](2000),
	)
}

func newInputElementCell(element *InputElement) validation.Value[InputElement] {
	return validation.Pipe(
		validation.NewValue(element),
		validation.Require[InputElement](),
	)
}

func newInputHintCell(hint *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(hint),
		validation.TexterMaxLength[composition.Text](2000),
	)
}

// NewInputBuilder constructs an InputBuilder.
func NewInputBuilder() *InputBuilder {
	return &InputBuilder{
		label:   newInputLabelCell(nil),
		element: newInputElementCell(nil),
		blockID: newBlockIDCell(nil),
		hint:    newInputHintCell(nil),
	}
}

func (b *InputBuilder) Label(label composition.Text) *InputBuilder {
	return b.SetLabel(&label)
}

func (b *InputBuilder) SetLabel(label *composition.Text) *InputBuilder {
	b.label = newInputLabelCell(label)
	return b
}

func (b *InputBuilder) Element(element InputElement) *InputBuilder {
	return b.SetElement(&element)
}

func (b *InputBuilder) SetElement(element *InputElement) *InputBuilder {
	b.element = newInputElementCell(element)
	return b
}

func (b *InputBuilder) DispatchAction(dispatch bool) *InputBuilder {
	return b.SetDispatchAction(&dispatch)
}

func (b *InputBuilder) SetDispatchAction(dispatch *bool) *InputBuilder {
	b.dispatchAction = dispatch
	return b
}

func (b *InputBuilder) BlockID(id string) *InputBuilder {
	return b.SetBlockID(&id)
}

func (b *InputBuilder) SetBlockID(id *string) *InputBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *InputBuilder) Hint(hint composition.Text) *InputBuilder {
	return b.SetHint(&hint)
}

func (b *InputBuilder) SetHint(hint *composition.Text) *InputBuilder {
	b.hint = newInputHintCell(hint)
	return b
}

func (b *InputBuilder) Optional(optional bool) *InputBuilder {
	return b.SetOptional(&optional)
}

func (b *InputBuilder) SetOptional(optional *bool) *InputBuilder {
	b.optional = optional
	return b
}

func (b *InputBuilder) GetLabel() *composition.Text {
	return b.label.Inner()
}

func (b *InputBuilder) GetElement() *InputElement {
	return b.element.Inner()
}

func (b *InputBuilder) GetDispatchAction() *bool {
	return b.dispatchAction
}

func (b *InputBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

func (b *InputBuilder) GetHint() *composition.Text {
	return b.hint.Inner()
}

func (b *InputBuilder) GetOptional() *bool {
	return b.optional
}

// Build validates the accumulated fields and returns the block.
func (b *InputBuilder) Build() (*Input, error) {
	errs := validation.NewErrors("Input")
	errs.AddField("label", b.label.Errors())
	errs.AddField("element", b.element.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	errs.AddField("hint", b.hint.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &Input{
		Type:           "input",
		Label:          b.label.Inner(),
		DispatchAction: b.dispatchAction,
		BlockID:        b.blockID.Inner(),
		Hint:           b.hint.Inner(),
		Optional:       b.optional,
	}
	if element := b.element.Inner(); element != nil {
		block.Element = *element
	}
	return block, nil
}

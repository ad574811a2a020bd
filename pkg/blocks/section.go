package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Section is a section layout block. At least one of text and fields must
// be set.
type Section struct {
	Type      string             `json:"type"`
	Text      *composition.Text  `json:"text,omitempty"`
	BlockID   *string            `json:"block_id,omitempty"`
	Fields    []composition.Text `json:"fields,omitempty"`
	Accessory SectionAccessory   `json:"accessory,omitempty"`
	Expand    *bool              `json:"expand,omitempty"`
}

func (b *Section) block() {}

// SectionBuilder builds a Section block.
type SectionBuilder struct {
	text      validation.Value[composition.Text]
	blockID   validation.Value[string]
	fields    *[]composition.Text
	accessory SectionAccessory
	expand    *bool
}

func newSectionTextCell(text *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.TexterMinLength[composition.Text](1),
		validation.TexterMaxLength[composition.Text](3000),
	)
}

// NewSectionBuilder constructs a SectionBuilder.
func NewSectionBuilder() *SectionBuilder {
	return &SectionBuilder{
		text:    newSectionTextCell(nil),
		blockID: newBlockIDCell(nil),
	}
}

func (b *SectionBuilder) Text(text composition.Text) *SectionBuilder {
	return b.SetText(&text)
}

func (b *SectionBuilder) SetText(text *composition.Text) *SectionBuilder {
	b.text = newSectionTextCell(text)
	return b
}

func (b *SectionBuilder) BlockID(id string) *SectionBuilder {
	return b.SetBlockID(&id)
}

func (b *SectionBuilder) SetBlockID(id *string) *SectionBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

// Field appends a text object to the fields list.
func (b *SectionBuilder) Field(field composition.Text) *SectionBuilder {
	b.fields = validation.PushItem(b.fields, field)
	return b
}

func (b *SectionBuilder) SetFields(fields *[]composition.Text) *SectionBuilder {
	b.fields = fields
	return b
}

func (b *SectionBuilder) Accessory(accessory SectionAccessory) *SectionBuilder {
	b.accessory = accessory
	return b
}

func (b *SectionBuilder) Expand(expand bool) *SectionBuilder {
	return b.SetExpand(&expand)
}

func (b *SectionBuilder) SetExpand(expand *bool) *SectionBuilder {
	b.expand = expand
	return b
}

func (b *SectionBuilder) GetText() *composition.Text {
	return b.text.Inner()
}

func (b *SectionBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

func (b *SectionBuilder) GetFields() *[]composition.Text {
	return b.fields
}

func (b *SectionBuilder) GetAccessory() SectionAccessory {
	return b.accessory
}

func (b *SectionBuilder) GetExpand() *bool {
	return b.expand
}

// Build validates the accumulated fields and returns the block.
func (b *SectionBuilder) Build() (*Section, error) {
	fields := validation.Pipe(
		validation.NewValue(b.fields),
		validation.MaxItems[composition.Text](10),
		validation.EachTextMax[composition.Text](2000),
	)

	errs := validation.NewErrors("Section")
	errs.AddField("text", b.text.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	errs.AddField("fields", fields.Errors())
	if b.text.Inner() == nil && b.fields == nil {
		errs.AddAcross([]validation.Kind{validation.EitherRequired("text", "fields")})
	}
	if !errs.Empty() {
		return nil, errs
	}

	block := &Section{
		Type:      "section",
		Text:      b.text.Inner(),
		BlockID:   b.blockID.Inner(),
		Accessory: b.accessory,
		Expand:    b.expand,
	}
	if inner := fields.Inner(); inner != nil {
		block.Fields = *inner
	}
	return block, nil
}

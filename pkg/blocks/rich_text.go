package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// RichText is a rich_text layout block. It doubles as a table cell.
type RichText struct {
	Type     string           `json:"type"`
	Elements []RichTextObject `json:"elements"`
	BlockID  *string          `json:"block_id,omitempty"`
}

func (b *RichText) block()     {}
func (b *RichText) tableCell() {}

// RichTextBuilder builds a RichText block.
type RichTextBuilder struct {
	elements *[]RichTextObject
	blockID  validation.Value[string]
}

// NewRichTextBuilder constructs a RichTextBuilder.
func NewRichTextBuilder() *RichTextBuilder {
	return &RichTextBuilder{blockID: newBlockIDCell(nil)}
}

// Element appends a rich text container.
func (b *RichTextBuilder) Element(element RichTextObject) *RichTextBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *RichTextBuilder) SetElements(elements *[]RichTextObject) *RichTextBuilder {
	b.elements = elements
	return b
}

func (b *RichTextBuilder) BlockID(id string) *RichTextBuilder {
	return b.SetBlockID(&id)
}

func (b *RichTextBuilder) SetBlockID(id *string) *RichTextBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *RichTextBuilder) GetElements() *[]RichTextObject {
	return b.elements
}

func (b *RichTextBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *RichTextBuilder) Build() (*RichText, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]RichTextObject](),
	)

	errs := validation.NewErrors("RichText")
	errs.AddField("elements", elements.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &RichText{Type: "rich_text", BlockID: b.blockID.Inner()}
	if inner := elements.Inner(); inner != nil {
		block.Elements = *inner
	}
	return block, nil
}

// RichTextSection is a rich_text_section container.
type RichTextSection struct {
	Type     string            `json:"type"`
	Elements []RichTextElement `json:"elements"`
}

func (o *RichTextSection) richTextObject() {}

// RichTextSectionBuilder builds a RichTextSection.
type RichTextSectionBuilder struct {
	elements *[]RichTextElement
}

// NewRichTextSectionBuilder constructs a RichTextSectionBuilder.
func NewRichTextSectionBuilder() *RichTextSectionBuilder {
	return &RichTextSectionBuilder{}
}

// Element appends a rich text element.
func (b *RichTextSectionBuilder) Element(element RichTextElement) *RichTextSectionBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *RichTextSectionBuilder) SetElements(elements *[]RichTextElement) *RichTextSectionBuilder {
	b.elements = elements
	return b
}

func (b *RichTextSectionBuilder) GetElements() *[]RichTextElement {
	return b.elements
}

// Build validates the accumulated fields and returns the container.
func (b *RichTextSectionBuilder) Build() (*RichTextSection, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]RichTextElement](),
	)

	errs := validation.NewErrors("RichTextSection")
	errs.AddField("elements", elements.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	section := &RichTextSection{Type: "rich_text_section"}
	if inner := elements.Inner(); inner != nil {
		section.Elements = *inner
	}
	return section, nil
}

// RichTextListStyle determines the marker style of a rich text list.
type RichTextListStyle string

// Rich text list styles.
const (
	ListStyleBullet  RichTextListStyle = "bullet"
	ListStyleOrdered RichTextListStyle = "ordered"
)

// RichTextList is a rich_text_list container. Its elements must be
// rich_text_section containers.
type RichTextList struct {
	Type     string            `json:"type"`
	Style    RichTextListStyle `json:"style"`
	Elements []RichTextSection `json:"elements"`
	Indent   *int64            `json:"indent,omitempty"`
	Offset   *int64            `json:"offset,omitempty"`
	Border   *int64            `json:"border,omitempty"`
}

func (o *RichTextList) richTextObject() {}

// RichTextListBuilder builds a RichTextList.
type RichTextListBuilder struct {
	style    validation.Value[RichTextListStyle]
	elements *[]RichTextSection
	indent   *int64
	offset   *int64
	border   *int64
}

func newListStyleCell(style *RichTextListStyle) validation.Value[RichTextListStyle] {
	return validation.Pipe(
		validation.NewValue(style),
		validation.Require[RichTextListStyle](),
	)
}

// NewRichTextListBuilder constructs a RichTextListBuilder.
func NewRichTextListBuilder() *RichTextListBuilder {
	return &RichTextListBuilder{style: newListStyleCell(nil)}
}

func (b *RichTextListBuilder) Style(style RichTextListStyle) *RichTextListBuilder {
	return b.SetStyle(&style)
}

func (b *RichTextListBuilder) SetStyle(style *RichTextListStyle) *RichTextListBuilder {
	b.style = newListStyleCell(style)
	return b
}

// Element appends a rich_text_section container.
func (b *RichTextListBuilder) Element(element RichTextSection) *RichTextListBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *RichTextListBuilder) SetElements(elements *[]RichTextSection) *RichTextListBuilder {
	b.elements = elements
	return b
}

func (b *RichTextListBuilder) Indent(indent int64) *RichTextListBuilder {
	b.indent = &indent
	return b
}

func (b *RichTextListBuilder) Offset(offset int64) *RichTextListBuilder {
	b.offset = &offset
	return b
}

func (b *RichTextListBuilder) Border(border int64) *RichTextListBuilder {
	b.border = &border
	return b
}

func (b *RichTextListBuilder) GetStyle() *RichTextListStyle {
	return b.style.Inner()
}

func (b *RichTextListBuilder) GetElements() *[]RichTextSection {
	return b.elements
}

// Build validates the accumulated fields and returns the container.
func (b *RichTextListBuilder) Build() (*RichTextList, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]RichTextSection](),
	)

	errs := validation.NewErrors("RichTextList")
	errs.AddField("style", b.style.Errors())
	errs.AddField("elements", elements.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	list := &RichTextList{
		Type:   "rich_text_list",
		Indent: b.indent,
		Offset: b.offset,
		Border: b.border,
	}
	if style := b.style.Inner(); style != nil {
		list.Style = *style
	}
	if inner := elements.Inner(); inner != nil {
		list.Elements = *inner
	}
	return list, nil
}

// RichTextPreformatted is a rich_text_preformatted container.
type RichTextPreformatted struct {
	Type     string            `json:"type"`
	Elements []RichTextElement `json:"elements"`
	Border   *int64            `json:"border,omitempty"`
}

func (o *RichTextPreformatted) richTextObject() {}

// RichTextPreformattedBuilder builds a RichTextPreformatted.
type RichTextPreformattedBuilder struct {
	elements *[]RichTextElement
	border   *int64
}

// NewRichTextPreformattedBuilder constructs a RichTextPreformattedBuilder.
func NewRichTextPreformattedBuilder() *RichTextPreformattedBuilder {
	return &RichTextPreformattedBuilder{}
}

// Element appends a rich text element.
func (b *RichTextPreformattedBuilder) Element(element RichTextElement) *RichTextPreformattedBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *RichTextPreformattedBuilder) SetElements(elements *[]RichTextElement) *RichTextPreformattedBuilder {
	b.elements = elements
	return b
}

func (b *RichTextPreformattedBuilder) Border(border int64) *RichTextPreformattedBuilder {
	b.border = &border
	return b
}

func (b *RichTextPreformattedBuilder) GetElements() *[]RichTextElement {
	return b.elements
}

// Build validates the accumulated fields and returns the container.
func (b *RichTextPreformattedBuilder) Build() (*RichTextPreformatted, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]RichTextElement](),
	)

	errs := validation.NewErrors("RichTextPreformatted")
	errs.AddField("elements", elements.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	preformatted := &RichTextPreformatted{Type: "rich_text_preformatted", Border: b.border}
	if inner := elements.Inner(); inner != nil {
		preformatted.Elements = *inner
	}
	return preformatted, nil
}

// RichTextQuote is a rich_text_quote container.
type RichTextQuote struct {
	Type     string            `json:"type"`
	Elements []RichTextElement `json:"elements"`
	Border   *int64            `json:"border,omitempty"`
}

func (o *RichTextQuote) richTextObject() {}

// RichTextQuoteBuilder builds a RichTextQuote.
type RichTextQuoteBuilder struct {
	elements *[]RichTextElement
	border   *int64
}

// NewRichTextQuoteBuilder constructs a RichTextQuoteBuilder.
func NewRichTextQuoteBuilder() *RichTextQuoteBuilder {
	return &RichTextQuoteBuilder{}
}

// Element appends a rich text element.
func (b *RichTextQuoteBuilder) Element(element RichTextElement) *RichTextQuoteBuilder {
	b.elements = validation.PushItem(b.elements, element)
	return b
}

func (b *RichTextQuoteBuilder) SetElements(elements *[]RichTextElement) *RichTextQuoteBuilder {
	b.elements = elements
	return b
}

func (b *RichTextQuoteBuilder) Border(border int64) *RichTextQuoteBuilder {
	b.border = &border
	return b
}

func (b *RichTextQuoteBuilder) GetElements() *[]RichTextElement {
	return b.elements
}

// Build validates the accumulated fields and returns the container.
func (b *RichTextQuoteBuilder) Build() (*RichTextQuote, error) {
	elements := validation.Pipe(
		validation.NewValue(b.elements),
		validation.Require[[]RichTextElement](),
	)

	errs := validation.NewErrors("RichTextQuote")
	errs.AddField("elements", elements.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	quote := &RichTextQuote{Type: "rich_text_quote", Border: b.border}
	if inner := elements.Inner(); inner != nil {
		quote.Elements = *inner
	}
	return quote, nil
}

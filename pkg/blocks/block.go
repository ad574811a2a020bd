// Package blocks implements the layout blocks, interactive elements, rich
// text objects and table structures of the Block Kit surface. Every entity
// is produced by a builder whose Build validates the accumulated fields and
// returns either the finished value or a *validation.Errors report.
//
// The slots a block exposes (section accessory, actions elements, input
// element, context elements, table cells) are modeled as interfaces with
// unexported marker methods, so only the types in this package can fill
// them. Serialization relies on the concrete types directly, so the JSON
// for a slot carries no wrapper beyond the type discriminator each entity
// writes for itself.
package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Block is any layout block that can appear in a message.
type Block interface {
	block()
}

// SectionAccessory is any element that can sit in the accessory slot of a
// section block.
type SectionAccessory interface {
	sectionAccessory()
}

// ActionsElement is any element that can appear in an actions block.
type ActionsElement interface {
	actionsElement()
}

// InputElement is any element that can sit in an input block.
type InputElement interface {
	inputElement()
}

// ContextElement is any object that can appear in a context block: image
// elements and text objects.
type ContextElement interface {
	contextElement()
}

// ContextActionsElement is any element that can appear in a
// context_actions block.
type ContextActionsElement interface {
	contextActionsElement()
}

// RichTextObject is any container that can appear in a rich_text block.
type RichTextObject interface {
	richTextObject()
}

// RichTextElement is any leaf element that can appear inside a rich text
// container.
type RichTextElement interface {
	richTextElement()
}

// TableCell is any value that can fill a table row cell: raw text or a
// rich_text block.
type TableCell interface {
	tableCell()
}

type contextText struct {
	composition.Text
}

func (contextText) contextElement() {}

// ContextText wraps a text composition object for use in a context block.
func ContextText(text composition.Text) ContextElement {
	return contextText{text}
}

type rawTextCell struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (rawTextCell) tableCell() {}

// CellText wraps raw text for use as a table cell.
func CellText(text string) TableCell {
	return rawTextCell{Type: "raw_text", Text: text}
}

func newBlockIDCell(id *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(id),
		validation.MaxText(255),
	)
}

func newActionIDCell(id *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(id),
		validation.MaxText(255),
	)
}

func newPlaceholderCell(placeholder *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(placeholder),
		validation.TexterMaxLength[composition.Text](150),
	)
}

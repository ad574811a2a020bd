package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Confirm button styles.
const (
	StylePrimary = "primary"
	StyleDanger  = "danger"
)

// ConfirmationDialog is the confirmation dialog composition object.
type ConfirmationDialog struct {
	Title   *Text   `json:"title"`
	Text    *Text   `json:"text"`
	Confirm *Text   `json:"confirm"`
	Deny    *Text   `json:"deny"`
	Style   *string `json:"style,omitempty"`
}

// ConfirmationDialogBuilder builds a ConfirmationDialog.
type ConfirmationDialogBuilder struct {
	title   validation.Value[Text]
	text    validation.Value[Text]
	confirm validation.Value[Text]
	deny    validation.Value[Text]
	style   *string
}

func newDialogTitleCell(title *Text) validation.Value[Text] {
	return validation.Pipe(
		validation.NewValue(title),
		validation.Require[Text](),
		validation.TexterMaxLength[Text](100),
	)
}

func newDialogTextCell(text *Text) validation.Value[Text] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[Text](),
		validation.TexterMaxLength[Text](300),
	)
}

func newDialogLabelCell(label *Text) validation.Value[Text] {
	return validation.Pipe(
		validation.NewValue(label),
		validation.Require[Text](),
		validation.TexterMaxLength[Text](30),
	)
}

// NewConfirmationDialogBuilder constructs a ConfirmationDialogBuilder.
func NewConfirmationDialogBuilder() *ConfirmationDialogBuilder {
	return &ConfirmationDialogBuilder{
		title:   newDialogTitleCell(nil),
		text:    newDialogTextCell(nil),
		confirm: newDialogLabelCell(nil),
		deny:    newDialogLabelCell(nil),
	}
}

func (b *ConfirmationDialogBuilder) Title(title Text) *ConfirmationDialogBuilder {
	return b.SetTitle(&title)
}

func (b *ConfirmationDialogBuilder) SetTitle(title *Text) *ConfirmationDialogBuilder {
	b.title = newDialogTitleCell(title)
	return b
}

func (b *ConfirmationDialogBuilder) Text(text Text) *ConfirmationDialogBuilder {
	return b.SetText(&text)
}

func (b *ConfirmationDialogBuilder) SetText(text *Text) *ConfirmationDialogBuilder {
	b.text = newDialogTextCell(text)
	return b
}

func (b *ConfirmationDialogBuilder) Confirm(confirm Text) *ConfirmationDialogBuilder {
	return b.SetConfirm(&confirm)
}

func (b *ConfirmationDialogBuilder) SetConfirm(confirm *Text) *ConfirmationDialogBuilder {
	b.confirm = newDialogLabelCell(confirm)
	return b
}

func (b *ConfirmationDialogBuilder) Deny(deny Text) *ConfirmationDialogBuilder {
	return b.SetDeny(&deny)
}

func (b *ConfirmationDialogBuilder) SetDeny(deny *Text) *ConfirmationDialogBuilder {
	b.deny = newDialogLabelCell(deny)
	return b
}

// Primary sets the style to primary.
func (b *ConfirmationDialogBuilder) Primary() *ConfirmationDialogBuilder {
	style := StylePrimary
	b.style = &style
	return b
}

// Danger sets the style to danger.
func (b *ConfirmationDialogBuilder) Danger() *ConfirmationDialogBuilder {
	style := StyleDanger
	b.style = &style
	return b
}

func (b *ConfirmationDialogBuilder) GetTitle() *Text {
	return b.title.Inner()
}

func (b *ConfirmationDialogBuilder) GetText() *Text {
	return b.text.Inner()
}

func (b *ConfirmationDialogBuilder) GetConfirm() *Text {
	return b.confirm.Inner()
}

func (b *ConfirmationDialogBuilder) GetDeny() *Text {
	return b.deny.Inner()
}

func (b *ConfirmationDialogBuilder) GetStyle() *string {
	return b.style
}

// Build validates the accumulated fields and returns the dialog.
func (b *ConfirmationDialogBuilder) Build() (*ConfirmationDialog, error) {
	errs := validation.NewErrors("ConfirmationDialog")
	errs.AddField("title", b.title.Errors())
	errs.AddField("text", b.text.Errors())
	errs.AddField("confirm", b.confirm.Errors())
	errs.AddField("deny", b.deny.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &ConfirmationDialog{
		Title:   b.title.Inner(),
		Text:    b.text.Inner(),
		Confirm: b.confirm.Inner(),
		Deny:    b.deny.Inner(),
		Style:   b.style,
	}, nil
}

package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Icon identifies the glyph of an icon button.
type Icon string

// Icons accepted by the icon button element.
const (
	IconTrash Icon = "trash"
)

// IconButton is an icon_button element. The text must be a plain_text
// object.
type IconButton struct {
	Type               string                          `json:"type"`
	Icon               *Icon                           `json:"icon"`
	Text               *composition.Text               `json:"text"`
	ActionID           *string                         `json:"action_id,omitempty"`
	Value              *string                         `json:"value,omitempty"`
	Confirm            *composition.ConfirmationDialog `json:"confirm,omitempty"`
	AccessibilityLabel *string                         `json:"accessibility_label,omitempty"`
	VisibleToUserIDs   []string                        `json:"visible_to_user_ids,omitempty"`
}

func (e *IconButton) contextActionsElement() {}

// IconButtonBuilder builds an IconButton element.
type IconButtonBuilder struct {
	icon               validation.Value[Icon]
	text               validation.Value[composition.Text]
	actionID           validation.Value[string]
	value              validation.Value[string]
	confirm            *composition.ConfirmationDialog
	accessibilityLabel validation.Value[string]
	visibleToUserIDs   *[]string
}

func newIconCell(icon *Icon) validation.Value[Icon] {
	return validation.Pipe(
		validation.NewValue(icon),
		validation.Require[Icon](),
	)
}

func newIconButtonTextCell(text *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[composition.Text](),
	)
}

// NewIconButtonBuilder constructs an IconButtonBuilder.
func NewIconButtonBuilder() *IconButtonBuilder {
	return &IconButtonBuilder{
		icon:               newIconCell(nil),
		text:               newIconButtonTextCell(nil),
		actionID:           newActionIDCell(nil),
		value:              newButtonValueCell(nil),
		accessibilityLabel: newButtonLabelCell(nil),
	}
}

func (b *IconButtonBuilder) Icon(icon Icon) *IconButtonBuilder {
	return b.SetIcon(&icon)
}

func (b *IconButtonBuilder) SetIcon(icon *Icon) *IconButtonBuilder {
	b.icon = newIconCell(icon)
	return b
}

func (b *IconButtonBuilder) Text(text composition.Text) *IconButtonBuilder {
	return b.SetText(&text)
}

func (b *IconButtonBuilder) SetText(text *composition.Text) *IconButtonBuilder {
	b.text = newIconButtonTextCell(text)
	return b
}

func (b *IconButtonBuilder) ActionID(id string) *IconButtonBuilder {
	return b.SetActionID(&id)
}

func (b *IconButtonBuilder) SetActionID(id *string) *IconButtonBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *IconButtonBuilder) Value(value string) *IconButtonBuilder {
	return b.SetValue(&value)
}

func (b *IconButtonBuilder) SetValue(value *string) *IconButtonBuilder {
	b.value = newButtonValueCell(value)
	return b
}

func (b *IconButtonBuilder) Confirm(confirm composition.ConfirmationDialog) *IconButtonBuilder {
	return b.SetConfirm(&confirm)
}

func (b *IconButtonBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *IconButtonBuilder {
	b.confirm = confirm
	return b
}

func (b *IconButtonBuilder) AccessibilityLabel(label string) *IconButtonBuilder {
	return b.SetAccessibilityLabel(&label)
}

func (b *IconButtonBuilder) SetAccessibilityLabel(label *string) *IconButtonBuilder {
	b.accessibilityLabel = newButtonLabelCell(label)
	return b
}

// VisibleToUserID appends one user ID the button is visible to.
func (b *IconButtonBuilder) VisibleToUserID(id string) *IconButtonBuilder {
	b.visibleToUserIDs = validation.PushItem(b.visibleToUserIDs, id)
	return b
}

func (b *IconButtonBuilder) SetVisibleToUserIDs(ids *[]string) *IconButtonBuilder {
	b.visibleToUserIDs = ids
	return b
}

func (b *IconButtonBuilder) GetIcon() *Icon {
	return b.icon.Inner()
}

func (b *IconButtonBuilder) GetText() *composition.Text {
	return b.text.Inner()
}

func (b *IconButtonBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *IconButtonBuilder) GetValue() *string {
	return b.value.Inner()
}

func (b *IconButtonBuilder) GetConfirm() *composition.ConfirmationDialog {
	return b.confirm
}

func (b *IconButtonBuilder) GetAccessibilityLabel() *string {
	return b.accessibilityLabel.Inner()
}

func (b *IconButtonBuilder) GetVisibleToUserIDs() *[]string {
	return b.visibleToUserIDs
}

// Build validates the accumulated fields and returns the element.
func (b *IconButtonBuilder) Build() (*IconButton, error) {
	errs := validation.NewErrors("IconButton")
	errs.AddField("icon", b.icon.Errors())
	errs.AddField("text", b.text.Errors())
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("value", b.value.Errors())
	errs.AddField("accessibility_label", b.accessibilityLabel.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &IconButton{
		Type:               "icon_button",
		Icon:               b.icon.Inner(),
		Text:               b.text.Inner(),
		ActionID:           b.actionID.Inner(),
		Value:              b.value.Inner(),
		Confirm:            b.confirm,
		AccessibilityLabel: b.accessibilityLabel.Inner(),
	}
	if b.visibleToUserIDs != nil {
		element.VisibleToUserIDs = *b.visibleToUserIDs
	}
	return element, nil
}

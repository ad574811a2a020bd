package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// SelectMenuPublicChannels is a select menu element listing public
// channels.
type SelectMenuPublicChannels struct {
	Type               string                          `json:"type"`
	ActionID           *string                         `json:"action_id,omitempty"`
	InitialChannel     *string                         `json:"initial_channel,omitempty"`
	Confirm            *composition.ConfirmationDialog `json:"confirm,omitempty"`
	ResponseURLEnabled *bool                           `json:"response_url_enabled,omitempty"`
	FocusOnLoad        *bool                           `json:"focus_on_load,omitempty"`
	Placeholder        *composition.Text               `json:"placeholder,omitempty"`
}

func (e *SelectMenuPublicChannels) sectionAccessory() {}
func (e *SelectMenuPublicChannels) actionsElement()   {}
func (e *SelectMenuPublicChannels) inputElement()     {}

// SelectMenuPublicChannelsBuilder builds a SelectMenuPublicChannels
// element.
type SelectMenuPublicChannelsBuilder struct {
	actionID           validation.Value[string]
	initialChannel     *string
	confirm            *composition.ConfirmationDialog
	responseURLEnabled *bool
	focusOnLoad        *bool
	placeholder        validation.Value[composition.Text]
}

// NewSelectMenuPublicChannelsBuilder constructs a
// SelectMenuPublicChannelsBuilder.
func NewSelectMenuPublicChannelsBuilder() *SelectMenuPublicChannelsBuilder {
	return &SelectMenuPublicChannelsBuilder{
		actionID:    newActionIDCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *SelectMenuPublicChannelsBuilder) ActionID(id string) *SelectMenuPublicChannelsBuilder {
	return b.SetActionID(&id)
}

func (b *SelectMenuPublicChannelsBuilder) SetActionID(id *string) *SelectMenuPublicChannelsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *SelectMenuPublicChannelsBuilder) InitialChannel(channel string) *SelectMenuPublicChannelsBuilder {
	return b.SetInitialChannel(&channel)
}

func (b *SelectMenuPublicChannelsBuilder) SetInitialChannel(channel *string) *SelectMenuPublicChannelsBuilder {
	b.initialChannel = channel
	return b
}

func (b *SelectMenuPublicChannelsBuilder) Confirm(confirm composition.ConfirmationDialog) *SelectMenuPublicChannelsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *SelectMenuPublicChannelsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *SelectMenuPublicChannelsBuilder {
	b.confirm = confirm
	return b
}

func (b *SelectMenuPublicChannelsBuilder) ResponseURLEnabled(enabled bool) *SelectMenuPublicChannelsBuilder {
	return b.SetResponseURLEnabled(&enabled)
}

func (b *SelectMenuPublicChannelsBuilder) SetResponseURLEnabled(enabled *bool) *SelectMenuPublicChannelsBuilder {
	b.responseURLEnabled = enabled
	return b
}

func (b *SelectMenuPublicChannelsBuilder) FocusOnLoad(focus bool) *SelectMenuPublicChannelsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *SelectMenuPublicChannelsBuilder) SetFocusOnLoad(focus *bool) *SelectMenuPublicChannelsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *SelectMenuPublicChannelsBuilder) Placeholder(placeholder composition.Text) *SelectMenuPublicChannelsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *SelectMenuPublicChannelsBuilder) SetPlaceholder(placeholder *composition.Text) *SelectMenuPublicChannelsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *SelectMenuPublicChannelsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *SelectMenuPublicChannelsBuilder) GetInitialChannel() *string {
	return b.initialChannel
}

// Build validates the accumulated fields and returns the element.
func (b *SelectMenuPublicChannelsBuilder) Build() (*SelectMenuPublicChannels, error) {
	errs := validation.NewErrors("SelectMenuPublicChannels")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &SelectMenuPublicChannels{
		Type:               "channels_select",
		ActionID:           b.actionID.Inner(),
		InitialChannel:     b.initialChannel,
		Confirm:            b.confirm,
		ResponseURLEnabled: b.responseURLEnabled,
		FocusOnLoad:        b.focusOnLoad,
		Placeholder:        b.placeholder.Inner(),
	}, nil
}

// MultiSelectMenuPublicChannels is a multi select menu element listing
// public channels.
type MultiSelectMenuPublicChannels struct {
	Type             string                          `json:"type"`
	ActionID         *string                         `json:"action_id,omitempty"`
	InitialChannels  []string                        `json:"initial_channels,omitempty"`
	Confirm          *composition.ConfirmationDialog `json:"confirm,omitempty"`
	MaxSelectedItems *int64                          `json:"max_selected_items,omitempty"`
	FocusOnLoad      *bool                           `json:"focus_on_load,omitempty"`
	Placeholder      *composition.Text               `json:"placeholder,omitempty"`
}

func (e *MultiSelectMenuPublicChannels) sectionAccessory() {}
func (e *MultiSelectMenuPublicChannels) actionsElement()   {}
func (e *MultiSelectMenuPublicChannels) inputElement()     {}

// MultiSelectMenuPublicChannelsBuilder builds a
// MultiSelectMenuPublicChannels element.
type MultiSelectMenuPublicChannelsBuilder struct {
	actionID         validation.Value[string]
	initialChannels  *[]string
	confirm          *composition.ConfirmationDialog
	maxSelectedItems validation.Value[int64]
	focusOnLoad      *bool
	placeholder      validation.Value[composition.Text]
}

// NewMultiSelectMenuPublicChannelsBuilder constructs a
// MultiSelectMenuPublicChannelsBuilder.
func NewMultiSelectMenuPublicChannelsBuilder() *MultiSelectMenuPublicChannelsBuilder {
	return &MultiSelectMenuPublicChannelsBuilder{
		actionID:         newActionIDCell(nil),
		maxSelectedItems: newMaxSelectedItemsCell(nil),
		placeholder:      newPlaceholderCell(nil),
	}
}

func (b *MultiSelectMenuPublicChannelsBuilder) ActionID(id string) *MultiSelectMenuPublicChannelsBuilder {
	return b.SetActionID(&id)
}

func (b *MultiSelectMenuPublicChannelsBuilder) SetActionID(id *string) *MultiSelectMenuPublicChannelsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// InitialChannel appends an initially selected channel id.
func (b *MultiSelectMenuPublicChannelsBuilder) InitialChannel(channel string) *MultiSelectMenuPublicChannelsBuilder {
	b.initialChannels = validation.PushItem(b.initialChannels, channel)
	return b
}

func (b *MultiSelectMenuPublicChannelsBuilder) SetInitialChannels(channels *[]string) *MultiSelectMenuPublicChannelsBuilder {
	b.initialChannels = channels
	return b
}

func (b *MultiSelectMenuPublicChannelsBuilder) Confirm(confirm composition.ConfirmationDialog) *MultiSelectMenuPublicChannelsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *MultiSelectMenuPublicChannelsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *MultiSelectMenuPublicChannelsBuilder {
	b.confirm = confirm
	return b
}

func (b *MultiSelectMenuPublicChannelsBuilder) MaxSelectedItems(max int64) *MultiSelectMenuPublicChannelsBuilder {
	return b.SetMaxSelectedItems(&max)
}

func (b *MultiSelectMenuPublicChannelsBuilder) SetMaxSelectedItems(max *int64) *MultiSelectMenuPublicChannelsBuilder {
	b.maxSelectedItems = newMaxSelectedItemsCell(max)
	return b
}

func (b *MultiSelectMenuPublicChannelsBuilder) FocusOnLoad(focus bool) *MultiSelectMenuPublicChannelsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *MultiSelectMenuPublicChannelsBuilder) SetFocusOnLoad(focus *bool) *MultiSelectMenuPublicChannelsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *MultiSelectMenuPublicChannelsBuilder) Placeholder(placeholder composition.Text) *MultiSelectMenuPublicChannelsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *MultiSelectMenuPublicChannelsBuilder) SetPlaceholder(placeholder *composition.Text) *MultiSelectMenuPublicChannelsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *MultiSelectMenuPublicChannelsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *MultiSelectMenuPublicChannelsBuilder) GetInitialChannels() *[]string {
	return b.initialChannels
}

func (b *MultiSelectMenuPublicChannelsBuilder) GetMaxSelectedItems() *int64 {
	return b.maxSelectedItems.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *MultiSelectMenuPublicChannelsBuilder) Build() (*MultiSelectMenuPublicChannels, error) {
	errs := validation.NewErrors("MultiSelectMenuPublicChannels")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("max_selected_items", b.maxSelectedItems.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &MultiSelectMenuPublicChannels{
		Type:             "multi_channels_select",
		ActionID:         b.actionID.Inner(),
		Confirm:          b.confirm,
		MaxSelectedItems: b.maxSelectedItems.Inner(),
		FocusOnLoad:      b.focusOnLoad,
		Placeholder:      b.placeholder.Inner(),
	}
	if b.initialChannels != nil {
		element.InitialChannels = *b.initialChannels
	}
	return element, nil
}

package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// SelectMenuConversations is a select menu element listing conversations.
type SelectMenuConversations struct {
	Type                         string                          `json:"type"`
	ActionID                     *string                         `json:"action_id,omitempty"`
	InitialConversation          *string                         `json:"initial_conversation,omitempty"`
	DefaultToCurrentConversation *bool                           `json:"default_to_current_conversation,omitempty"`
	Confirm                      *composition.ConfirmationDialog `json:"confirm,omitempty"`
	ResponseURLEnabled           *bool                           `json:"response_url_enabled,omitempty"`
	Filter                       *composition.ConversationFilter `json:"filter,omitempty"`
	FocusOnLoad                  *bool                           `json:"focus_on_load,omitempty"`
	Placeholder                  *composition.Text               `json:"placeholder,omitempty"`
}

func (e *SelectMenuConversations) sectionAccessory() {}
func (e *SelectMenuConversations) actionsElement()   {}
func (e *SelectMenuConversations) inputElement()     {}

// SelectMenuConversationsBuilder builds a SelectMenuConversations element.
type SelectMenuConversationsBuilder struct {
	actionID                     validation.Value[string]
	initialConversation          *string
	defaultToCurrentConversation *bool
	confirm                      *composition.ConfirmationDialog
	responseURLEnabled           *bool
	filter                       *composition.ConversationFilter
	focusOnLoad                  *bool
	placeholder                  validation.Value[composition.Text]
}

// NewSelectMenuConversationsBuilder constructs a
// SelectMenuConversationsBuilder.
func NewSelectMenuConversationsBuilder() *SelectMenuConversationsBuilder {
	return &SelectMenuConversationsBuilder{
		actionID:    newActionIDCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *SelectMenuConversationsBuilder) ActionID(id string) *SelectMenuConversationsBuilder {
	return b.SetActionID(&id)
}

func (b *SelectMenuConversationsBuilder) SetActionID(id *string) *SelectMenuConversationsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *SelectMenuConversationsBuilder) InitialConversation(conversation string) *SelectMenuConversationsBuilder {
	return b.SetInitialConversation(&conversation)
}

func (b *SelectMenuConversationsBuilder) SetInitialConversation(conversation *string) *SelectMenuConversationsBuilder {
	b.initialConversation = conversation
	return b
}

func (b *SelectMenuConversationsBuilder) DefaultToCurrentConversation(d bool) *SelectMenuConversationsBuilder {
	return b.SetDefaultToCurrentConversation(&d)
}

func (b *SelectMenuConversationsBuilder) SetDefaultToCurrentConversation(d *bool) *SelectMenuConversationsBuilder {
	b.defaultToCurrentConversation = d
	return b
}

func (b *SelectMenuConversationsBuilder) Confirm(confirm composition.ConfirmationDialog) *SelectMenuConversationsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *SelectMenuConversationsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *SelectMenuConversationsBuilder {
	b.confirm = confirm
	return b
}

func (b *SelectMenuConversationsBuilder) ResponseURLEnabled(enabled bool) *SelectMenuConversationsBuilder {
	return b.SetResponseURLEnabled(&enabled)
}

func (b *SelectMenuConversationsBuilder) SetResponseURLEnabled(enabled *bool) *SelectMenuConversationsBuilder {
	b.responseURLEnabled = enabled
	return b
}

func (b *SelectMenuConversationsBuilder) Filter(filter composition.ConversationFilter) *SelectMenuConversationsBuilder {
	return b.SetFilter(&filter)
}

func (b *SelectMenuConversationsBuilder) SetFilter(filter *composition.ConversationFilter) *SelectMenuConversationsBuilder {
	b.filter = filter
	return b
}

func (b *SelectMenuConversationsBuilder) FocusOnLoad(focus bool) *SelectMenuConversationsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *SelectMenuConversationsBuilder) SetFocusOnLoad(focus *bool) *SelectMenuConversationsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *SelectMenuConversationsBuilder) Placeholder(placeholder composition.Text) *SelectMenuConversationsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *SelectMenuConversationsBuilder) SetPlaceholder(placeholder *composition.Text) *SelectMenuConversationsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *SelectMenuConversationsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *SelectMenuConversationsBuilder) GetFilter() *composition.ConversationFilter {
	return b.filter
}

// Build validates the accumulated fields and returns the element.
func (b *SelectMenuConversationsBuilder) Build() (*SelectMenuConversations, error) {
	errs := validation.NewErrors("SelectMenuConversations")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &SelectMenuConversations{
		Type:                         "conversations_select",
		ActionID:                     b.actionID.Inner(),
		InitialConversation:          b.initialConversation,
		DefaultToCurrentConversation: b.defaultToCurrentConversation,
		Confirm:                      b.confirm,
		ResponseURLEnabled:           b.responseURLEnabled,
		Filter:                       b.filter,
		FocusOnLoad:                  b.focusOnLoad,
		Placeholder:                  b.placeholder.Inner(),
	}, nil
}

// MultiSelectMenuConversations is a multi select menu element listing
// conversations.
type MultiSelectMenuConversations struct {
	Type                         string                          `json:"type"`
	ActionID                     *string                         `json:"action_id,omitempty"`
	InitialConversations         []string                        `json:"initial_conversations,omitempty"`
	DefaultToCurrentConversation *bool                           `json:"default_to_current_conversation,omitempty"`
	Confirm                      *composition.ConfirmationDialog `json:"confirm,omitempty"`
	MaxSelectedItems             *int64                          `json:"max_selected_items,omitempty"`
	Filter                       *composition.ConversationFilter `json:"filter,omitempty"`
	FocusOnLoad                  *bool                           `json:"focus_on_load,omitempty"`
	Placeholder                  *composition.Text               `json:"placeholder,omitempty"`
}

func (e *MultiSelectMenuConversations) sectionAccessory() {}
func (e *MultiSelectMenuConversations) actionsElement()   {}
func (e *MultiSelectMenuConversations) inputElement()     {}

// MultiSelectMenuConversationsBuilder builds a
// MultiSelectMenuConversations element.
type MultiSelectMenuConversationsBuilder struct {
	actionID                     validation.Value[string]
	initialConversations         *[]string
	defaultToCurrentConversation *bool
	confirm                      *composition.ConfirmationDialog
	maxSelectedItems             validation.Value[int64]
	filter                       *composition.ConversationFilter
	focusOnLoad                  *bool
	placeholder                  validation.Value[composition.Text]
}

// NewMultiSelectMenuConversationsBuilder constructs a
// MultiSelectMenuConversationsBuilder.
func NewMultiSelectMenuConversationsBuilder() *MultiSelectMenuConversationsBuilder {
	return &MultiSelectMenuConversationsBuilder{
		actionID:         newActionIDCell(nil),
		maxSelectedItems: newMaxSelectedItemsCell(nil),
		placeholder:      newPlaceholderCell(nil),
	}
}

func (b *MultiSelectMenuConversationsBuilder) ActionID(id string) *MultiSelectMenuConversationsBuilder {
	return b.SetActionID(&id)
}

func (b *MultiSelectMenuConversationsBuilder) SetActionID(id *string) *MultiSelectMenuConversationsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// InitialConversation appends an initially selected conversation id.
func (b *MultiSelectMenuConversationsBuilder) InitialConversation(conversation string) *MultiSelectMenuConversationsBuilder {
	b.initialConversations = validation.PushItem(b.initialConversations, conversation)
	return b
}

func (b *MultiSelectMenuConversationsBuilder) SetInitialConversations(conversations *[]string) *MultiSelectMenuConversationsBuilder {
	b.initialConversations = conversations
	return b
}

func (b *MultiSelectMenuConversationsBuilder) DefaultToCurrentConversation(d bool) *MultiSelectMenuConversationsBuilder {
	return b.SetDefaultToCurrentConversation(&d)
}

func (b *MultiSelectMenuConversationsBuilder) SetDefaultToCurrentConversation(d *bool) *MultiSelectMenuConversationsBuilder {
	b.defaultToCurrentConversation = d
	return b
}

func (b *MultiSelectMenuConversationsBuilder) Confirm(confirm composition.ConfirmationDialog) *MultiSelectMenuConversationsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *MultiSelectMenuConversationsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *MultiSelectMenuConversationsBuilder {
	b.confirm = confirm
	return b
}

func (b *MultiSelectMenuConversationsBuilder) MaxSelectedItems(max int64) *MultiSelectMenuConversationsBuilder {
	return b.SetMaxSelectedItems(&max)
}

func (b *MultiSelectMenuConversationsBuilder) SetMaxSelectedItems(max *int64) *MultiSelectMenuConversationsBuilder {
	b.maxSelectedItems = newMaxSelectedItemsCell(max)
	return b
}

func (b *MultiSelectMenuConversationsBuilder) Filter(filter composition.ConversationFilter) *MultiSelectMenuConversationsBuilder {
	return b.SetFilter(&filter)
}

func (b *MultiSelectMenuConversationsBuilder) SetFilter(filter *composition.ConversationFilter) *MultiSelectMenuConversationsBuilder {
	b.filter = filter
	return b
}

func (b *MultiSelectMenuConversationsBuilder) FocusOnLoad(focus bool) *MultiSelectMenuConversationsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *MultiSelectMenuConversationsBuilder) SetFocusOnLoad(focus *bool) *MultiSelectMenuConversationsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *MultiSelectMenuConversationsBuilder) Placeholder(placeholder composition.Text) *MultiSelectMenuConversationsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *MultiSelectMenuConversationsBuilder) SetPlaceholder(placeholder *composition.Text) *MultiSelectMenuConversationsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *MultiSelectMenuConversationsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *MultiSelectMenuConversationsBuilder) GetInitialConversations() *[]string {
	return b.initialConversations
}

func (b *MultiSelectMenuConversationsBuilder) GetMaxSelectedItems() *int64 {
	return b.maxSelectedItems.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *MultiSelectMenuConversationsBuilder) Build() (*MultiSelectMenuConversations, error) {
	errs := validation.NewErrors("MultiSelectMenuConversations")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("max_selected_items", b.maxSelectedItems.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &MultiSelectMenuConversations{
		Type:                         "multi_conversations_select",
		ActionID:                     b.actionID.Inner(),
		DefaultToCurrentConversation: b.defaultToCurrentConversation,
		Confirm:                      b.confirm,
		MaxSelectedItems:             b.maxSelectedItems.Inner(),
		Filter:                       b.filter,
		FocusOnLoad:                  b.focusOnLoad,
		Placeholder:                  b.placeholder.Inner(),
	}
	if b.initialConversations != nil {
		element.InitialConversations = *b.initialConversations
	}
	return element, nil
}

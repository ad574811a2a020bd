package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// SelectMenuUsers is a select menu element listing workspace users.
type SelectMenuUsers struct {
	Type        string                          `json:"type"`
	ActionID    *string                         `json:"action_id,omitempty"`
	InitialUser *string                         `json:"initial_user,omitempty"`
	Confirm     *composition.ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad *bool                           `json:"focus_on_load,omitempty"`
	Placeholder *composition.Text               `json:"placeholder,omitempty"`
}

func (e *SelectMenuUsers) sectionAccessory() {}
func (e *SelectMenuUsers) actionsElement()   {}
func (e *SelectMenuUsers) inputElement()     {}

// SelectMenuUsersBuilder builds a SelectMenuUsers element.
type SelectMenuUsersBuilder struct {
	actionID    validation.Value[string]
	initialUser *string
	confirm     *composition.ConfirmationDialog
	focusOnLoad *bool
	placeholder validation.Value[composition.Text]
}

// NewSelectMenuUsersBuilder constructs a SelectMenuUsersBuilder.
func NewSelectMenuUsersBuilder() *SelectMenuUsersBuilder {
	return &SelectMenuUsersBuilder{
		actionID:    newActionIDCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *SelectMenuUsersBuilder) ActionID(id string) *SelectMenuUsersBuilder {
	return b.SetActionID(&id)
}

func (b *SelectMenuUsersBuilder) SetActionID(id *string) *SelectMenuUsersBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *SelectMenuUsersBuilder) InitialUser(user string) *SelectMenuUsersBuilder {
	return b.SetInitialUser(&user)
}

func (b *SelectMenuUsersBuilder) SetInitialUser(user *string) *SelectMenuUsersBuilder {
	b.initialUser = user
	return b
}

func (b *SelectMenuUsersBuilder) Confirm(confirm composition.ConfirmationDialog) *SelectMenuUsersBuilder {
	return b.SetConfirm(&confirm)
}

func (b *SelectMenuUsersBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *SelectMenuUsersBuilder {
	b.confirm = confirm
	return b
}

func (b *SelectMenuUsersBuilder) FocusOnLoad(focus bool) *SelectMenuUsersBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *SelectMenuUsersBuilder) SetFocusOnLoad(focus *bool) *SelectMenuUsersBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *SelectMenuUsersBuilder) Placeholder(placeholder composition.Text) *SelectMenuUsersBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *SelectMenuUsersBuilder) SetPlaceholder(placeholder *composition.Text) *SelectMenuUsersBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *SelectMenuUsersBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *SelectMenuUsersBuilder) GetInitialUser() *string {
	return b.initialUser
}

// Build validates the accumulated fields and returns the element.
func (b *SelectMenuUsersBuilder) Build() (*SelectMenuUsers, error) {
	errs := validation.NewErrors("SelectMenuUsers")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &SelectMenuUsers{
		Type:        "users_select",
		ActionID:    b.actionID.Inner(),
		InitialUser: b.initialUser,
		Confirm:     b.confirm,
		FocusOnLoad: b.focusOnLoad,
		Placeholder: b.placeholder.Inner(),
	}, nil
}

// MultiSelectMenuUsers is a multi select menu element listing workspace
// users.
type MultiSelectMenuUsers struct {
	Type             string                          `json:"type"`
	ActionID         *string                         `json:"action_id,omitempty"`
	InitialUsers     []string                        `json:"initial_users,omitempty"`
	Confirm          *composition.ConfirmationDialog `json:"confirm,omitempty"`
	MaxSelectedItems *int64                          `json:"max_selected_items,omitempty"`
	FocusOnLoad      *bool                           `json:"focus_on_load,omitempty"`
	Placeholder      *composition.Text               `json:"placeholder,omitempty"`
}

func (e *MultiSelectMenuUsers) sectionAccessory() {}
func (e *MultiSelectMenuUsers) actionsElement()   {}
func (e *MultiSelectMenuUsers) inputElement()     {}

// MultiSelectMenuUsersBuilder builds a MultiSelectMenuUsers element.
type MultiSelectMenuUsersBuilder struct {
	actionID         validation.Value[string]
	initialUsers     *[]string
	confirm          *composition.ConfirmationDialog
	maxSelectedItems validation.Value[int64]
	focusOnLoad      *bool
	placeholder      validation.Value[composition.Text]
}

// NewMultiSelectMenuUsersBuilder constructs a MultiSelectMenuUsersBuilder.
func NewMultiSelectMenuUsersBuilder() *MultiSelectMenuUsersBuilder {
	return &MultiSelectMenuUsersBuilder{
		actionID:         newActionIDCell(nil),
		maxSelectedItems: newMaxSelectedItemsCell(nil),
		placeholder:      newPlaceholderCell(nil),
	}
}

func (b *MultiSelectMenuUsersBuilder) ActionID(id string) *MultiSelectMenuUsersBuilder {
	return b.SetActionID(&id)
}

func (b *MultiSelectMenuUsersBuilder) SetActionID(id *string) *MultiSelectMenuUsersBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// InitialUser appends an initially selected user id.
func (b *MultiSelectMenuUsersBuilder) InitialUser(user string) *MultiSelectMenuUsersBuilder {
	b.initialUsers = validation.PushItem(b.initialUsers, user)
	return b
}

func (b *MultiSelectMenuUsersBuilder) SetInitialUsers(users *[]string) *MultiSelectMenuUsersBuilder {
	b.initialUsers = users
	return b
}

func (b *MultiSelectMenuUsersBuilder) Confirm(confirm composition.ConfirmationDialog) *MultiSelectMenuUsersBuilder {
	return b.SetConfirm(&confirm)
}

func (b *MultiSelectMenuUsersBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *MultiSelectMenuUsersBuilder {
	b.confirm = confirm
	return b
}

func (b *MultiSelectMenuUsersBuilder) MaxSelectedItems(max int64) *MultiSelectMenuUsersBuilder {
	return b.SetMaxSelectedItems(&max)
}

func (b *MultiSelectMenuUsersBuilder) SetMaxSelectedItems(max *int64) *MultiSelectMenuUsersBuilder {
	b.maxSelectedItems = newMaxSelectedItemsCell(max)
	return b
}

func (b *MultiSelectMenuUsersBuilder) FocusOnLoad(focus bool) *MultiSelectMenuUsersBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *MultiSelectMenuUsersBuilder) SetFocusOnLoad(focus *bool) *MultiSelectMenuUsersBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *MultiSelectMenuUsersBuilder) Placeholder(placeholder composition.Text) *MultiSelectMenuUsersBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *MultiSelectMenuUsersBuilder) SetPlaceholder(placeholder *composition.Text) *MultiSelectMenuUsersBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *MultiSelectMenuUsersBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *MultiSelectMenuUsersBuilder) GetInitialUsers() *[]string {
	return b.initialUsers
}

func (b *MultiSelectMenuUsersBuilder) GetMaxSelectedItems() *int64 {
	return b.maxSelectedItems.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *MultiSelectMenuUsersBuilder) Build() (*MultiSelectMenuUsers, error) {
	errs := validation.NewErrors("MultiSelectMenuUsers")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("max_selected_items", b.maxSelectedItems.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &MultiSelectMenuUsers{
		Type:             "multi_users_select",
		ActionID:         b.actionID.Inner(),
		Confirm:          b.confirm,
		MaxSelectedItems: b.maxSelectedItems.Inner(),
		FocusOnLoad:      b.focusOnLoad,
		Placeholder:      b.placeholder.Inner(),
	}
	if b.initialUsers != nil {
		element.InitialUsers = *b.initialUsers
	}
	return element, nil
}

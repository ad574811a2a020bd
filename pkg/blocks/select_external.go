package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// SelectMenuExternals is a select menu element backed by an external data
// source.
type SelectMenuExternals struct {
	Type           string                          `json:"type"`
	ActionID       *string                         `json:"action_id,omitempty"`
	MinQueryLength *int64                          `json:"min_query_length,omitempty"`
	InitialOption  *composition.Opt                `json:"initial_option,omitempty"`
	Confirm        *composition.ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad    *bool                           `json:"focus_on_load,omitempty"`
	Placeholder    *composition.Text               `json:"placeholder,omitempty"`
}

func (e *SelectMenuExternals) sectionAccessory() {}
func (e *SelectMenuExternals) actionsElement()   {}
func (e *SelectMenuExternals) inputElement()     {}

// SelectMenuExternalsBuilder builds a SelectMenuExternals element.
type SelectMenuExternalsBuilder struct {
	actionID       validation.Value[string]
	minQueryLength *int64
	initialOption  *composition.Opt
	confirm        *composition.ConfirmationDialog
	focusOnLoad    *bool
	placeholder    validation.Value[composition.Text]
}

// NewSelectMenuExternalsBuilder constructs a SelectMenuExternalsBuilder.
func NewSelectMenuExternalsBuilder() *SelectMenuExternalsBuilder {
	return &SelectMenuExternalsBuilder{
		actionID:    newActionIDCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *SelectMenuExternalsBuilder) ActionID(id string) *SelectMenuExternalsBuilder {
	return b.SetActionID(&id)
}

func (b *SelectMenuExternalsBuilder) SetActionID(id *string) *SelectMenuExternalsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *SelectMenuExternalsBuilder) MinQueryLength(length int64) *SelectMenuExternalsBuilder {
	return b.SetMinQueryLength(&length)
}

func (b *SelectMenuExternalsBuilder) SetMinQueryLength(length *int64) *SelectMenuExternalsBuilder {
	b.minQueryLength = length
	return b
}

func (b *SelectMenuExternalsBuilder) InitialOption(option composition.Opt) *SelectMenuExternalsBuilder {
	return b.SetInitialOption(&option)
}

func (b *SelectMenuExternalsBuilder) SetInitialOption(option *composition.Opt) *SelectMenuExternalsBuilder {
	b.initialOption = option
	return b
}

func (b *SelectMenuExternalsBuilder) Confirm(confirm composition.ConfirmationDialog) *SelectMenuExternalsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *SelectMenuExternalsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *SelectMenuExternalsBuilder {
	b.confirm = confirm
	return b
}

func (b *SelectMenuExternalsBuilder) FocusOnLoad(focus bool) *SelectMenuExternalsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *SelectMenuExternalsBuilder) SetFocusOnLoad(focus *bool) *SelectMenuExternalsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *SelectMenuExternalsBuilder) Placeholder(placeholder composition.Text) *SelectMenuExternalsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *SelectMenuExternalsBuilder) SetPlaceholder(placeholder *composition.Text) *SelectMenuExternalsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *SelectMenuExternalsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *SelectMenuExternalsBuilder) GetMinQueryLength() *int64 {
	return b.minQueryLength
}

// Build validates the accumulated fields and returns the element.
func (b *SelectMenuExternalsBuilder) Build() (*SelectMenuExternals, error) {
	errs := validation.NewErrors("SelectMenuExternals")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &SelectMenuExternals{
		Type:           "external_select",
		ActionID:       b.actionID.Inner(),
		MinQueryLength: b.minQueryLength,
		InitialOption:  b.initialOption,
		Confirm:        b.confirm,
		FocusOnLoad:    b.focusOnLoad,
		Placeholder:    b.placeholder.Inner(),
	}, nil
}

// MultiSelectMenuExternals is a multi select menu element backed by an
// external data source.
type MultiSelectMenuExternals struct {
	Type             string                          `json:"type"`
	ActionID         *string                         `json:"action_id,omitempty"`
	MinQueryLength   *int64                          `json:"min_query_length,omitempty"`
	InitialOptions   []composition.Opt               `json:"initial_options,omitempty"`
	Confirm          *composition.ConfirmationDialog `json:"confirm,omitempty"`
	MaxSelectedItems *int64                          `json:"max_selected_items,omitempty"`
	FocusOnLoad      *bool                           `json:"focus_on_load,omitempty"`
	Placeholder      *composition.Text               `json:"placeholder,omitempty"`
}

func (e *MultiSelectMenuExternals) sectionAccessory() {}
func (e *MultiSelectMenuExternals) actionsElement()   {}
func (e *MultiSelectMenuExternals) inputElement()     {}

// MultiSelectMenuExternalsBuilder builds a MultiSelectMenuExternals
// element.
type MultiSelectMenuExternalsBuilder struct {
	actionID         validation.Value[string]
	minQueryLength   *int64
	initialOptions   *[]composition.Opt
	confirm          *composition.ConfirmationDialog
	maxSelectedItems validation.Value[int64]
	focusOnLoad      *bool
	placeholder      validation.Value[composition.Text]
}

// NewMultiSelectMenuExternalsBuilder constructs a
// MultiSelectMenuExternalsBuilder.
func NewMultiSelectMenuExternalsBuilder() *MultiSelectMenuExternalsBuilder {
	return &MultiSelectMenuExternalsBuilder{
		actionID:         newActionIDCell(nil),
		maxSelectedItems: newMaxSelectedItemsCell(nil),
		placeholder:      newPlaceholderCell(nil),
	}
}

func (b *MultiSelectMenuExternalsBuilder) ActionID(id string) *MultiSelectMenuExternalsBuilder {
	return b.SetActionID(&id)
}

func (b *MultiSelectMenuExternalsBuilder) SetActionID(id *string) *MultiSelectMenuExternalsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

func (b *MultiSelectMenuExternalsBuilder) MinQueryLength(length int64) *MultiSelectMenuExternalsBuilder {
	return b.SetMinQueryLength(&length)
}

func (b *MultiSelectMenuExternalsBuilder) SetMinQueryLength(length *int64) *MultiSelectMenuExternalsBuilder {
	b.minQueryLength = length
	return b
}

// InitialOption appends an initially selected option.
func (b *MultiSelectMenuExternalsBuilder) InitialOption(option composition.Opt) *MultiSelectMenuExternalsBuilder {
	b.initialOptions = validation.PushItem(b.initialOptions, option)
	return b
}

func (b *MultiSelectMenuExternalsBuilder) SetInitialOptions(options *[]composition.Opt) *MultiSelectMenuExternalsBuilder {
	b.initialOptions = options
	return b
}

func (b *MultiSelectMenuExternalsBuilder) Confirm(confirm composition.ConfirmationDialog) *MultiSelectMenuExternalsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *MultiSelectMenuExternalsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *MultiSelectMenuExternalsBuilder {
	b.confirm = confirm
	return b
}

func (b *MultiSelectMenuExternalsBuilder) MaxSelectedItems(max int64) *MultiSelectMenuExternalsBuilder {
	return b.SetMaxSelectedItems(&max)
}

func (b *MultiSelectMenuExternalsBuilder) SetMaxSelectedItems(max *int64) *MultiSelectMenuExternalsBuilder {
	b.maxSelectedItems = newMaxSelectedItemsCell(max)
	return b
}

func (b *MultiSelectMenuExternalsBuilder) FocusOnLoad(focus bool) *MultiSelectMenuExternalsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *MultiSelectMenuExternalsBuilder) SetFocusOnLoad(focus *bool) *MultiSelectMenuExternalsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *MultiSelectMenuExternalsBuilder) Placeholder(placeholder composition.Text) *MultiSelectMenuExternalsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *MultiSelectMenuExternalsBuilder) SetPlaceholder(placeholder *composition.Text) *MultiSelectMenuExternalsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *MultiSelectMenuExternalsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *MultiSelectMenuExternalsBuilder) GetMinQueryLength() *int64 {
	return b.minQueryLength
}

func (b *MultiSelectMenuExternalsBuilder) GetMaxSelectedItems() *int64 {
	return b.maxSelectedItems.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *MultiSelectMenuExternalsBuilder) Build() (*MultiSelectMenuExternals, error) {
	errs := validation.NewErrors("MultiSelectMenuExternals")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("max_selected_items", b.maxSelectedItems.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &MultiSelectMenuExternals{
		Type:             "multi_external_select",
		ActionID:         b.actionID.Inner(),
		MinQueryLength:   b.minQueryLength,
		Confirm:          b.confirm,
		MaxSelectedItems: b.maxSelectedItems.Inner(),
		FocusOnLoad:      b.focusOnLoad,
		Placeholder:      b.placeholder.Inner(),
	}
	if b.initialOptions != nil {
		element.InitialOptions = *b.initialOptions
	}
	return element, nil
}

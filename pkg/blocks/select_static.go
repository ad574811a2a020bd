package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// SelectMenuStaticOptions is a static select menu element. Exactly one of
// options and option_groups must be set.
type SelectMenuStaticOptions struct {
	Type          string                          `json:"type"`
	ActionID      *string                         `json:"action_id,omitempty"`
	Options       []composition.Opt               `json:"options,omitempty"`
	OptionGroups  []composition.OptGroup          `json:"option_groups,omitempty"`
	InitialOption *composition.Opt                `json:"initial_option,omitempty"`
	Confirm       *composition.ConfirmationDialog `json:"confirm,omitempty"`
	FocusOnLoad   *bool                           `json:"focus_on_load,omitempty"`
	Placeholder   *composition.Text               `json:"placeholder,omitempty"`
}

func (e *SelectMenuStaticOptions) sectionAccessory() {}
func (e *SelectMenuStaticOptions) actionsElement()   {}
func (e *SelectMenuStaticOptions) inputElement()     {}

func validateStaticSource(errs *validation.Errors, options *[]composition.Opt, groups *[]composition.OptGroup) {
	switch {
	case options != nil && groups != nil:
		errs.AddAcross([]validation.Kind{validation.ExclusiveField("options", "option_groups")})
	case options == nil && groups == nil:
		errs.AddAcross([]validation.Kind{validation.EitherRequired("options", "option_groups")})
	}
}

// SelectMenuStaticOptionsBuilder builds a SelectMenuStaticOptions element.
type SelectMenuStaticOptionsBuilder struct {
	actionID      validation.Value[string]
	options       *[]composition.Opt
	optionGroups  *[]composition.OptGroup
	initialOption *composition.Opt
	confirm       *composition.ConfirmationDialog
	focusOnLoad   *bool
	placeholder   validation.Value[composition.Text]
}

// NewSelectMenuStaticOptionsBuilder constructs a
// SelectMenuStaticOptionsBuilder.
func NewSelectMenuStaticOptionsBuilder() *SelectMenuStaticOptionsBuilder {
	return &SelectMenuStaticOptionsBuilder{
		actionID:    newActionIDCell(nil),
		placeholder: newPlaceholderCell(nil),
	}
}

func (b *SelectMenuStaticOptionsBuilder) ActionID(id string) *SelectMenuStaticOptionsBuilder {
	return b.SetActionID(&id)
}

func (b *SelectMenuStaticOptionsBuilder) SetActionID(id *string) *SelectMenuStaticOptionsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// Option appends an option.
func (b *SelectMenuStaticOptionsBuilder) Option(option composition.Opt) *SelectMenuStaticOptionsBuilder {
	b.options = validation.PushItem(b.options, option)
	return b
}

func (b *SelectMenuStaticOptionsBuilder) SetOptions(options *[]composition.Opt) *SelectMenuStaticOptionsBuilder {
	b.options = options
	return b
}

// OptionGroup appends an option group.
func (b *SelectMenuStaticOptionsBuilder) OptionGroup(group composition.OptGroup) *SelectMenuStaticOptionsBuilder {
	b.optionGroups = validation.PushItem(b.optionGroups, group)
	return b
}

func (b *SelectMenuStaticOptionsBuilder) SetOptionGroups(groups *[]composition.OptGroup) *SelectMenuStaticOptionsBuilder {
	b.optionGroups = groups
	return b
}

func (b *SelectMenuStaticOptionsBuilder) InitialOption(option composition.Opt) *SelectMenuStaticOptionsBuilder {
	return b.SetInitialOption(&option)
}

func (b *SelectMenuStaticOptionsBuilder) SetInitialOption(option *composition.Opt) *SelectMenuStaticOptionsBuilder {
	b.initialOption = option
	return b
}

func (b *SelectMenuStaticOptionsBuilder) Confirm(confirm composition.ConfirmationDialog) *SelectMenuStaticOptionsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *SelectMenuStaticOptionsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *SelectMenuStaticOptionsBuilder {
	b.confirm = confirm
	return b
}

func (b *SelectMenuStaticOptionsBuilder) FocusOnLoad(focus bool) *SelectMenuStaticOptionsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *SelectMenuStaticOptionsBuilder) SetFocusOnLoad(focus *bool) *SelectMenuStaticOptionsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *SelectMenuStaticOptionsBuilder) Placeholder(placeholder composition.Text) *SelectMenuStaticOptionsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *SelectMenuStaticOptionsBuilder) SetPlaceholder(placeholder *composition.Text) *SelectMenuStaticOptionsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *SelectMenuStaticOptionsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *SelectMenuStaticOptionsBuilder) GetOptions() *[]composition.Opt {
	return b.options
}

func (b *SelectMenuStaticOptionsBuilder) GetOptionGroups() *[]composition.OptGroup {
	return b.optionGroups
}

func (b *SelectMenuStaticOptionsBuilder) GetPlaceholder() *composition.Text {
	return b.placeholder.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *SelectMenuStaticOptionsBuilder) Build() (*SelectMenuStaticOptions, error) {
	options := validation.Pipe(
		validation.NewValue(b.options),
		validation.MaxItems[composition.Opt](100),
	)
	groups := validation.Pipe(
		validation.NewValue(b.optionGroups),
		validation.MaxItems[composition.OptGroup](100),
	)

	errs := validation.NewErrors("SelectMenuStaticOptions")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("options", options.Errors())
	errs.AddField("option_groups", groups.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	validateStaticSource(errs, b.options, b.optionGroups)
	if !errs.Empty() {
		return nil, errs
	}

	element := &SelectMenuStaticOptions{
		Type:          "static_select",
		ActionID:      b.actionID.Inner(),
		InitialOption: b.initialOption,
		Confirm:       b.confirm,
		FocusOnLoad:   b.focusOnLoad,
		Placeholder:   b.placeholder.Inner(),
	}
	if inner := options.Inner(); inner != nil {
		element.Options = *inner
	}
	if inner := groups.Inner(); inner != nil {
		element.OptionGroups = *inner
	}
	return element, nil
}

// MultiSelectMenuStaticOptions is a multi static select menu element.
// Exactly one of options and option_groups must be set.
type MultiSelectMenuStaticOptions struct {
	Type             string                          `json:"type"`
	ActionID         *string                         `json:"action_id,omitempty"`
	Options          []composition.Opt               `json:"options,omitempty"`
	OptionGroups     []composition.OptGroup          `json:"option_groups,omitempty"`
	InitialOptions   []composition.Opt               `json:"initial_options,omitempty"`
	Confirm          *composition.ConfirmationDialog `json:"confirm,omitempty"`
	MaxSelectedItems *int64                          `json:"max_selected_items,omitempty"`
	FocusOnLoad      *bool                           `json:"focus_on_load,omitempty"`
	Placeholder      *composition.Text               `json:"placeholder,omitempty"`
}

func (e *MultiSelectMenuStaticOptions) sectionAccessory() {}
func (e *MultiSelectMenuStaticOptions) actionsElement()   {}
func (e *MultiSelectMenuStaticOptions) inputElement()     {}

func newMaxSelectedItemsCell(max *int64) validation.Value[int64] {
	return validation.Pipe(
		validation.NewValue(max),
		validation.MinInteger(1),
	)
}

// MultiSelectMenuStaticOptionsBuilder builds a
// MultiSelectMenuStaticOptions element.
type MultiSelectMenuStaticOptionsBuilder struct {
	actionID         validation.Value[string]
	options          *[]composition.Opt
	optionGroups     *[]composition.OptGroup
	initialOptions   *[]composition.Opt
	confirm          *composition.ConfirmationDialog
	maxSelectedItems validation.Value[int64]
	focusOnLoad      *bool
	placeholder      validation.Value[composition.Text]
}

// NewMultiSelectMenuStaticOptionsBuilder constructs a
// MultiSelectMenuStaticOptionsBuilder.
func NewMultiSelectMenuStaticOptionsBuilder() *MultiSelectMenuStaticOptionsBuilder {
	return &MultiSelectMenuStaticOptionsBuilder{
		actionID:         newActionIDCell(nil),
		maxSelectedItems: newMaxSelectedItemsCell(nil),
		placeholder:      newPlaceholderCell(nil),
	}
}

func (b *MultiSelectMenuStaticOptionsBuilder) ActionID(id string) *MultiSelectMenuStaticOptionsBuilder {
	return b.SetActionID(&id)
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetActionID(id *string) *MultiSelectMenuStaticOptionsBuilder {
	b.actionID = newActionIDCell(id)
	return b
}

// Option appends an option.
func (b *MultiSelectMenuStaticOptionsBuilder) Option(option composition.Opt) *MultiSelectMenuStaticOptionsBuilder {
	b.options = validation.PushItem(b.options, option)
	return b
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetOptions(options *[]composition.Opt) *MultiSelectMenuStaticOptionsBuilder {
	b.options = options
	return b
}

// OptionGroup appends an option group.
func (b *MultiSelectMenuStaticOptionsBuilder) OptionGroup(group composition.OptGroup) *MultiSelectMenuStaticOptionsBuilder {
	b.optionGroups = validation.PushItem(b.optionGroups, group)
	return b
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetOptionGroups(groups *[]composition.OptGroup) *MultiSelectMenuStaticOptionsBuilder {
	b.optionGroups = groups
	return b
}

// InitialOption appends an initially selected option.
func (b *MultiSelectMenuStaticOptionsBuilder) InitialOption(option composition.Opt) *MultiSelectMenuStaticOptionsBuilder {
	b.initialOptions = validation.PushItem(b.initialOptions, option)
	return b
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetInitialOptions(options *[]composition.Opt) *MultiSelectMenuStaticOptionsBuilder {
	b.initialOptions = options
	return b
}

func (b *MultiSelectMenuStaticOptionsBuilder) Confirm(confirm composition.ConfirmationDialog) *MultiSelectMenuStaticOptionsBuilder {
	return b.SetConfirm(&confirm)
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetConfirm(confirm *composition.ConfirmationDialog) *MultiSelectMenuStaticOptionsBuilder {
	b.confirm = confirm
	return b
}

func (b *MultiSelectMenuStaticOptionsBuilder) MaxSelectedItems(max int64) *MultiSelectMenuStaticOptionsBuilder {
	return b.SetMaxSelectedItems(&max)
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetMaxSelectedItems(max *int64) *MultiSelectMenuStaticOptionsBuilder {
	b.maxSelectedItems = newMaxSelectedItemsCell(max)
	return b
}

func (b *MultiSelectMenuStaticOptionsBuilder) FocusOnLoad(focus bool) *MultiSelectMenuStaticOptionsBuilder {
	return b.SetFocusOnLoad(&focus)
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetFocusOnLoad(focus *bool) *MultiSelectMenuStaticOptionsBuilder {
	b.focusOnLoad = focus
	return b
}

// Placeholder sets the placeholder, a plain_text object.
func (b *MultiSelectMenuStaticOptionsBuilder) Placeholder(placeholder composition.Text) *MultiSelectMenuStaticOptionsBuilder {
	return b.SetPlaceholder(&placeholder)
}

func (b *MultiSelectMenuStaticOptionsBuilder) SetPlaceholder(placeholder *composition.Text) *MultiSelectMenuStaticOptionsBuilder {
	b.placeholder = newPlaceholderCell(placeholder)
	return b
}

func (b *MultiSelectMenuStaticOptionsBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *MultiSelectMenuStaticOptionsBuilder) GetOptions() *[]composition.Opt {
	return b.options
}

func (b *MultiSelectMenuStaticOptionsBuilder) GetOptionGroups() *[]composition.OptGroup {
	return b.optionGroups
}

func (b *MultiSelectMenuStaticOptionsBuilder) GetMaxSelectedItems() *int64 {
	return b.maxSelectedItems.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *MultiSelectMenuStaticOptionsBuilder) Build() (*MultiSelectMenuStaticOptions, error) {
	options := validation.Pipe(
		validation.NewValue(b.options),
		validation.MaxItems[composition.Opt](100),
	)
	groups := validation.Pipe(
		validation.NewValue(b.optionGroups),
		validation.MaxItems[composition.OptGroup](100),
	)

	errs := validation.NewErrors("MultiSelectMenuStaticOptions")
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("options", options.Errors())
	errs.AddField("option_groups", groups.Errors())
	errs.AddField("max_selected_items", b.maxSelectedItems.Errors())
	errs.AddField("placeholder", b.placeholder.Errors())
	validateStaticSource(errs, b.options, b.optionGroups)
	if !errs.Empty() {
		return nil, errs
	}

	element := &MultiSelectMenuStaticOptions{
		Type:             "multi_static_select",
		ActionID:         b.actionID.Inner(),
		Confirm:          b.confirm,
		MaxSelectedItems: b.maxSelectedItems.Inner(),
		FocusOnLoad:      b.focusOnLoad,
		Placeholder:      b.placeholder.Inner(),
	}
	if inner := options.Inner(); inner != nil {
		element.Options = *inner
	}
	if inner := groups.Inner(); inner != nil {
		element.OptionGroups = *inner
	}
	if b.initialOptions != nil {
		element.InitialOptions = *b.initialOptions
	}
	return element, nil
}

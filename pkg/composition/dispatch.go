package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// TriggerAction names an interaction that dispatches a block_actions
// payload from a text input.
type TriggerAction string

// Trigger actions.
const (
	OnEnterPressed     TriggerAction = "on_enter_pressed"
	OnCharacterEntered TriggerAction = "on_character_entered"
)

// DispatchActionConfiguration determines when a text input element
// dispatches a block_actions payload.
type DispatchActionConfiguration struct {
	TriggerActionsOn []TriggerAction `json:"trigger_actions_on,omitempty"`
}

// DispatchActionConfigurationBuilder builds a DispatchActionConfiguration.
type DispatchActionConfigurationBuilder struct {
	triggerActionsOn *[]TriggerAction
}

// NewDispatchActionConfigurationBuilder constructs a
// DispatchActionConfigurationBuilder.
func NewDispatchActionConfigurationBuilder() *DispatchActionConfigurationBuilder {
	return &DispatchActionConfigurationBuilder{}
}

// TriggerAction appends a trigger action.
func (b *DispatchActionConfigurationBuilder) TriggerAction(action TriggerAction) *DispatchActionConfigurationBuilder {
	b.triggerActionsOn = validation.PushItem(b.triggerActionsOn, action)
	return b
}

func (b *DispatchActionConfigurationBuilder) SetTriggerActionsOn(actions *[]TriggerAction) *DispatchActionConfigurationBuilder {
	b.triggerActionsOn = actions
	return b
}

func (b *DispatchActionConfigurationBuilder) GetTriggerActionsOn() *[]TriggerAction {
	return b.triggerActionsOn
}

// Build validates the accumulated fields and returns the configuration.
func (b *DispatchActionConfigurationBuilder) Build() (*DispatchActionConfiguration, error) {
	actions := validation.Pipe(
		validation.NewValue(b.triggerActionsOn),
		validation.NotEmpty[TriggerAction](),
	)

	errs := validation.NewErrors("DispatchActionConfiguration")
	errs.AddField("trigger_actions_on", actions.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	configuration := &DispatchActionConfiguration{}
	if inner := actions.Inner(); inner != nil {
		configuration.TriggerActionsOn = *inner
	}
	return configuration, nil
}

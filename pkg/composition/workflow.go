package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Workflow is the workflow composition object used by workflow buttons.
type Workflow struct {
	Trigger *Trigger `json:"trigger"`
}

// Trigger points at a link trigger and carries the input parameters passed
// to the workflow when it runs.
type Trigger struct {
	URL                         string           `json:"url"`
	CustomizableInputParameters []InputParameter `json:"customizable_input_parameters,omitempty"`
}

// InputParameter is a single name/value input for a workflow trigger.
type InputParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// WorkflowBuilder builds a Workflow.
type WorkflowBuilder struct {
	trigger validation.Value[Trigger]
}

func newWorkflowTriggerCell(trigger *Trigger) validation.Value[Trigger] {
	return validation.Pipe(
		validation.NewValue(trigger),
		validation.Require[Trigger](),
	)
}

// NewWorkflowBuilder constructs a WorkflowBuilder.
func NewWorkflowBuilder() *WorkflowBuilder {
	return &WorkflowBuilder{trigger: newWorkflowTriggerCell(nil)}
}

func (b *WorkflowBuilder) Trigger(trigger Trigger) *WorkflowBuilder {
	return b.SetTrigger(&trigger)
}

func (b *WorkflowBuilder) SetTrigger(trigger *Trigger) *WorkflowBuilder {
	b.trigger = newWorkflowTriggerCell(trigger)
	return b
}

func (b *WorkflowBuilder) GetTrigger() *Trigger {
	return b.trigger.Inner()
}

// Build validates the accumulated fields and returns the workflow.
func (b *WorkflowBuilder) Build() (*Workflow, error) {
	errs := validation.NewErrors("Workflow")
	errs.AddField("trigger", b.trigger.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	return &Workflow{Trigger: b.trigger.Inner()}, nil
}

// TriggerBuilder builds a Trigger.
type TriggerBuilder struct {
	url        validation.Value[string]
	parameters *[]InputParameter
}

func newTriggerURLCell(url *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(url),
		validation.Require[string](),
	)
}

// NewTriggerBuilder constructs a TriggerBuilder.
func NewTriggerBuilder() *TriggerBuilder {
	return &TriggerBuilder{url: newTriggerURLCell(nil)}
}

func (b *TriggerBuilder) URL(url string) *TriggerBuilder {
	return b.SetURL(&url)
}

func (b *TriggerBuilder) SetURL(url *string) *TriggerBuilder {
	b.url = newTriggerURLCell(url)
	return b
}

// CustomizableInputParameter appends an input parameter.
func (b *TriggerBuilder) CustomizableInputParameter(parameter InputParameter) *TriggerBuilder {
	b.parameters = validation.PushItem(b.parameters, parameter)
	return b
}

func (b *TriggerBuilder) SetCustomizableInputParameters(parameters *[]InputParameter) *TriggerBuilder {
	b.parameters = parameters
	return b
}

func (b *TriggerBuilder) GetURL() *string {
	return b.url.Inner()
}

func (b *TriggerBuilder) GetCustomizableInputParameters() *[]InputParameter {
	return b.parameters
}

// Build validates the accumulated fields and returns the trigger.
func (b *TriggerBuilder) Build() (*Trigger, error) {
	errs := validation.NewErrors("Trigger")
	errs.AddField("url", b.url.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	trigger := &Trigger{}
	if url := b.url.Inner(); url != nil {
		trigger.URL = *url
	}
	if b.parameters != nil {
		trigger.CustomizableInputParameters = *b.parameters
	}
	return trigger, nil
}

// InputParameterBuilder builds an InputParameter.
type InputParameterBuilder struct {
	name  validation.Value[string]
	value validation.Value[string]
}

func newInputParameterCell(s *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(s),
		validation.Require[string](),
	)
}

// NewInputParameterBuilder constructs an InputParameterBuilder.
func NewInputParameterBuilder() *InputParameterBuilder {
	return &InputParameterBuilder{
		name:  newInputParameterCell(nil),
		value: newInputParameterCell(nil),
	}
}

func (b *InputParameterBuilder) Name(name string) *InputParameterBuilder {
	return b.SetName(&name)
}

func (b *InputParameterBuilder) SetName(name *string) *InputParameterBuilder {
	b.name = newInputParameterCell(name)
	return b
}

func (b *InputParameterBuilder) Value(value string) *InputParameterBuilder {
	return b.SetValue(&value)
}

func (b *InputParameterBuilder) SetValue(value *string) *InputParameterBuilder {
	b.value = newInputParameterCell(value)
	return b
}

func (b *InputParameterBuilder) GetName() *string {
	return b.name.Inner()
}

func (b *InputParameterBuilder) GetValue() *string {
	return b.value.Inner()
}

// Build validates the accumulated fields and returns the parameter.
func (b *InputParameterBuilder) Build() (*InputParameter, error) {
	errs := validation.NewErrors("InputParameter")
	errs.AddField("name", b.name.Errors())
	errs.AddField("value", b.value.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	parameter := &InputParameter{}
	if name := b.name.Inner(); name != nil {
		parameter.Name = *name
	}
	if value := b.value.Inner(); value != nil {
		parameter.Value = *value
	}
	return parameter, nil
}

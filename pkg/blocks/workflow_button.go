package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// WorkflowButton is a workflow button element. The text must be a
// plain_text object.
type WorkflowButton struct {
	Type               string                `json:"type"`
	Text               *composition.Text     `json:"text"`
	ActionID           string                `json:"action_id"`
	Workflow           *composition.Workflow `json:"workflow"`
	Style              *string               `json:"style,omitempty"`
	AccessibilityLabel *string               `json:"accessibility_label,omitempty"`
}

func (e *WorkflowButton) sectionAccessory() {}
func (e *WorkflowButton) actionsElement()   {}

// WorkflowButtonBuilder builds a WorkflowButton element.
type WorkflowButtonBuilder struct {
	text               validation.Value[composition.Text]
	actionID           validation.Value[string]
	workflow           validation.Value[composition.Workflow]
	style              *string
	accessibilityLabel validation.Value[string]
}

func newWorkflowButtonActionIDCell(id *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(id),
		validation.Require[string](),
		validation.MaxText(255),
	)
}

func newWorkflowCell(workflow *composition.Workflow) validation.Value[composition.Workflow] {
	return validation.Pipe(
		validation.NewValue(workflow),
		validation.Require[composition.Workflow](),
	)
}

// NewWorkflowButtonBuilder constructs a WorkflowButtonBuilder.
func NewWorkflowButtonBuilder() *WorkflowButtonBuilder {
	return &WorkflowButtonBuilder{
		text:               newButtonTextCell(nil),
		actionID:           newWorkflowButtonActionIDCell(nil),
		workflow:           newWorkflowCell(nil),
		accessibilityLabel: newButtonLabelCell(nil),
	}
}

func (b *WorkflowButtonBuilder) Text(text composition.Text) *WorkflowButtonBuilder {
	return b.SetText(&text)
}

func (b *WorkflowButtonBuilder) SetText(text *composition.Text) *WorkflowButtonBuilder {
	b.text = newButtonTextCell(text)
	return b
}

func (b *WorkflowButtonBuilder) ActionID(id string) *WorkflowButtonBuilder {
	return b.SetActionID(&id)
}

func (b *WorkflowButtonBuilder) SetActionID(id *string) *WorkflowButtonBuilder {
	b.actionID = newWorkflowButtonActionIDCell(id)
	return b
}

func (b *WorkflowButtonBuilder) Workflow(workflow composition.Workflow) *WorkflowButtonBuilder {
	return b.SetWorkflow(&workflow)
}

func (b *WorkflowButtonBuilder) SetWorkflow(workflow *composition.Workflow) *WorkflowButtonBuilder {
	b.workflow = newWorkflowCell(workflow)
	return b
}

// Primary sets the style to primary.
func (b *WorkflowButtonBuilder) Primary() *WorkflowButtonBuilder {
	style := composition.StylePrimary
	b.style = &style
	return b
}

// Danger sets the style to danger.
func (b *WorkflowButtonBuilder) Danger() *WorkflowButtonBuilder {
	style := composition.StyleDanger
	b.style = &style
	return b
}

func (b *WorkflowButtonBuilder) AccessibilityLabel(label string) *WorkflowButtonBuilder {
	return b.SetAccessibilityLabel(&label)
}

func (b *WorkflowButtonBuilder) SetAccessibilityLabel(label *string) *WorkflowButtonBuilder {
	b.accessibilityLabel = newButtonLabelCell(label)
	return b
}

func (b *WorkflowButtonBuilder) GetText() *composition.Text {
	return b.text.Inner()
}

func (b *WorkflowButtonBuilder) GetActionID() *string {
	return b.actionID.Inner()
}

func (b *WorkflowButtonBuilder) GetWorkflow() *composition.Workflow {
	return b.workflow.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *WorkflowButtonBuilder) Build() (*WorkflowButton, error) {
	errs := validation.NewErrors("WorkflowButton")
	errs.AddField("text", b.text.Errors())
	errs.AddField("action_id", b.actionID.Errors())
	errs.AddField("workflow", b.workflow.Errors())
	errs.AddField("accessibility_label", b.accessibilityLabel.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &WorkflowButton{
		Type:               "workflow_button",
		Text:               b.text.Inner(),
		Workflow:           b.workflow.Inner(),
		Style:              b.style,
		AccessibilityLabel: b.accessibilityLabel.Inner(),
	}
	if id := b.actionID.Inner(); id != nil {
		element.ActionID = *id
	}
	return element, nil
}

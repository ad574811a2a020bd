package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// OptGroup is the option group composition object. The label must be a
// plain_text object.
type OptGroup struct {
	Label   *Text `json:"label"`
	Options []Opt `json:"options"`
}

// OptGroupBuilder builds an OptGroup. Options accumulate via Option and
// are validated when Build runs.
type OptGroupBuilder struct {
	label   validation.Value[Text]
	options *[]Opt
}

func newOptGroupLabelCell(label *Text) validation.Value[Text] {
	return validation.Pipe(
		validation.NewValue(label),
		validation.Require[Text](),
		validation.TexterMaxLength[Text](75),
	)
}

// NewOptGroupBuilder constructs an OptGroupBuilder.
func NewOptGroupBuilder() *OptGroupBuilder {
	return &OptGroupBuilder{label: newOptGroupLabelCell(nil)}
}

func (b *OptGroupBuilder) Label(label Text) *OptGroupBuilder {
	return b.SetLabel(&label)
}

func (b *OptGroupBuilder) SetLabel(label *Text) *OptGroupBuilder {
	b.label = newOptGroupLabelCell(label)
	return b
}

// Option appends an option to the group.
func (b *OptGroupBuilder) Option(option Opt) *OptGroupBuilder {
	b.options = validation.PushItem(b.options, option)
	return b
}

func (b *OptGroupBuilder) SetOptions(options *[]Opt) *OptGroupBuilder {
	b.options = options
	return b
}

func (b *OptGroupBuilder) GetLabel() *Text {
	return b.label.Inner()
}

func (b *OptGroupBuilder) GetOptions() *[]Opt {
	return b.options
}

// Build validates the accumulated fields and returns the option group.
func (b *OptGroupBuilder) Build() (*OptGroup, error) {
	options := validation.Pipe(
		validation.NewValue(b.options),
		validation.Require[[]Opt](),
		validation.MaxItems[Opt](100),
	)

	errs := validation.NewErrors("OptGroup")
	errs.AddField("label", b.label.Errors())
	errs.AddField("options", options.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	group := &OptGroup{Label: b.label.Inner()}
	if inner := options.Inner(); inner != nil {
		group.Options = *inner
	}
	return group, nil
}

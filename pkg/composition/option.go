package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Opt is the option composition object used by select menus, overflow
// menus, checkbox groups and radio button groups.
type Opt struct {
	Text        *Text   `json:"text"`
	Value       string  `json:"value"`
	Description *Text   `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// OptBuilder builds an Opt.
type OptBuilder struct {
	text        validation.Value[Text]
	value       validation.Value[string]
	description validation.Value[Text]
	url         validation.Value[string]
}

func newOptTextCell(text *Text) validation.Value[Text] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[Text](),
		validation.TexterMaxLength[Text](75),
	)
}

func newOptValueCell(value *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(value),
		validation.Require[string](),
		validation.MaxText(150),
	)
}

func newOptDescriptionCell(description *Text) validation.Value[Text] {
	return validation.Pipe(
		validation.NewValue(description),
		validation.TexterMaxLength[Text](75),
	)
}

func newOptURLCell(url *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(url),
		validation.MaxText(3000),
	)
}

// NewOptBuilder constructs an OptBuilder.
func NewOptBuilder() *OptBuilder {
	return &OptBuilder{
		text:        newOptTextCell(nil),
		value:       newOptValueCell(nil),
		description: newOptDescriptionCell(nil),
		url:         newOptURLCell(nil),
	}
}

func (b *OptBuilder) Text(text Text) *OptBuilder {
	return b.SetText(&text)
}

func (b *OptBuilder) SetText(text *Text) *OptBuilder {
	b.text = newOptTextCell(text)
	return b
}

func (b *OptBuilder) Value(value string) *OptBuilder {
	return b.SetValue(&value)
}

func (b *OptBuilder) SetValue(value *string) *OptBuilder {
	b.value = newOptValueCell(value)
	return b
}

func (b *OptBuilder) Description(description Text) *OptBuilder {
	return b.SetDescription(&description)
}

func (b *OptBuilder) SetDescription(description *Text) *OptBuilder {
	b.description = newOptDescriptionCell(description)
	return b
}

// URL is available for options of overflow menus only.
func (b *OptBuilder) URL(url string) *OptBuilder {
	return b.SetURL(&url)
}

func (b *OptBuilder) SetURL(url *string) *OptBuilder {
	b.url = newOptURLCell(url)
	return b
}

func (b *OptBuilder) GetText() *Text {
	return b.text.Inner()
}

func (b *OptBuilder) GetValue() *string {
	return b.value.Inner()
}

func (b *OptBuilder) GetDescription() *Text {
	return b.description.Inner()
}

func (b *OptBuilder) GetURL() *string {
	return b.url.Inner()
}

// Build validates the accumulated fields and returns the option.
func (b *OptBuilder) Build() (*Opt, error) {
	errs := validation.NewErrors("Opt")
	errs.AddField("text", b.text.Errors())
	errs.AddField("value", b.value.Errors())
	errs.AddField("description", b.description.Errors())
	errs.AddField("url", b.url.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	opt := &Opt{
		Text:        b.text.Inner(),
		Description: b.description.Inner(),
		URL:         b.url.Inner(),
	}
	if value := b.value.Inner(); value != nil {
		opt.Value = *value
	}
	return opt, nil
}

// Package composition holds the composition objects shared across blocks
// and elements: text objects, options and option groups, confirmation
// dialogs, and the smaller workflow/file/filter structures. Every object is
// produced by a builder whose Build validates the accumulated fields and
// returns either the finished object or a *validation.Errors report.
package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Text object types.
const (
	TypePlain  = "plain_text"
	TypeMrkdwn = "mrkdwn"
)

// Text is the text composition object, serialized either as plain_text or
// mrkdwn depending on which builder produced it.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`

	// Emoji applies to plain_text objects only.
	Emoji *bool `json:"emoji,omitempty"`

	// Verbatim applies to mrkdwn objects only.
	Verbatim *bool `json:"verbatim,omitempty"`
}

// TextValue implements validation.Texter.
func (t Text) TextValue() string {
	return t.Text
}

func newTextCell(text *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[string](),
		validation.MinText(1),
		validation.MaxText(3000),
	)
}

// PlainTextBuilder builds a plain_text Text object.
type PlainTextBuilder struct {
	text  validation.Value[string]
	emoji *bool
}

// NewPlainTextBuilder constructs a PlainTextBuilder.
func NewPlainTextBuilder() *PlainTextBuilder {
	return &PlainTextBuilder{text: newTextCell(nil)}
}

func (b *PlainTextBuilder) Text(text string) *PlainTextBuilder {
	return b.SetText(&text)
}

func (b *PlainTextBuilder) SetText(text *string) *PlainTextBuilder {
	b.text = newTextCell(text)
	return b
}

func (b *PlainTextBuilder) Emoji(emoji bool) *PlainTextBuilder {
	return b.SetEmoji(&emoji)
}

func (b *PlainTextBuilder) SetEmoji(emoji *bool) *PlainTextBuilder {
	b.emoji = emoji
	return b
}

func (b *PlainTextBuilder) GetText() *string {
	return b.text.Inner()
}

func (b *PlainTextBuilder) GetEmoji() *bool {
	return b.emoji
}

// Build validates the accumulated fields and returns the Text object.
func (b *PlainTextBuilder) Build() (*Text, error) {
	errs := validation.NewErrors("Text")
	errs.AddField("text", b.text.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	text := &Text{Type: TypePlain, Emoji: b.emoji}
	if inner := b.text.Inner(); inner != nil {
		text.Text = *inner
	}
	return text, nil
}

// MrkdwnBuilder builds a mrkdwn Text object.
type MrkdwnBuilder struct {
	text     validation.Value[string]
	verbatim *bool
}

// NewMrkdwnBuilder constructs a MrkdwnBuilder.
func NewMrkdwnBuilder() *MrkdwnBuilder {
	return &MrkdwnBuilder{text: newTextCell(nil)}
}

func (b *MrkdwnBuilder) Text(text string) *MrkdwnBuilder {
	return b.SetText(&text)
}

func (b *MrkdwnBuilder) SetText(text *string) *MrkdwnBuilder {
	b.text = newTextCell(text)
	return b
}

func (b *MrkdwnBuilder) Verbatim(verbatim bool) *MrkdwnBuilder {
	return b.SetVerbatim(&verbatim)
}

func (b *MrkdwnBuilder) SetVerbatim(verbatim *bool) *MrkdwnBuilder {
	b.verbatim = verbatim
	return b
}

func (b *MrkdwnBuilder) GetText() *string {
	return b.text.Inner()
}

func (b *MrkdwnBuilder) GetVerbatim() *bool {
	return b.verbatim
}

// Build validates the accumulated fields and returns the Text object.
func (b *MrkdwnBuilder) Build() (*Text, error) {
	errs := validation.NewErrors("Text")
	errs.AddField("text", b.text.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	text := &Text{Type: TypeMrkdwn, Verbatim: b.verbatim}
	if inner := b.text.Inner(); inner != nil {
		text.Text = *inner
	}
	return text, nil
}

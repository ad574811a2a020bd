package blockkit

import (
	"fmt"

	"github.com/kaicoh/go-blockkit/pkg/blocks"
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// ResponseType determines the visibility of a message sent in response to
// an interaction.
type ResponseType string

// Response types.
const (
	ResponseInChannel ResponseType = "in_channel"
	ResponseEphemeral ResponseType = "ephemeral"
)

// Message is a message payload. Unlike blocks and elements it carries no
// type discriminator of its own.
type Message struct {
	Text            *string        `json:"text,omitempty"`
	Blocks          []blocks.Block `json:"blocks,omitempty"`
	Attachments     []Attachment   `json:"attachments,omitempty"`
	ThreadTS        *string        `json:"thread_ts,omitempty"`
	Mrkdwn          *bool          `json:"mrkdwn,omitempty"`
	ResponseType    *ResponseType  `json:"response_type,omitempty"`
	ReplaceOriginal *bool          `json:"replace_original,omitempty"`
	DeleteOriginal  *bool          `json:"delete_original,omitempty"`
	ReplyBroadcast  *bool          `json:"reply_broadcast,omitempty"`
}

// MessageBuilder builds a Message.
type MessageBuilder struct {
	text            *string
	blocks          *[]blocks.Block
	attachments     *[]Attachment
	threadTS        *string
	mrkdwn          *bool
	responseType    *ResponseType
	replaceOriginal *bool
	deleteOriginal  *bool
	replyBroadcast  *bool
}

// NewMessageBuilder constructs a MessageBuilder.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{}
}

func (b *MessageBuilder) Text(text string) *MessageBuilder {
	return b.SetText(&text)
}

func (b *MessageBuilder) SetText(text *string) *MessageBuilder {
	b.text = text
	return b
}

// Block appends a layout block.
func (b *MessageBuilder) Block(block blocks.Block) *MessageBuilder {
	b.blocks = validation.PushItem(b.blocks, block)
	return b
}

func (b *MessageBuilder) SetBlocks(blocks *[]blocks.Block) *MessageBuilder {
	b.blocks = blocks
	return b
}

// Attachment appends an attachment.
func (b *MessageBuilder) Attachment(attachment Attachment) *MessageBuilder {
	b.attachments = validation.PushItem(b.attachments, attachment)
	return b
}

func (b *MessageBuilder) SetAttachments(attachments *[]Attachment) *MessageBuilder {
	b.attachments = attachments
	return b
}

func (b *MessageBuilder) ThreadTS(ts string) *MessageBuilder {
	return b.SetThreadTS(&ts)
}

func (b *MessageBuilder) SetThreadTS(ts *string) *MessageBuilder {
	b.threadTS = ts
	return b
}

func (b *MessageBuilder) Mrkdwn(mrkdwn bool) *MessageBuilder {
	return b.SetMrkdwn(&mrkdwn)
}

func (b *MessageBuilder) SetMrkdwn(mrkdwn *bool) *MessageBuilder {
	b.mrkdwn = mrkdwn
	return b
}

func (b *MessageBuilder) ResponseType(rt ResponseType) *MessageBuilder {
	return b.SetResponseType(&rt)
}

func (b *MessageBuilder) SetResponseType(rt *ResponseType) *MessageBuilder {
	b.responseType = rt
	return b
}

func (b *MessageBuilder) ReplaceOriginal(replace bool) *MessageBuilder {
	return b.SetReplaceOriginal(&replace)
}

func (b *MessageBuilder) SetReplaceOriginal(replace *bool) *MessageBuilder {
	b.replaceOriginal = replace
	return b
}

func (b *MessageBuilder) DeleteOriginal(del bool) *MessageBuilder {
	return b.SetDeleteOriginal(&del)
}

func (b *MessageBuilder) SetDeleteOriginal(del *bool) *MessageBuilder {
	b.deleteOriginal = del
	return b
}

func (b *MessageBuilder) ReplyBroadcast(broadcast bool) *MessageBuilder {
	return b.SetReplyBroadcast(&broadcast)
}

func (b *MessageBuilder) SetReplyBroadcast(broadcast *bool) *MessageBuilder {
	b.replyBroadcast = broadcast
	return b
}

func (b *MessageBuilder) GetText() *string {
	return b.text
}

func (b *MessageBuilder) GetBlocks() *[]blocks.Block {
	return b.blocks
}

func (b *MessageBuilder) GetAttachments() *[]Attachment {
	return b.attachments
}

// Build validates the accumulated fields and returns the message.
func (b *MessageBuilder) Build() (*Message, error) {
	blockList := validation.Pipe(
		validation.NewValue(b.blocks),
		validation.MaxItems[blocks.Block](50),
	)

	errs := validation.NewErrors("Message")
	errs.AddField("blocks", blockList.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	message := &Message{
		Text:            b.text,
		ThreadTS:        b.threadTS,
		Mrkdwn:          b.mrkdwn,
		ResponseType:    b.responseType,
		ReplaceOriginal: b.replaceOriginal,
		DeleteOriginal:  b.deleteOriginal,
		ReplyBroadcast:  b.replyBroadcast,
	}
	if inner := blockList.Inner(); inner != nil {
		message.Blocks = *inner
	}
	if b.attachments != nil {
		message.Attachments = *b.attachments
	}
	return message, nil
}

// PlainText formats its arguments fmt.Sprintf style and builds a
// plain_text object.
func PlainText(format string, args ...any) (*composition.Text, error) {
	return composition.NewPlainTextBuilder().
		Text(fmt.Sprintf(format, args...)).
		Build()
}

// Mrkdwn formats its arguments fmt.Sprintf style and builds a mrkdwn
// object.
func Mrkdwn(format string, args ...any) (*composition.Text, error) {
	return composition.NewMrkdwnBuilder().
		Text(fmt.Sprintf(format, args...)).
		Build()
}

package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// RichTextStyle carries the optional styling applied to a rich text
// element. Highlight, ClientHighlight and Unlink apply to mention
// elements only.
type RichTextStyle struct {
	Bold            *bool `json:"bold,omitempty"`
	Italic          *bool `json:"italic,omitempty"`
	Strike          *bool `json:"strike,omitempty"`
	Code            *bool `json:"code,omitempty"`
	Highlight       *bool `json:"highlight,omitempty"`
	ClientHighlight *bool `json:"client_highlight,omitempty"`
	Unlink          *bool `json:"unlink,omitempty"`
}

func newRichTextRequiredCell(s *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(s),
		validation.Require[string](),
	)
}

// RichTextText is a text rich text element.
type RichTextText struct {
	Type  string         `json:"type"`
	Text  string         `json:"text"`
	Style *RichTextStyle `json:"style,omitempty"`
}

func (e *RichTextText) richTextElement() {}

// RichTextTextBuilder builds a RichTextText.
type RichTextTextBuilder struct {
	text  validation.Value[string]
	style *RichTextStyle
}

// NewRichTextTextBuilder constructs a RichTextTextBuilder.
func NewRichTextTextBuilder() *RichTextTextBuilder {
	return &RichTextTextBuilder{text: newRichTextRequiredCell(nil)}
}

func (b *RichTextTextBuilder) Text(text string) *RichTextTextBuilder {
	return b.SetText(&text)
}

func (b *RichTextTextBuilder) SetText(text *string) *RichTextTextBuilder {
	b.text = newRichTextRequiredCell(text)
	return b
}

func (b *RichTextTextBuilder) Style(style RichTextStyle) *RichTextTextBuilder {
	b.style = &style
	return b
}

func (b *RichTextTextBuilder) GetText() *string {
	return b.text.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *RichTextTextBuilder) Build() (*RichTextText, error) {
	errs := validation.NewErrors("RichTextText")
	errs.AddField("text", b.text.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RichTextText{Type: "text", Style: b.style}
	if text := b.text.Inner(); text != nil {
		element.Text = *text
	}
	return element, nil
}

// RichTextEmoji is an emoji rich text element.
type RichTextEmoji struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func (e *RichTextEmoji) richTextElement() {}

// RichTextEmojiBuilder builds a RichTextEmoji.
type RichTextEmojiBuilder struct {
	name validation.Value[string]
}

// NewRichTextEmojiBuilder constructs a RichTextEmojiBuilder.
func NewRichTextEmojiBuilder() *RichTextEmojiBuilder {
	return &RichTextEmojiBuilder{name: newRichTextRequiredCell(nil)}
}

func (b *RichTextEmojiBuilder) Name(name string) *RichTextEmojiBuilder {
	return b.SetName(&name)
}

func (b *RichTextEmojiBuilder) SetName(name *string) *RichTextEmojiBuilder {
	b.name = newRichTextRequiredCell(name)
	return b
}

func (b *RichTextEmojiBuilder) GetName() *string {
	return b.name.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *RichTextEmojiBuilder) Build() (*RichTextEmoji, error) {
	errs := validation.NewErrors("RichTextEmoji")
	errs.AddField("name", b.name.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RichTextEmoji{Type: "emoji"}
	if name := b.name.Inner(); name != nil {
		element.Name = *name
	}
	return element, nil
}

// RichTextLink is a link rich text element.
type RichTextLink struct {
	Type   string         `json:"type"`
	URL    string         `json:"url"`
	Text   *string        `json:"text,omitempty"`
	Unsafe *bool          `json:"unsafe,omitempty"`
	Style  *RichTextStyle `json:"style,omitempty"`
}

func (e *RichTextLink) richTextElement() {}

// RichTextLinkBuilder builds a RichTextLink.
type RichTextLinkBuilder struct {
	url    validation.Value[string]
	text   *string
	unsafe *bool
	style  *RichTextStyle
}

// NewRichTextLinkBuilder constructs a RichTextLinkBuilder.
func NewRichTextLinkBuilder() *RichTextLinkBuilder {
	return &RichTextLinkBuilder{url: newRichTextRequiredCell(nil)}
}

func (b *RichTextLinkBuilder) URL(url string) *RichTextLinkBuilder {
	return b.SetURL(&url)
}

func (b *RichTextLinkBuilder) SetURL(url *string) *RichTextLinkBuilder {
	b.url = newRichTextRequiredCell(url)
	return b
}

func (b *RichTextLinkBuilder) Text(text string) *RichTextLinkBuilder {
	b.text = &text
	return b
}

func (b *RichTextLinkBuilder) Unsafe(unsafe bool) *RichTextLinkBuilder {
	b.unsafe = &unsafe
	return b
}

func (b *RichTextLinkBuilder) Style(style RichTextStyle) *RichTextLinkBuilder {
	b.style = &style
	return b
}

func (b *RichTextLinkBuilder) GetURL() *string {
	return b.url.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *RichTextLinkBuilder) Build() (*RichTextLink, error) {
	errs := validation.NewErrors("RichTextLink")
	errs.AddField("url", b.url.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RichTextLink{
		Type:   "link",
		Text:   b.text,
		Unsafe: b.unsafe,
		Style:  b.style,
	}
	if url := b.url.Inner(); url != nil {
		element.URL = *url
	}
	return element, nil
}

// RichTextUser is a user mention rich text element.
type RichTextUser struct {
	Type   string         `json:"type"`
	UserID string         `json:"user_id"`
	Style  *RichTextStyle `json:"style,omitempty"`
}

func (e *RichTextUser) richTextElement() {}

// RichTextUserBuilder builds a RichTextUser.
type RichTextUserBuilder struct {
	userID validation.Value[string]
	style  *RichTextStyle
}

// NewRichTextUserBuilder constructs a RichTextUserBuilder.
func NewRichTextUserBuilder() *RichTextUserBuilder {
	return &RichTextUserBuilder{userID: newRichTextRequiredCell(nil)}
}

func (b *RichTextUserBuilder) UserID(id string) *RichTextUserBuilder {
	return b.SetUserID(&id)
}

func (b *RichTextUserBuilder) SetUserID(id *string) *RichTextUserBuilder {
	b.userID = newRichTextRequiredCell(id)
	return b
}

func (b *RichTextUserBuilder) Style(style RichTextStyle) *RichTextUserBuilder {
	b.style = &style
	return b
}

func (b *RichTextUserBuilder) GetUserID() *string {
	return b.userID.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *RichTextUserBuilder) Build() (*RichTextUser, error) {
	errs := validation.NewErrors("RichTextUser")
	errs.AddField("user_id", b.userID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RichTextUser{Type: "user", Style: b.style}
	if id := b.userID.Inner(); id != nil {
		element.UserID = *id
	}
	return element, nil
}

// RichTextChannel is a channel mention rich text element.
type RichTextChannel struct {
	Type      string         `json:"type"`
	ChannelID string         `json:"channel_id"`
	Style     *RichTextStyle `json:"style,omitempty"`
}

func (e *RichTextChannel) richTextElement() {}

// RichTextChannelBuilder builds a RichTextChannel.
type RichTextChannelBuilder struct {
	channelID validation.Value[string]
	style     *RichTextStyle
}

// NewRichTextChannelBuilder constructs a RichTextChannelBuilder.
func NewRichTextChannelBuilder() *RichTextChannelBuilder {
	return &RichTextChannelBuilder{channelID: newRichTextRequiredCell(nil)}
}

func (b *RichTextChannelBuilder) ChannelID(id string) *RichTextChannelBuilder {
	return b.SetChannelID(&id)
}

func (b *RichTextChannelBuilder) SetChannelID(id *string) *RichTextChannelBuilder {
	b.channelID = newRichTextRequiredCell(id)
	return b
}

func (b *RichTextChannelBuilder) Style(style RichTextStyle) *RichTextChannelBuilder {
	b.style = &style
	return b
}

func (b *RichTextChannelBuilder) GetChannelID() *string {
	return b.channelID.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *RichTextChannelBuilder) Build() (*RichTextChannel, error) {
	errs := validation.NewErrors("RichTextChannel")
	errs.AddField("channel_id", b.channelID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RichTextChannel{Type: "channel", Style: b.style}
	if id := b.channelID.Inner(); id != nil {
		element.ChannelID = *id
	}
	return element, nil
}

// RichTextUserGroup is a user group mention rich text element.
type RichTextUserGroup struct {
	Type        string         `json:"type"`
	UserGroupID string         `json:"usergroup_id"`
	Style       *RichTextStyle `json:"style,omitempty"`
}

func (e *RichTextUserGroup) richTextElement() {}

// RichTextUserGroupBuilder builds a RichTextUserGroup.
type RichTextUserGroupBuilder struct {
	userGroupID validation.Value[string]
	style       *RichTextStyle
}

// NewRichTextUserGroupBuilder constructs a RichTextUserGroupBuilder.
func NewRichTextUserGroupBuilder() *RichTextUserGroupBuilder {
	return &RichTextUserGroupBuilder{userGroupID: newRichTextRequiredCell(nil)}
}

func (b *RichTextUserGroupBuilder) UserGroupID(id string) *RichTextUserGroupBuilder {
	return b.SetUserGroupID(&id)
}

func (b *RichTextUserGroupBuilder) SetUserGroupID(id *string) *RichTextUserGroupBuilder {
	b.userGroupID = newRichTextRequiredCell(id)
	return b
}

func (b *RichTextUserGroupBuilder) Style(style RichTextStyle) *RichTextUserGroupBuilder {
	b.style = &style
	return b
}

func (b *RichTextUserGroupBuilder) GetUserGroupID() *string {
	return b.userGroupID.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *RichTextUserGroupBuilder) Build() (*RichTextUserGroup, error) {
	errs := validation.NewErrors("RichTextUserGroup")
	errs.AddField("usergroup_id", b.userGroupID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RichTextUserGroup{Type: "usergroup", Style: b.style}
	if id := b.userGroupID.Inner(); id != nil {
		element.UserGroupID = *id
	}
	return element, nil
}

// RichTextDate is a date rich text element. The format string uses the
// date tokens Slack documents, for example "{date_num} at {time}".
type RichTextDate struct {
	Type      string  `json:"type"`
	Timestamp int64   `json:"timestamp"`
	Format    string  `json:"format"`
	URL       *string `json:"url,omitempty"`
	Fallback  *string `json:"fallback,omitempty"`
}

func (e *RichTextDate) richTextElement() {}

// RichTextDateBuilder builds a RichTextDate.
type RichTextDateBuilder struct {
	timestamp validation.Value[int64]
	format    validation.Value[string]
	url       *string
	fallback  *string
}

func newDateTimestampCell(timestamp *int64) validation.Value[int64] {
	return validation.Pipe(
		validation.NewValue(timestamp),
		validation.Require[int64](),
	)
}

// NewRichTextDateBuilder constructs a RichTextDateBuilder.
func NewRichTextDateBuilder() *RichTextDateBuilder {
	return &RichTextDateBuilder{
		timestamp: newDateTimestampCell(nil),
		format:    newRichTextRequiredCell(nil),
	}
}

func (b *RichTextDateBuilder) Timestamp(timestamp int64) *RichTextDateBuilder {
	return b.SetTimestamp(&timestamp)
}

func (b *RichTextDateBuilder) SetTimestamp(timestamp *int64) *RichTextDateBuilder {
	b.timestamp = newDateTimestampCell(timestamp)
	return b
}

func (b *RichTextDateBuilder) Format(format string) *RichTextDateBuilder {
	return b.SetFormat(&format)
}

func (b *RichTextDateBuilder) SetFormat(format *string) *RichTextDateBuilder {
	b.format = newRichTextRequiredCell(format)
	return b
}

func (b *RichTextDateBuilder) URL(url string) *RichTextDateBuilder {
	b.url = &url
	return b
}

func (b *RichTextDateBuilder) Fallback(fallback string) *RichTextDateBuilder {
	b.fallback = &fallback
	return b
}

func (b *RichTextDateBuilder) GetTimestamp() *int64 {
	return b.timestamp.Inner()
}

func (b *RichTextDateBuilder) GetFormat() *string {
	return b.format.Inner()
}

// Build validates the accumulated fields and returns the element.
func (b *RichTextDateBuilder) Build() (*RichTextDate, error) {
	errs := validation.NewErrors("RichTextDate")
	errs.AddField("timestamp", b.timestamp.Errors())
	errs.AddField("format", b.format.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	element := &RichTextDate{Type: "date", URL: b.url, Fallback: b.fallback}
	if timestamp := b.timestamp.Inner(); timestamp != nil {
		element.Timestamp = *timestamp
	}
	if format := b.format.Inner(); format != nil {
		element.Format = *format
	}
	return element, nil
}

// BroadcastRange names the audience of a broadcast rich text element.
type BroadcastRange string

// Broadcast ranges.
const (
	BroadcastHere     BroadcastRange = "here"
	BroadcastChannel  BroadcastRange = "channel"
	BroadcastEveryone BroadcastRange = "everyone"
)

// RichTextBroadcast is a broadcast rich text element.
type RichTextBroadcast struct {
	Type  string         `json:"type"`
	Range BroadcastRange `json:"range"`
}

func (e *RichTextBroadcast) richTextElement() {}

// NewRichTextBroadcast constructs a broadcast element for the given range.
func NewRichTextBroadcast(r BroadcastRange) *RichTextBroadcast {
	return &RichTextBroadcast{Type: "broadcast", Range: r}
}

// RichTextColor is a color rich text element.
type RichTextColor struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (e *RichTextColor) richTextElement() {}

// NewRichTextColor constructs a color element for the given hex value.
func NewRichTextColor(value string) *RichTextColor {
	return &RichTextColor{Type: "color", Value: value}
}

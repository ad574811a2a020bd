package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Conversation identifies a conversation kind accepted by a filter.
type Conversation string

// Conversation kinds.
const (
	ConversationIM      Conversation = "im"
	ConversationMpim    Conversation = "mpim"
	ConversationPrivate Conversation = "private"
	ConversationPublic  Conversation = "public"
)

// ConversationFilter narrows the conversations offered by a conversations
// select menu. At least one of its fields must be set.
type ConversationFilter struct {
	Include                       []Conversation `json:"include,omitempty"`
	ExcludeExternalSharedChannels *bool          `json:"exclude_external_shared_channels,omitempty"`
	ExcludeBotUsers               *bool          `json:"exclude_bot_users,omitempty"`
}

// ConversationFilterBuilder builds a ConversationFilter.
type ConversationFilterBuilder struct {
	include                       *[]Conversation
	excludeExternalSharedChannels *bool
	excludeBotUsers               *bool
}

// NewConversationFilterBuilder constructs a ConversationFilterBuilder.
func NewConversationFilterBuilder() *ConversationFilterBuilder {
	return &ConversationFilterBuilder{}
}

// Include appends a conversation kind to the include list.
func (b *ConversationFilterBuilder) Include(conversation Conversation) *ConversationFilterBuilder {
	b.include = validation.PushItem(b.include, conversation)
	return b
}

func (b *ConversationFilterBuilder) SetInclude(include *[]Conversation) *ConversationFilterBuilder {
	b.include = include
	return b
}

func (b *ConversationFilterBuilder) ExcludeExternalSharedChannels(exclude bool) *ConversationFilterBuilder {
	return b.SetExcludeExternalSharedChannels(&exclude)
}

func (b *ConversationFilterBuilder) SetExcludeExternalSharedChannels(exclude *bool) *ConversationFilterBuilder {
	b.excludeExternalSharedChannels = exclude
	return b
}

func (b *ConversationFilterBuilder) ExcludeBotUsers(exclude bool) *ConversationFilterBuilder {
	return b.SetExcludeBotUsers(&exclude)
}

func (b *ConversationFilterBuilder) SetExcludeBotUsers(exclude *bool) *ConversationFilterBuilder {
	b.excludeBotUsers = exclude
	return b
}

func (b *ConversationFilterBuilder) GetInclude() *[]Conversation {
	return b.include
}

func (b *ConversationFilterBuilder) GetExcludeExternalSharedChannels() *bool {
	return b.excludeExternalSharedChannels
}

func (b *ConversationFilterBuilder) GetExcludeBotUsers() *bool {
	return b.excludeBotUsers
}

// Build validates the accumulated fields and returns the filter.
func (b *ConversationFilterBuilder) Build() (*ConversationFilter, error) {
	include := validation.Pipe(
		validation.NewValue(b.include),
		validation.NotEmpty[Conversation](),
	)

	errs := validation.NewErrors("ConversationFilter")
	errs.AddField("include", include.Errors())
	if b.include == nil && b.excludeExternalSharedChannels == nil && b.excludeBotUsers == nil {
		errs.AddAcross([]validation.Kind{validation.NoFieldProvided()})
	}
	if !errs.Empty() {
		return nil, errs
	}

	filter := &ConversationFilter{
		ExcludeExternalSharedChannels: b.excludeExternalSharedChannels,
		ExcludeBotUsers:               b.excludeBotUsers,
	}
	if inner := include.Inner(); inner != nil {
		filter.Include = *inner
	}
	return filter, nil
}

package composition

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// SlackFile references a file either by its id or by its permalink URL.
// Exactly one of the two must be set.
type SlackFile struct {
	ID  *string `json:"id,omitempty"`
	URL *string `json:"url,omitempty"`
}

// SlackFileBuilder builds a SlackFile.
type SlackFileBuilder struct {
	id  *string
	url *string
}

// NewSlackFileBuilder constructs a SlackFileBuilder.
func NewSlackFileBuilder() *SlackFileBuilder {
	return &SlackFileBuilder{}
}

func (b *SlackFileBuilder) ID(id string) *SlackFileBuilder {
	return b.SetID(&id)
}

func (b *SlackFileBuilder) SetID(id *string) *SlackFileBuilder {
	b.id = id
	return b
}

func (b *SlackFileBuilder) URL(url string) *SlackFileBuilder {
	return b.SetURL(&url)
}

func (b *SlackFileBuilder) SetURL(url *string) *SlackFileBuilder {
	b.url = url
	return b
}

func (b *SlackFileBuilder) GetID() *string {
	return b.id
}

func (b *SlackFileBuilder) GetURL() *string {
	return b.url
}

// Build checks that exactly one of id and url is set and returns the file
// reference.
func (b *SlackFileBuilder) Build() (*SlackFile, error) {
	errs := validation.NewErrors("SlackFile")
	switch {
	case b.id != nil && b.url != nil:
		errs.AddAcross([]validation.Kind{validation.ExclusiveField("id", "url")})
	case b.id == nil && b.url == nil:
		errs.AddAcross([]validation.Kind{validation.EitherRequired("id", "url")})
	}
	if !errs.Empty() {
		return nil, errs
	}

	return &SlackFile{ID: b.id, URL: b.url}, nil
}

package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Video is a video layout block.
type Video struct {
	Type            string            `json:"type"`
	AltText         string            `json:"alt_text"`
	AuthorName      *string           `json:"author_name,omitempty"`
	BlockID         *string           `json:"block_id,omitempty"`
	Description     *composition.Text `json:"description,omitempty"`
	ProviderIconURL *string           `json:"provider_icon_url,omitempty"`
	ProviderName    *string           `json:"provider_name,omitempty"`
	Title           *composition.Text `json:"title"`
	TitleURL        *string           `json:"title_url,omitempty"`
	ThumbnailURL    string            `json:"thumbnail_url"`
	VideoURL        string            `json:"video_url"`
}

func (b *Video) block() {}

// VideoBuilder builds a Video block.
type VideoBuilder struct {
	altText         validation.Value[string]
	authorName      validation.Value[string]
	blockID         validation.Value[string]
	description     validation.Value[composition.Text]
	providerIconURL *string
	providerName    *string
	title           validation.Value[composition.Text]
	titleURL        *string
	thumbnailURL    validation.Value[string]
	videoURL        validation.Value[string]
}

func newVideoRequiredCell(s *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(s),
		validation.Require[string](),
	)
}

func newVideoAuthorCell(name *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(name),
		validation.MaxText(50),
	)
}

func newVideoDescriptionCell(description *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(description),
		validation.TexterMaxLength[composition.Text](200),
	)
}

func newVideoTitleCell(title *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(title),
		validation.Require[composition.Text](),
		validation.TexterMaxLength[composition.Text](200),
	)
}

// NewVideoBuilder constructs a VideoBuilder.
func NewVideoBuilder() *VideoBuilder {
	return &VideoBuilder{
		altText:      newVideoRequiredCell(nil),
		authorName:   newVideoAuthorCell(nil),
		blockID:      newBlockIDCell(nil),
		description:  newVideoDescriptionCell(nil),
		title:        newVideoTitleCell(nil),
		thumbnailURL: newVideoRequiredCell(nil),
		videoURL:     newVideoRequiredCell(nil),
	}
}

func (b *VideoBuilder) AltText(text string) *VideoBuilder {
	return b.SetAltText(&text)
}

func (b *VideoBuilder) SetAltText(text *string) *VideoBuilder {
	b.altText = newVideoRequiredCell(text)
	return b
}

func (b *VideoBuilder) AuthorName(name string) *VideoBuilder {
	return b.SetAuthorName(&name)
}

func (b *VideoBuilder) SetAuthorName(name *string) *VideoBuilder {
	b.authorName = newVideoAuthorCell(name)
	return b
}

func (b *VideoBuilder) BlockID(id string) *VideoBuilder {
	return b.SetBlockID(&id)
}

func (b *VideoBuilder) SetBlockID(id *string) *VideoBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

// Description sets the description, a plain_text object.
func (b *VideoBuilder) Description(description composition.Text) *VideoBuilder {
	return b.SetDescription(&description)
}

func (b *VideoBuilder) SetDescription(description *composition.Text) *VideoBuilder {
	b.description = newVideoDescriptionCell(description)
	return b
}

func (b *VideoBuilder) ProviderIconURL(url string) *VideoBuilder {
	return b.SetProviderIconURL(&url)
}

func (b *VideoBuilder) SetProviderIconURL(url *string) *VideoBuilder {
	b.providerIconURL = url
	return b
}

func (b *VideoBuilder) ProviderName(name string) *VideoBuilder {
	return b.SetProviderName(&name)
}

func (b *VideoBuilder) SetProviderName(name *string) *VideoBuilder {
	b.providerName = name
	return b
}

// Title sets the title, a plain_text object.
func (b *VideoBuilder) Title(title composition.Text) *VideoBuilder {
	return b.SetTitle(&title)
}

func (b *VideoBuilder) SetTitle(title *composition.Text) *VideoBuilder {
	b.title = newVideoTitleCell(title)
	return b
}

func (b *VideoBuilder) TitleURL(url string) *VideoBuilder {
	return b.SetTitleURL(&url)
}

func (b *VideoBuilder) SetTitleURL(url *string) *VideoBuilder {
	b.titleURL = url
	return b
}

func (b *VideoBuilder) ThumbnailURL(url string) *VideoBuilder {
	return b.SetThumbnailURL(&url)
}

func (b *VideoBuilder) SetThumbnailURL(url *string) *VideoBuilder {
	b.thumbnailURL = newVideoRequiredCell(url)
	return b
}

func (b *VideoBuilder) VideoURL(url string) *VideoBuilder {
	return b.SetVideoURL(&url)
}

func (b *VideoBuilder) SetVideoURL(url *string) *VideoBuilder {
	b.videoURL = newVideoRequiredCell(url)
	return b
}

func (b *VideoBuilder) GetAltText() *string {
	return b.altText.Inner()
}

func (b *VideoBuilder) GetTitle() *composition.Text {
	return b.title.Inner()
}

func (b *VideoBuilder) GetThumbnailURL() *string {
	return b.thumbnailURL.Inner()
}

func (b *VideoBuilder) GetVideoURL() *string {
	return b.videoURL.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *VideoBuilder) Build() (*Video, error) {
	errs := validation.NewErrors("Video")
	errs.AddField("alt_text", b.altText.Errors())
	errs.AddField("author_name", b.authorName.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	errs.AddField("description", b.description.Errors())
	errs.AddField("title", b.title.Errors())
	errs.AddField("thumbnail_url", b.thumbnailURL.Errors())
	errs.AddField("video_url", b.videoURL.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &Video{
		Type:            "video",
		AuthorName:      b.authorName.Inner(),
		BlockID:         b.blockID.Inner(),
		Description:     b.description.Inner(),
		ProviderIconURL: b.providerIconURL,
		ProviderName:    b.providerName,
		Title:           b.title.Inner(),
		TitleURL:        b.titleURL,
	}
	if text := b.altText.Inner(); text != nil {
		block.AltText = *text
	}
	if url := b.thumbnailURL.Inner(); url != nil {
		block.ThumbnailURL = *url
	}
	if url := b.videoURL.Inner(); url != nil {
		block.VideoURL = *url
	}
	return block, nil
}

package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Image is an image layout block. Exactly one of image_url and slack_file
// must be set.
type Image struct {
	Type      string                 `json:"type"`
	AltText   string                 `json:"alt_text"`
	ImageURL  *string                `json:"image_url,omitempty"`
	SlackFile *composition.SlackFile `json:"slack_file,omitempty"`
	Title     *composition.Text      `json:"title,omitempty"`
	BlockID   *string                `json:"block_id,omitempty"`
}

func (b *Image) block() {}

// ImageBuilder builds an Image block.
type ImageBuilder struct {
	altText   validation.Value[string]
	imageURL  validation.Value[string]
	slackFile *composition.SlackFile
	title     validation.Value[composition.Text]
	blockID   validation.Value[string]
}

func newAltTextCell(text *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(text),
		validation.Require[string](),
		validation.MaxText(2000),
	)
}

func newImageURLCell(url *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(url),
		validation.MaxText(3000),
	)
}

func newImageTitleCell(title *composition.Text) validation.Value[composition.Text] {
	return validation.Pipe(
		validation.NewValue(title),
		validation.TexterMaxLength[composition.Text](2000),
	)
}

// NewImageBuilder constructs an ImageBuilder.
func NewImageBuilder() *ImageBuilder {
	return &ImageBuilder{
		altText:  newAltTextCell(nil),
		imageURL: newImageURLCell(nil),
		title:    newImageTitleCell(nil),
		blockID:  newBlockIDCell(nil),
	}
}

func (b *ImageBuilder) AltText(text string) *ImageBuilder {
	return b.SetAltText(&text)
}

func (b *ImageBuilder) SetAltText(text *string) *ImageBuilder {
	b.altText = newAltTextCell(text)
	return b
}

func (b *ImageBuilder) ImageURL(url string) *ImageBuilder {
	return b.SetImageURL(&url)
}

func (b *ImageBuilder) SetImageURL(url *string) *ImageBuilder {
	b.imageURL = newImageURLCell(url)
	return b
}

func (b *ImageBuilder) SlackFile(file composition.SlackFile) *ImageBuilder {
	return b.SetSlackFile(&file)
}

func (b *ImageBuilder) SetSlackFile(file *composition.SlackFile) *ImageBuilder {
	b.slackFile = file
	return b
}

// Title sets the title, a plain_text object.
func (b *ImageBuilder) Title(title composition.Text) *ImageBuilder {
	return b.SetTitle(&title)
}

func (b *ImageBuilder) SetTitle(title *composition.Text) *ImageBuilder {
	b.title = newImageTitleCell(title)
	return b
}

func (b *ImageBuilder) BlockID(id string) *ImageBuilder {
	return b.SetBlockID(&id)
}

func (b *ImageBuilder) SetBlockID(id *string) *ImageBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *ImageBuilder) GetAltText() *string {
	return b.altText.Inner()
}

func (b *ImageBuilder) GetImageURL() *string {
	return b.imageURL.Inner()
}

func (b *ImageBuilder) GetSlackFile() *composition.SlackFile {
	return b.slackFile
}

func (b *ImageBuilder) GetTitle() *composition.Text {
	return b.title.Inner()
}

func (b *ImageBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *ImageBuilder) Build() (*Image, error) {
	errs := validation.NewErrors("Image")
	errs.AddField("alt_text", b.altText.Errors())
	errs.AddField("image_url", b.imageURL.Errors())
	errs.AddField("title", b.title.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	switch {
	case b.imageURL.Inner() != nil && b.slackFile != nil:
		errs.AddAcross([]validation.Kind{validation.ExclusiveField("image_url", "slack_file")})
	case b.imageURL.Inner() == nil && b.slackFile == nil:
		errs.AddAcross([]validation.Kind{validation.EitherRequired("image_url", "slack_file")})
	}
	if !errs.Empty() {
		return nil, errs
	}

	block := &Image{
		Type:      "image",
		ImageURL:  b.imageURL.Inner(),
		SlackFile: b.slackFile,
		Title:     b.title.Inner(),
		BlockID:   b.blockID.Inner(),
	}
	if text := b.altText.Inner(); text != nil {
		block.AltText = *text
	}
	return block, nil
}

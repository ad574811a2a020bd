package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/composition"
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// ImageElement is an image element for section accessories and context
// blocks. Exactly one of image_url and slack_file must be set.
type ImageElement struct {
	Type      string                 `json:"type"`
	AltText   string                 `json:"alt_text"`
	ImageURL  *string                `json:"image_url,omitempty"`
	SlackFile *composition.SlackFile `json:"slack_file,omitempty"`
}

func (e *ImageElement) sectionAccessory() {}
func (e *ImageElement) contextElement()   {}

// ImageElementBuilder builds an ImageElement.
type ImageElementBuilder struct {
	altText   validation.Value[string]
	imageURL  validation.Value[string]
	slackFile *composition.SlackFile
}

// NewImageElementBuilder constructs an ImageElementBuilder.
func NewImageElementBuilder() *ImageElementBuilder {
	return &ImageElementBuilder{
		altText:  newAltTextCell(nil),
		imageURL: newImageURLCell(nil),
	}
}

func (b *ImageElementBuilder) AltText(text string) *ImageElementBuilder {
	return b.SetAltText(&text)
}

func (b *ImageElementBuilder) SetAltText(text *string) *ImageElementBuilder {
	b.altText = newAltTextCell(text)
	return b
}

func (b *ImageElementBuilder) ImageURL(url string) *ImageElementBuilder {
	return b.SetImageURL(&url)
}

func (b *ImageElementBuilder) SetImageURL(url *string) *ImageElementBuilder {
	b.imageURL = newImageURLCell(url)
	return b
}

func (b *ImageElementBuilder) SlackFile(file composition.SlackFile) *ImageElementBuilder {
	return b.SetSlackFile(&file)
}

func (b *ImageElementBuilder) SetSlackFile(file *composition.SlackFile) *ImageElementBuilder {
	b.slackFile = file
	return b
}

func (b *ImageElementBuilder) GetAltText() *string {
	return b.altText.Inner()
}

func (b *ImageElementBuilder) GetImageURL() *string {
	return b.imageURL.Inner()
}

func (b *ImageElementBuilder) GetSlackFile() *composition.SlackFile {
	return b.slackFile
}

// Build validates the accumulated fields and returns the element.
func (b *ImageElementBuilder) Build() (*ImageElement, error) {
	errs := validation.NewErrors("ImageElement")
	errs.AddField("alt_text", b.altText.Errors())
	errs.AddField("image_url", b.imageURL.Errors())
	switch {
	case b.imageURL.Inner() != nil && b.slackFile != nil:
		errs.AddAcross([]validation.Kind{validation.ExclusiveField("image_url", "slack_file")})
	case b.imageURL.Inner() == nil && b.slackFile == nil:
		errs.AddAcross([]validation.Kind{validation.EitherRequired("image_url", "slack_file")})
	}
	if !errs.Empty() {
		return nil, errs
	}

	element := &ImageElement{
		Type:      "image",
		ImageURL:  b.imageURL.Inner(),
		SlackFile: b.slackFile,
	}
	if text := b.altText.Inner(); text != nil {
		element.AltText = *text
	}
	return element, nil
}

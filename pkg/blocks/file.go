package blocks

import (
	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// File is a file layout block. The only supported source is "remote".
type File struct {
	Type       string  `json:"type"`
	ExternalID string  `json:"external_id"`
	Source     string  `json:"source"`
	BlockID    *string `json:"block_id,omitempty"`
}

func (b *File) block() {}

// FileBuilder builds a File block.
type FileBuilder struct {
	externalID validation.Value[string]
	source     validation.Value[string]
	blockID    validation.Value[string]
}

func newFileRequiredCell(s *string) validation.Value[string] {
	return validation.Pipe(
		validation.NewValue(s),
		validation.Require[string](),
	)
}

// NewFileBuilder constructs a FileBuilder with the source preset to
// "remote".
func NewFileBuilder() *FileBuilder {
	source := "remote"
	return &FileBuilder{
		externalID: newFileRequiredCell(nil),
		source:     newFileRequiredCell(&source),
		blockID:    newBlockIDCell(nil),
	}
}

func (b *FileBuilder) ExternalID(id string) *FileBuilder {
	return b.SetExternalID(&id)
}

func (b *FileBuilder) SetExternalID(id *string) *FileBuilder {
	b.externalID = newFileRequiredCell(id)
	return b
}

func (b *FileBuilder) BlockID(id string) *FileBuilder {
	return b.SetBlockID(&id)
}

func (b *FileBuilder) SetBlockID(id *string) *FileBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *FileBuilder) GetExternalID() *string {
	return b.externalID.Inner()
}

func (b *FileBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *FileBuilder) Build() (*File, error) {
	errs := validation.NewErrors("File")
	errs.AddField("external_id", b.externalID.Errors())
	errs.AddField("source", b.source.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &File{Type: "file", BlockID: b.blockID.Inner()}
	if id := b.externalID.Inner(); id != nil {
		block.ExternalID = *id
	}
	if source := b.source.Inner(); source != nil {
		block.Source = *source
	}
	return block, nil
}
